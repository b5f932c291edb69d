package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"termotrack/pkg/civil"
	"termotrack/pkg/common"
	"termotrack/pkg/db"
	termoHttp "termotrack/pkg/http"
	"termotrack/pkg/termo"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	termoDbType := os.Getenv(common.EnvKeyTermoDBType)
	switch termoDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown TERMO_DB_TYPE: " + termoDbType)
	}

	zone, err := civil.LoadReferenceZone()
	if err != nil {
		log.Fatal("Invalid TERMO_REFERENCE_TZ:", err)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyTermoHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyTermoDefaultRate), 64); err != nil {
		log.Fatal("Invalid TERMO_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyTermoDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid TERMO_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	termoCore := termo.Termo{
		Db:   *dbInstance,
		Zone: zone,
	}
	termoCore.WithServices(termo.ServiceOpts{
		Store:        termoCore.GetIStore(),
		Verification: termoCore.GetIVerification(),
		Stats:        termoCore.GetIStats(),
		Alert:        termoCore.GetIAlert(),
		Thermometer:  termoCore.GetIThermometer(),
	})

	logger.Info("Reference timezone loaded", zap.String("zone", zone.String()))

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &termoHttp.RestfulServer{
		Server:           gin.Default(),
		Termo:            &termoCore,
		RateLimiterStore: termo.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
