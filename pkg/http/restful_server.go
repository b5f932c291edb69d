package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"termotrack/pkg/termo"
)

type RestfulServer struct {
	Server           *gin.Engine
	Termo            *termo.Termo
	RateLimiterStore *termo.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(thermometerID uint) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(thermometerID)
	}
}

func (rs *RestfulServer) CheckThermometerLimiter(thermometerID uint) bool {
	limiter := rs.GetLimiter(thermometerID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(thermometerID uint, limiterRate float64, limiterBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(thermometerID, rate.Limit(limiterRate), limiterBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/sectors", rs.GetSectors)
	rs.Server.GET("/alerts", rs.GetDashboardAlerts)

	thermometers := rs.Server.Group("/thermometers")
	{
		thermometers.POST("", rs.CreateThermometer)
		thermometers.GET("", rs.ListThermometers)
		thermometers.GET("/:thermometer_id", rs.GetThermometer)
		thermometers.PUT("/:thermometer_id", rs.UpdateThermometer)
		thermometers.DELETE("/:thermometer_id", rs.DeleteThermometer)
		thermometers.POST("/:thermometer_id/verifications", rs.PostVerification)
		thermometers.GET("/:thermometer_id/verifications", rs.GetVerifications)
		thermometers.GET("/:thermometer_id/chart", rs.GetChart)
		thermometers.GET("/:thermometer_id/stats", rs.GetMonthlyStats)
		thermometers.POST("/:thermometer_id/limiter", rs.PostLimiter)
	}

	verifications := rs.Server.Group("/verifications")
	{
		verifications.PUT("/:verification_id", rs.EditVerification)
		verifications.DELETE("/:verification_id", rs.DeleteVerification)
	}
}
