package termo

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"termotrack/pkg/civil"
	"termotrack/pkg/db"
	"termotrack/pkg/models"
)

func GetTestTermoWithMemorySqliteDialector(t *testing.T) *Termo {
	loc, err := time.LoadLocation(civil.DefaultZoneName)
	require.NoError(t, err)

	dbInstance := db.GetInstance(db.UseMemorySqliteDialector()) // ensure migrations
	termoInstance := &Termo{Db: *dbInstance, Zone: loc}

	termoInstance.WithServices(ServiceOpts{
		Store:        termoInstance.GetIStore(),
		Verification: termoInstance.GetIVerification(),
		Stats:        termoInstance.GetIStats(),
		Alert:        termoInstance.GetIAlert(),
		Thermometer:  termoInstance.GetIThermometer(),
	})

	return termoInstance
}

// newTestThermometer registers a thermometer with a unique sector and tag
// so tests sharing the singleton in-memory database stay isolated.
func newTestThermometer(t *testing.T, termoObj *Termo) models.Thermometer {
	t.Helper()

	thermometer, err := termoObj.Thermometer.Create(ThermometerInput{
		Sector:      "sector-" + uuid.NewString(),
		Equipment:   "Freezer",
		Spec:        "-20 a -18 °C",
		Tag:         "TAG-" + uuid.NewString(),
		StandardTag: "STD-001",
	})
	require.NoError(t, err)
	return thermometer
}

func fptr(v float64) *float64 {
	return &v
}

// localNoon pins "now" to midday in the reference zone of a fixed civil
// date, far from any day boundary.
func localNoon(loc *time.Location, year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, loc).UTC()
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
