// Package civil converts stored UTC instants to calendar days and months
// as observed in the service's fixed reference timezone.
package civil

import (
	"os"
	"time"
	// make the reference zone loadable even without a system tzdata dir
	_ "time/tzdata"

	"termotrack/pkg/common"
)

const DefaultZoneName = "America/Sao_Paulo"

// BackdateLayout is the wall-clock format privileged submitters use to
// supply an explicit local instant.
const BackdateLayout = "2006-01-02T15:04"

func LoadReferenceZone() (*time.Location, error) {
	name := os.Getenv(common.EnvKeyTermoReferenceTZ)
	if name == "" {
		name = DefaultZoneName
	}
	return time.LoadLocation(name)
}

// midnight returns the first instant of a civil date in loc. When a DST
// gap swallows the 00:00 wall clock, time.Date lands on an adjacent day
// (São Paulo 2018-11-04 00:00 comes back as 2018-11-03 23:00 -03); probe
// forward until the instant falls on the requested date.
func midnight(year int, month time.Month, day int, loc *time.Location) time.Time {
	wantY, wantM, wantD := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	t := time.Date(year, month, day, 0, 0, 0, 0, loc)
	for {
		y, m, d := t.Date()
		if y == wantY && m == wantM && d == wantD {
			return t
		}
		t = t.Add(time.Hour)
	}
}

// DayBounds returns the UTC instants of [00:00, next 00:00) for the civil
// date that `at` falls on in loc. The span is 24h except on the zone's
// DST transition days, where it is 23h or 25h.
func DayBounds(at time.Time, loc *time.Location) (startUTC, endUTC time.Time) {
	local := at.In(loc)
	start := midnight(local.Year(), local.Month(), local.Day(), loc)
	end := midnight(local.Year(), local.Month(), local.Day()+1, loc)
	return start.UTC(), end.UTC()
}

// MonthBounds returns the UTC instants of [1st 00:00, next month's 1st
// 00:00) for a civil month in loc.
func MonthBounds(year int, month time.Month, loc *time.Location) (startUTC, endUTC time.Time) {
	start := midnight(year, month, 1, loc)
	end := midnight(year, month+1, 1, loc)
	return start.UTC(), end.UTC()
}

// MonthKey gives the "YYYY-MM" partition key of an instant in loc.
func MonthKey(at time.Time, loc *time.Location) string {
	return at.In(loc).Format("2006-01")
}

func ParseMonthKey(key string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}

// ParseBackdate interprets a privileged submitter's wall-clock instant in
// loc and converts it to UTC.
func ParseBackdate(value string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(BackdateLayout, value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
