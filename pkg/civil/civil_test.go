package civil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(DefaultZoneName)
	require.NoError(t, err)
	return loc
}

func TestDayBoundsStableWithinDay(t *testing.T) {
	loc := saoPaulo(t)

	// all instants of one civil day map to the same pair
	base := time.Date(2024, 7, 15, 0, 0, 0, 0, loc)
	start, end := DayBounds(base, loc)

	for _, offset := range []time.Duration{
		0,
		30 * time.Minute,
		12 * time.Hour,
		23*time.Hour + 59*time.Minute,
	} {
		s, e := DayBounds(base.Add(offset), loc)
		assert.Equal(t, start, s)
		assert.Equal(t, end, e)
	}

	assert.Equal(t, 24*time.Hour, end.Sub(start))
	assert.Equal(t, time.UTC, start.Location())
	assert.Equal(t, time.UTC, end.Location())
}

func TestDayBoundsUsesCivilDateNotUTCDate(t *testing.T) {
	loc := saoPaulo(t)

	// 01:30 UTC on July 16 is still 22:30 on July 15 in São Paulo (-03)
	at := time.Date(2024, 7, 16, 1, 30, 0, 0, time.UTC)
	start, end := DayBounds(at, loc)

	assert.Equal(t, time.Date(2024, 7, 15, 3, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 7, 16, 3, 0, 0, 0, time.UTC), end)
}

func TestDayBoundsDSTTransitions(t *testing.T) {
	loc := saoPaulo(t)

	// 2018-11-04: clocks jump 00:00 -> 01:00, the civil day has 23 hours
	// and starts at the post-gap instant, 01:00 -02 = 03:00 UTC
	start, end := DayBounds(time.Date(2018, 11, 4, 12, 0, 0, 0, loc), loc)
	assert.Equal(t, time.Date(2018, 11, 4, 3, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2018, 11, 5, 2, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 23*time.Hour, end.Sub(start))

	// 2019-02-16: clocks fall back at the next midnight, 25 hours
	start, end = DayBounds(time.Date(2019, 2, 16, 12, 0, 0, 0, loc), loc)
	assert.Equal(t, 25*time.Hour, end.Sub(start))

	// consecutive days stay contiguous across the spring-forward gap,
	// and Nov 3 keeps its full 24 hours
	startNov3, endNov3 := DayBounds(time.Date(2018, 11, 3, 12, 0, 0, 0, loc), loc)
	startNov4, _ := DayBounds(time.Date(2018, 11, 4, 12, 0, 0, 0, loc), loc)
	assert.Equal(t, endNov3, startNov4)
	assert.Equal(t, 24*time.Hour, endNov3.Sub(startNov3))

	// the last hour before the gap still belongs to Nov 3
	lateStart, lateEnd := DayBounds(time.Date(2018, 11, 3, 23, 30, 0, 0, loc), loc)
	assert.Equal(t, startNov3, lateStart)
	assert.Equal(t, endNov3, lateEnd)
}

func TestMonthBounds(t *testing.T) {
	loc := saoPaulo(t)

	start, end := MonthBounds(2024, time.February, loc)
	assert.Equal(t, time.Date(2024, 2, 1, 3, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC), end)
}

func TestMonthKey(t *testing.T) {
	loc := saoPaulo(t)

	// 01:30 UTC on March 1 is still February in São Paulo
	at := time.Date(2024, 3, 1, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-02", MonthKey(at, loc))
}

func TestParseMonthKey(t *testing.T) {
	year, month, err := ParseMonthKey("2024-02")
	assert.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.February, month)

	_, _, err = ParseMonthKey("02/2024")
	assert.Error(t, err)
}

func TestParseBackdate(t *testing.T) {
	loc := saoPaulo(t)

	at, err := ParseBackdate("2024-07-15T08:00", loc)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 15, 11, 0, 0, 0, time.UTC), at)

	_, err = ParseBackdate("15/07/2024 08:00", loc)
	assert.Error(t, err)
}
