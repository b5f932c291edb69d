package termo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termotrack/pkg/common"
	"termotrack/pkg/models"
	_ "termotrack/pkg/testing"
)

func TestClassify(t *testing.T) {
	common.SetTestLoggerNop()

	termoObj := GetTestTermoWithMemorySqliteDialector(t)
	now := localNoon(termoObj.Zone, 2024, time.July, 15)

	late := newTestThermometer(t, termoObj)
	incomplete := newTestThermometer(t, termoObj)
	compliant := newTestThermometer(t, termoObj)

	// readings on other days don't count for today
	require.NoError(t, termoObj.Store.Insert(&models.Verification{
		ThermometerID: late.ID,
		RecordedAt:    now.AddDate(0, 0, -1),
		Current:       fptr(5.0),
		Max:           fptr(7.0),
		Min:           fptr(3.0),
	}))

	_, err := termoObj.Verification.Submit(incomplete.ID, SubmitInput{
		Current: fptr(5.0),
	}, Identity{Name: "ana"}, now)
	require.NoError(t, err)

	_, err = termoObj.Verification.Submit(compliant.ID, SubmitInput{
		Current: fptr(5.0),
	}, Identity{Name: "ana"}, now)
	require.NoError(t, err)
	_, err = termoObj.Verification.Submit(compliant.ID, SubmitInput{
		Max: fptr(7.0),
		Min: fptr(3.0),
	}, Identity{Name: "ana"}, now)
	require.NoError(t, err)

	alerts, err := termoObj.Alert.Classify([]uint{late.ID, incomplete.ID, compliant.ID}, now)
	require.NoError(t, err)

	assert.Equal(t, []uint{late.ID}, alerts.Late)
	assert.Equal(t, []uint{incomplete.ID}, alerts.Incomplete)
}

func TestClassifyPartialAmendIsIncomplete(t *testing.T) {
	common.SetTestLoggerNop()

	termoObj := GetTestTermoWithMemorySqliteDialector(t)
	now := localNoon(termoObj.Zone, 2024, time.July, 15)
	thermometer := newTestThermometer(t, termoObj)

	// a row with exactly one bounding value is not a valid terminal
	// state but must classify as incomplete, not error
	require.NoError(t, termoObj.Store.Insert(&models.Verification{
		ThermometerID: thermometer.ID,
		RecordedAt:    now,
		Current:       fptr(5.0),
		Max:           fptr(7.0),
	}))

	alerts, err := termoObj.Alert.Classify([]uint{thermometer.ID}, now)
	require.NoError(t, err)
	assert.Equal(t, []uint{thermometer.ID}, alerts.Incomplete)
	assert.Empty(t, alerts.Late)
}

func TestDailyCycleEndToEnd(t *testing.T) {
	common.SetTestLoggerNop()

	termoObj := GetTestTermoWithMemorySqliteDialector(t)
	thermometer := newTestThermometer(t, termoObj)
	who := Identity{Name: "ana"}
	morning := time.Date(2024, 7, 15, 8, 0, 0, 0, termoObj.Zone).UTC()
	evening := time.Date(2024, 7, 15, 17, 0, 0, 0, termoObj.Zone).UTC()
	nextDay := time.Date(2024, 7, 16, 8, 0, 0, 0, termoObj.Zone).UTC()
	ids := []uint{thermometer.ID}

	// fresh unit with no readings is late
	alerts, err := termoObj.Alert.Classify(ids, morning)
	require.NoError(t, err)
	assert.Equal(t, ids, alerts.Late)

	// first submission at 08:00 local: created, now incomplete
	first, err := termoObj.Verification.Submit(thermometer.ID, SubmitInput{
		Current: fptr(5.0),
	}, who, morning)
	require.NoError(t, err)
	assert.False(t, first.Amended)

	alerts, err = termoObj.Alert.Classify(ids, morning)
	require.NoError(t, err)
	assert.Empty(t, alerts.Late)
	assert.Equal(t, ids, alerts.Incomplete)

	// second submission at 17:00 local amends the same row: compliant
	second, err := termoObj.Verification.Submit(thermometer.ID, SubmitInput{
		Max: fptr(7.0),
		Min: fptr(3.0),
	}, who, evening)
	require.NoError(t, err)
	assert.True(t, second.Amended)
	assert.Equal(t, first.Verification.ID, second.Verification.ID)

	alerts, err = termoObj.Alert.Classify(ids, evening)
	require.NoError(t, err)
	assert.Empty(t, alerts.Late)
	assert.Empty(t, alerts.Incomplete)

	// the cycle resets at the day boundary with nothing to clear
	alerts, err = termoObj.Alert.Classify(ids, nextDay)
	require.NoError(t, err)
	assert.Equal(t, ids, alerts.Late)
}
