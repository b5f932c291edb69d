package termo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termotrack/pkg/common"
	"termotrack/pkg/models"
	_ "termotrack/pkg/testing"
)

func TestCreateThermometerValidation(t *testing.T) {
	common.SetTestLoggerNop()

	termoObj := GetTestTermoWithMemorySqliteDialector(t)

	_, err := termoObj.Thermometer.Create(ThermometerInput{
		Sector: "kitchen",
	})
	require.ErrorIs(t, err, ErrValidation)
}

func TestUpdateThermometer(t *testing.T) {
	common.SetTestLoggerNop()

	termoObj := GetTestTermoWithMemorySqliteDialector(t)
	thermometer := newTestThermometer(t, termoObj)

	updated, err := termoObj.Thermometer.Update(thermometer.ID, ThermometerInput{
		Sector:      thermometer.Sector,
		Equipment:   "Cold room 2",
		Spec:        "0 a 4 °C",
		Tag:         thermometer.Tag,
		StandardTag: "STD-002",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cold room 2", updated.Equipment)

	stored, err := termoObj.Thermometer.Get(thermometer.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cold room 2", stored.Equipment)
	assert.Equal(t, "STD-002", stored.StandardTag)

	_, err = termoObj.Thermometer.Update(99999999, ThermometerInput{
		Sector: "x", Equipment: "y", Tag: "z",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListThermometersBySector(t *testing.T) {
	common.SetTestLoggerNop()

	termoObj := GetTestTermoWithMemorySqliteDialector(t)

	sector := "sector-" + uuid.NewString()
	for i := 0; i < 2; i++ {
		_, err := termoObj.Thermometer.Create(ThermometerInput{
			Sector:    sector,
			Equipment: "Freezer",
			Tag:       "TAG-" + uuid.NewString(),
		})
		require.NoError(t, err)
	}
	other := newTestThermometer(t, termoObj)

	listed, err := termoObj.Thermometer.List(sector)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	for _, thermometer := range listed {
		assert.Equal(t, sector, thermometer.Sector)
	}

	sectors, err := termoObj.Thermometer.Sectors()
	require.NoError(t, err)
	assert.Contains(t, sectors, sector)
	assert.Contains(t, sectors, other.Sector)
}

func TestDeleteThermometerCascades(t *testing.T) {
	common.SetTestLoggerNop()

	termoObj := GetTestTermoWithMemorySqliteDialector(t)
	thermometer := newTestThermometer(t, termoObj)
	now := localNoon(termoObj.Zone, 2024, time.July, 15)

	require.NoError(t, termoObj.Store.Insert(&models.Verification{
		ThermometerID: thermometer.ID,
		RecordedAt:    now,
		Current:       fptr(5.0),
	}))
	require.NoError(t, termoObj.Store.Insert(&models.Verification{
		ThermometerID: thermometer.ID,
		RecordedAt:    now.AddDate(0, 0, -1),
		Current:       fptr(6.0),
	}))

	require.NoError(t, termoObj.Thermometer.Delete(thermometer.ID))

	_, err := termoObj.Thermometer.Get(thermometer.ID)
	require.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, termoObj.Db.Conn.
		Model(&models.Verification{}).
		Where("thermometer_id = ?", thermometer.ID).
		Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.ErrorIs(t, termoObj.Thermometer.Delete(thermometer.ID), ErrNotFound)
}
