package models

import "time"

type NoteCode string

// Fixed observation codes recorded alongside a verification. Code "I"
// stands for "other" and only makes sense together with free text.
const (
	NoteCodeNone            NoteCode = ""
	NoteCodeDefrostCleaning NoteCode = "A"
	NoteCodeDoorSealCheck   NoteCode = "B"
	NoteCodeSupplyExpiry    NoteCode = "C"
	NoteCodeMaintenanceReq  NoteCode = "D"
	NoteCodePowerOutage     NoteCode = "E"
	NoteCodeThermostatReset NoteCode = "F"
	NoteCodeDoorLeftOpen    NoteCode = "G"
	NoteCodePostContamClean NoteCode = "H"
	NoteCodeOther           NoteCode = "I"
)

func (c NoteCode) Known() bool {
	switch c {
	case NoteCodeNone,
		NoteCodeDefrostCleaning,
		NoteCodeDoorSealCheck,
		NoteCodeSupplyExpiry,
		NoteCodeMaintenanceReq,
		NoteCodePowerOutage,
		NoteCodeThermostatReset,
		NoteCodeDoorLeftOpen,
		NoteCodePostContamClean,
		NoteCodeOther:
		return true
	}
	return false
}

type Thermometer struct {
	ID          uint `gorm:"primaryKey"`
	Sector      string
	Equipment   string
	Spec        string
	Tag         string
	StandardTag string

	Verifications []Verification `gorm:"foreignKey:ThermometerID"`
}

// Verification is one day's temperature observation for a thermometer.
// RecordedAt is always UTC; Current is the reading taken at submission
// time, Max/Min are the bounds observed since the previous verification
// and are filled in by the day's second submission.
type Verification struct {
	ID            uint `gorm:"primaryKey"`
	ThermometerID uint `gorm:"index"`
	RecordedAt    time.Time
	Current       *float64
	Max           *float64
	Min           *float64
	Note          string
	RecordedBy    string
}

func (v *Verification) Complete() bool {
	return v.Max != nil && v.Min != nil
}
