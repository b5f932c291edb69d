package termo

import (
	"errors"
	"time"

	"termotrack/pkg/db"
	"termotrack/pkg/models"
)

var (
	// ErrValidation marks caller mistakes; no write happened.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a missing thermometer or verification id.
	ErrNotFound = errors.New("not found")
)

// Identity is the explicit caller identity threaded into submissions.
// CanBackdate holders may supply their own instant and attribution.
type Identity struct {
	Name        string
	CanBackdate bool
}

type SubmitInput struct {
	Current    *float64
	Max        *float64
	Min        *float64
	NoteCode   models.NoteCode
	NoteText   string
	RecordedBy string
	// RecordedAt is a civil.BackdateLayout wall-clock instant in the
	// reference zone; ignored unless the caller CanBackdate.
	RecordedAt string
}

type EditInput struct {
	Current    *float64
	Max        *float64
	Min        *float64
	NoteCode   models.NoteCode
	NoteText   string
	RecordedBy string
}

type SubmitResult struct {
	Verification models.Verification
	Amended      bool
}

type ThermometerInput struct {
	Sector      string
	Equipment   string
	Spec        string
	Tag         string
	StandardTag string
}

type DashboardAlerts struct {
	Late       []uint `json:"late"`
	Incomplete []uint `json:"incomplete"`
}

// IStore is the narrow read/write contract against persisted
// verifications. All instants are UTC; ranges are [start, end).
type IStore interface {
	FindInRange(thermometerID uint, startUTC, endUTC time.Time) ([]models.Verification, error)
	FindAllForThermometer(thermometerID uint) ([]models.Verification, error)
	Insert(v *models.Verification) error
	UpdateBounds(verificationID uint, max, min *float64, note string) error
}

type IVerification interface {
	Submit(thermometerID uint, input SubmitInput, who Identity, now time.Time) (SubmitResult, error)
	History(thermometerID uint, monthKey string) ([]models.Verification, error)
	Edit(verificationID uint, input EditInput) (models.Verification, error)
	Delete(verificationID uint) error
}

type IStats interface {
	Chart(thermometerID uint, monthKey string) (ChartData, error)
	Monthly(thermometerID uint) ([]MonthStats, error)
}

type IAlert interface {
	Classify(thermometerIDs []uint, now time.Time) (DashboardAlerts, error)
}

type IThermometer interface {
	Create(input ThermometerInput) (models.Thermometer, error)
	Update(id uint, input ThermometerInput) (models.Thermometer, error)
	Get(id uint) (models.Thermometer, error)
	List(sector string) ([]models.Thermometer, error)
	Sectors() ([]string, error)
	Delete(id uint) error
}

type Termo struct {
	Db   db.DB
	Zone *time.Location

	Store        IStore
	Verification IVerification
	Stats        IStats
	Alert        IAlert
	Thermometer  IThermometer

	dayLocks thermometerLocks
}

type ServiceOpts struct {
	Store        IStore
	Verification IVerification
	Stats        IStats
	Alert        IAlert
	Thermometer  IThermometer
}

func (i *Termo) WithServices(opts ServiceOpts) *Termo {
	if opts.Store != nil {
		i.Store = opts.Store
	}
	if opts.Verification != nil {
		i.Verification = opts.Verification
	}
	if opts.Stats != nil {
		i.Stats = opts.Stats
	}
	if opts.Alert != nil {
		i.Alert = opts.Alert
	}
	if opts.Thermometer != nil {
		i.Thermometer = opts.Thermometer
	}
	return i
}
