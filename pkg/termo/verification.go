package termo

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"termotrack/pkg/civil"
	"termotrack/pkg/common"
	"termotrack/pkg/models"
)

// resolveNote turns a coded annotation plus optional free text into the
// stored note. Free text always wins; a code outside the enumeration is
// only acceptable when paired with free text.
func resolveNote(code models.NoteCode, text string) (string, error) {
	if text != "" {
		return text, nil
	}
	if code == models.NoteCodeNone {
		return "", nil
	}
	if !code.Known() {
		return "", fmt.Errorf("%w: unknown note code %q without note text", ErrValidation, code)
	}
	return string(code), nil
}

// submit runs the per-day verification cycle: the day's first submission
// inserts a verification, any further submission on the same civil day
// amends that row's bounding values and note in place.
func (i *Termo) submit(thermometerID uint, input SubmitInput, who Identity, now time.Time) (SubmitResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTermoCore,
		zap.String(common.LoggerFieldTermoCategory, common.LoggerCategoryTermoVerification),
	)

	if err := i.Db.Conn.First(&models.Thermometer{}, thermometerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SubmitResult{}, fmt.Errorf("%w: thermometer %d", ErrNotFound, thermometerID)
		}
		return SubmitResult{}, err
	}

	note, err := resolveNote(input.NoteCode, input.NoteText)
	if err != nil {
		return SubmitResult{}, err
	}

	recordedAt := now.UTC()
	recordedBy := who.Name
	if who.CanBackdate {
		if input.RecordedAt != "" {
			if recordedAt, err = civil.ParseBackdate(input.RecordedAt, i.Zone); err != nil {
				return SubmitResult{}, fmt.Errorf("%w: recorded_at %q is not %q", ErrValidation, input.RecordedAt, civil.BackdateLayout)
			}
		}
		if input.RecordedBy != "" {
			recordedBy = input.RecordedBy
		}
	}

	// read-decide-write is serialized per thermometer; see thermometerLocks
	unlock := i.dayLocks.lock(thermometerID)
	defer unlock()

	startUTC, endUTC := civil.DayBounds(recordedAt, i.Zone)
	existing, err := i.Store.FindInRange(thermometerID, startUTC, endUTC)
	if err != nil {
		return SubmitResult{}, err
	}

	if len(existing) > 0 {
		v := existing[0]
		if err := i.Store.UpdateBounds(v.ID, input.Max, input.Min, note); err != nil {
			return SubmitResult{}, err
		}
		v.Max = input.Max
		v.Min = input.Min
		v.Note = note

		logger.Info("Amended verification for thermometer", zap.Reflect("verification", v))
		return SubmitResult{Verification: v, Amended: true}, nil
	}

	if input.Current == nil {
		return SubmitResult{}, fmt.Errorf("%w: current temperature is required on the day's first verification", ErrValidation)
	}

	v := models.Verification{
		ThermometerID: thermometerID,
		RecordedAt:    recordedAt,
		Current:       input.Current,
		Max:           input.Max,
		Min:           input.Min,
		Note:          note,
		RecordedBy:    recordedBy,
	}
	if err := i.Store.Insert(&v); err != nil {
		return SubmitResult{}, err
	}

	logger.Info("Recorded verification for thermometer", zap.Reflect("verification", v))
	return SubmitResult{Verification: v}, nil
}

func (i *Termo) history(thermometerID uint, monthKey string) ([]models.Verification, error) {
	if err := i.Db.Conn.First(&models.Thermometer{}, thermometerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: thermometer %d", ErrNotFound, thermometerID)
		}
		return nil, err
	}

	if monthKey == "" {
		return i.Store.FindAllForThermometer(thermometerID)
	}

	year, month, err := civil.ParseMonthKey(monthKey)
	if err != nil {
		return nil, fmt.Errorf("%w: month %q is not YYYY-MM", ErrValidation, monthKey)
	}
	startUTC, endUTC := civil.MonthBounds(year, month, i.Zone)
	return i.Store.FindInRange(thermometerID, startUTC, endUTC)
}

// editVerification is the administrative full overwrite; the daily cycle
// never goes through here.
func (i *Termo) editVerification(verificationID uint, input EditInput) (models.Verification, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTermoCore,
		zap.String(common.LoggerFieldTermoCategory, common.LoggerCategoryTermoVerification),
	)

	var v models.Verification
	if err := i.Db.Conn.First(&v, verificationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Verification{}, fmt.Errorf("%w: verification %d", ErrNotFound, verificationID)
		}
		return models.Verification{}, err
	}

	note, err := resolveNote(input.NoteCode, input.NoteText)
	if err != nil {
		return models.Verification{}, err
	}
	if input.Current == nil {
		return models.Verification{}, fmt.Errorf("%w: current temperature is required", ErrValidation)
	}

	v.Current = input.Current
	v.Max = input.Max
	v.Min = input.Min
	v.Note = note
	v.RecordedBy = input.RecordedBy
	if err := i.Db.Conn.
		Model(&models.Verification{}).
		Where("id = ?", v.ID).
		Updates(map[string]any{
			"current":     v.Current,
			"max":         v.Max,
			"min":         v.Min,
			"note":        v.Note,
			"recorded_by": v.RecordedBy,
		}).Error; err != nil {
		return models.Verification{}, err
	}

	logger.Info("Edited verification", zap.Reflect("verification", v))
	return v, nil
}

func (i *Termo) deleteVerification(verificationID uint) error {
	res := i.Db.Conn.Delete(&models.Verification{}, verificationID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: verification %d", ErrNotFound, verificationID)
	}
	return nil
}

type IVerificationImpl struct {
	termo *Termo
}

func (iv *IVerificationImpl) Submit(thermometerID uint, input SubmitInput, who Identity, now time.Time) (SubmitResult, error) {
	return iv.termo.submit(thermometerID, input, who, now)
}

func (iv *IVerificationImpl) History(thermometerID uint, monthKey string) ([]models.Verification, error) {
	return iv.termo.history(thermometerID, monthKey)
}

func (iv *IVerificationImpl) Edit(verificationID uint, input EditInput) (models.Verification, error) {
	return iv.termo.editVerification(verificationID, input)
}

func (iv *IVerificationImpl) Delete(verificationID uint) error {
	return iv.termo.deleteVerification(verificationID)
}

func (i *Termo) GetIVerification() IVerification {
	return &IVerificationImpl{termo: i}
}
