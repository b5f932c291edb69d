package termo

import (
	"time"

	"termotrack/pkg/models"
)

func (i *Termo) findInRange(thermometerID uint, startUTC, endUTC time.Time) ([]models.Verification, error) {
	var verifications []models.Verification
	err := i.Db.Conn.
		Where("thermometer_id = ? AND recorded_at >= ? AND recorded_at < ?", thermometerID, startUTC, endUTC).
		Order("recorded_at asc").
		Find(&verifications).Error
	return verifications, err
}

func (i *Termo) findAllForThermometer(thermometerID uint) ([]models.Verification, error) {
	var verifications []models.Verification
	err := i.Db.Conn.
		Where("thermometer_id = ?", thermometerID).
		Order("recorded_at asc").
		Find(&verifications).Error
	return verifications, err
}

func (i *Termo) insertVerification(v *models.Verification) error {
	return i.Db.Conn.Create(v).Error
}

// updateBounds amends only the bounding values and the note of an
// existing verification; instant and current value stay untouched.
func (i *Termo) updateBounds(verificationID uint, max, min *float64, note string) error {
	return i.Db.Conn.
		Model(&models.Verification{}).
		Where("id = ?", verificationID).
		Updates(map[string]any{"max": max, "min": min, "note": note}).Error
}

type IStoreImpl struct {
	termo *Termo
}

func (is *IStoreImpl) FindInRange(thermometerID uint, startUTC, endUTC time.Time) ([]models.Verification, error) {
	return is.termo.findInRange(thermometerID, startUTC, endUTC)
}

func (is *IStoreImpl) FindAllForThermometer(thermometerID uint) ([]models.Verification, error) {
	return is.termo.findAllForThermometer(thermometerID)
}

func (is *IStoreImpl) Insert(v *models.Verification) error {
	return is.termo.insertVerification(v)
}

func (is *IStoreImpl) UpdateBounds(verificationID uint, max, min *float64, note string) error {
	return is.termo.updateBounds(verificationID, max, min, note)
}

func (i *Termo) GetIStore() IStore {
	return &IStoreImpl{termo: i}
}
