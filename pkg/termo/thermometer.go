package termo

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"termotrack/pkg/common"
	"termotrack/pkg/models"
)

func (i *Termo) createThermometer(input ThermometerInput) (models.Thermometer, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTermoCore,
		zap.String(common.LoggerFieldTermoCategory, common.LoggerCategoryTermoThermometer),
	)

	if input.Sector == "" || input.Equipment == "" || input.Tag == "" {
		return models.Thermometer{}, fmt.Errorf("%w: sector, equipment and tag are required", ErrValidation)
	}

	thermometer := models.Thermometer{
		Sector:      input.Sector,
		Equipment:   input.Equipment,
		Spec:        input.Spec,
		Tag:         input.Tag,
		StandardTag: input.StandardTag,
	}
	if err := i.Db.Conn.Create(&thermometer).Error; err != nil {
		return models.Thermometer{}, err
	}

	logger.Info("Registered thermometer", zap.Reflect("thermometer", thermometer))
	return thermometer, nil
}

func (i *Termo) updateThermometer(id uint, input ThermometerInput) (models.Thermometer, error) {
	var thermometer models.Thermometer
	if err := i.Db.Conn.First(&thermometer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Thermometer{}, fmt.Errorf("%w: thermometer %d", ErrNotFound, id)
		}
		return models.Thermometer{}, err
	}

	if input.Sector == "" || input.Equipment == "" || input.Tag == "" {
		return models.Thermometer{}, fmt.Errorf("%w: sector, equipment and tag are required", ErrValidation)
	}

	thermometer.Sector = input.Sector
	thermometer.Equipment = input.Equipment
	thermometer.Spec = input.Spec
	thermometer.Tag = input.Tag
	thermometer.StandardTag = input.StandardTag
	if err := i.Db.Conn.
		Model(&models.Thermometer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"sector":       thermometer.Sector,
			"equipment":    thermometer.Equipment,
			"spec":         thermometer.Spec,
			"tag":          thermometer.Tag,
			"standard_tag": thermometer.StandardTag,
		}).Error; err != nil {
		return models.Thermometer{}, err
	}
	return thermometer, nil
}

func (i *Termo) getThermometer(id uint) (models.Thermometer, error) {
	var thermometer models.Thermometer
	if err := i.Db.Conn.First(&thermometer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Thermometer{}, fmt.Errorf("%w: thermometer %d", ErrNotFound, id)
		}
		return models.Thermometer{}, err
	}
	return thermometer, nil
}

func (i *Termo) listThermometers(sector string) ([]models.Thermometer, error) {
	var thermometers []models.Thermometer
	q := i.Db.Conn.Order("id asc")
	if sector != "" {
		q = q.Where("sector = ?", sector)
	}
	err := q.Find(&thermometers).Error
	return thermometers, err
}

func (i *Termo) listSectors() ([]string, error) {
	var sectors []string
	err := i.Db.Conn.
		Model(&models.Thermometer{}).
		Distinct().
		Order("sector asc").
		Pluck("sector", &sectors).Error
	return sectors, err
}

// deleteThermometer cascades: the verifications go first, then the row.
func (i *Termo) deleteThermometer(id uint) error {
	logger := common.GetLoggerWith(
		common.LoggerNameTermoCore,
		zap.String(common.LoggerFieldTermoCategory, common.LoggerCategoryTermoThermometer),
	)

	return i.Db.Conn.Transaction(func(tx *gorm.DB) error {
		var thermometer models.Thermometer
		if err := tx.First(&thermometer, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: thermometer %d", ErrNotFound, id)
			}
			return err
		}

		if err := tx.Where("thermometer_id = ?", id).Delete(&models.Verification{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Thermometer{}, id).Error; err != nil {
			return err
		}

		logger.Info("Deleted thermometer and its verifications", zap.Uint("thermometer_id", id))
		return nil
	})
}

type IThermometerImpl struct {
	termo *Termo
}

func (it *IThermometerImpl) Create(input ThermometerInput) (models.Thermometer, error) {
	return it.termo.createThermometer(input)
}

func (it *IThermometerImpl) Update(id uint, input ThermometerInput) (models.Thermometer, error) {
	return it.termo.updateThermometer(id, input)
}

func (it *IThermometerImpl) Get(id uint) (models.Thermometer, error) {
	return it.termo.getThermometer(id)
}

func (it *IThermometerImpl) List(sector string) ([]models.Thermometer, error) {
	return it.termo.listThermometers(sector)
}

func (it *IThermometerImpl) Sectors() ([]string, error) {
	return it.termo.listSectors()
}

func (it *IThermometerImpl) Delete(id uint) error {
	return it.termo.deleteThermometer(id)
}

func (i *Termo) GetIThermometer() IThermometer {
	return &IThermometerImpl{termo: i}
}
