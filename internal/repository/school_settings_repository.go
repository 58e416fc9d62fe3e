package repository

import (
	"errors"

	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type SchoolSettingsRepository interface {
	// Get mengembalikan record tunggal; record kosong jika belum pernah diisi.
	Get() (*model.SchoolSettings, error)
	Save(settings *model.SchoolSettings) error
}

type schoolSettingsRepository struct {
	db *gorm.DB
}

func NewSchoolSettingsRepository(db *gorm.DB) SchoolSettingsRepository {
	return &schoolSettingsRepository{db}
}

func (r *schoolSettingsRepository) Get() (*model.SchoolSettings, error) {
	var settings model.SchoolSettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.SchoolSettings{}, nil
	}
	return &settings, err
}

func (r *schoolSettingsRepository) Save(settings *model.SchoolSettings) error {
	return r.db.Save(settings).Error
}
