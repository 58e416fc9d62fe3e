package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type GuruRepository interface {
	Create(guru *model.Guru) error
	GetByID(id uint) (*model.Guru, error)
	GetByUserID(userID uint) (*model.Guru, error)
	GetOptions() ([]model.Guru, error)
}

type guruRepository struct {
	db *gorm.DB
}

func NewGuruRepository(db *gorm.DB) GuruRepository {
	return &guruRepository{db}
}

func (r *guruRepository) Create(guru *model.Guru) error {
	return r.db.Create(guru).Error
}

func (r *guruRepository) GetByID(id uint) (*model.Guru, error) {
	var guru model.Guru
	err := r.db.First(&guru, id).Error
	return &guru, err
}

func (r *guruRepository) GetByUserID(userID uint) (*model.Guru, error) {
	var guru model.Guru
	err := r.db.Where("user_id = ?", userID).First(&guru).Error
	return &guru, err
}

// GetOptions untuk pilihan guru pembimbing di form tambah magang
func (r *guruRepository) GetOptions() ([]model.Guru, error) {
	var list []model.Guru
	err := r.db.Select("id", "nama").Order("nama").Find(&list).Error
	return list, err
}
