package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type SiswaRepository interface {
	Create(siswa *model.Siswa) error
	GetByID(id uint) (*model.Siswa, error)
	GetByUserID(userID uint) (*model.Siswa, error)
	GetOptions() ([]model.Siswa, error)
	Count() (int64, error)
}

type siswaRepository struct {
	db *gorm.DB
}

func NewSiswaRepository(db *gorm.DB) SiswaRepository {
	return &siswaRepository{db}
}

func (r *siswaRepository) Create(siswa *model.Siswa) error {
	return r.db.Create(siswa).Error
}

func (r *siswaRepository) GetByID(id uint) (*model.Siswa, error) {
	var siswa model.Siswa
	err := r.db.First(&siswa, id).Error
	return &siswa, err
}

func (r *siswaRepository) GetByUserID(userID uint) (*model.Siswa, error) {
	var siswa model.Siswa
	err := r.db.Where("user_id = ?", userID).First(&siswa).Error
	return &siswa, err
}

// GetOptions untuk pilihan siswa di form tambah magang
func (r *siswaRepository) GetOptions() ([]model.Siswa, error) {
	var list []model.Siswa
	err := r.db.Select("id", "nama").Order("nama").Find(&list).Error
	return list, err
}

func (r *siswaRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Siswa{}).Count(&count).Error
	return count, err
}
