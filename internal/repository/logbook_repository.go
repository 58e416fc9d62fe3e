package repository

import (
	"errors"
	"fmt"

	"simagang-backend/internal/apperror"
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type LogbookFilter struct {
	// MagangID diisi handler untuk scope siswa (magang berlangsung terbaru).
	MagangID uint
	Status   string
	Month    int
	Year     int
	Date     string
	Limit    int
	Offset   int
}

type LogbookStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Disetujui int64 `json:"disetujui"`
	Ditolak   int64 `json:"ditolak"`
}

type LogbookRepository interface {
	List(f LogbookFilter, scope Scope) ([]model.Logbook, int64, error)
	Stats(scope Scope) (LogbookStats, error)
	GetByID(id uint) (*model.Logbook, error)
	ExistsForDate(magangID uint, date string) (bool, error)
	Create(logbook *model.Logbook) error
	Update(logbook *model.Logbook) error
	Delete(id uint) error
}

type logbookRepository struct {
	db *gorm.DB
}

func NewLogbookRepository(db *gorm.DB) LogbookRepository {
	return &logbookRepository{db}
}

func (r *logbookRepository) scoped(query *gorm.DB, scope Scope) *gorm.DB {
	switch {
	case scope.IsGuru():
		if scope.GuruID == 0 {
			return query.Where("1 = 0")
		}
		return query.
			Joins("JOIN magangs ON magangs.id = logbooks.magang_id").
			Where("magangs.guru_id = ?", scope.GuruID)
	case scope.IsSiswa():
		if scope.SiswaID == 0 {
			return query.Where("1 = 0")
		}
		return query.
			Joins("JOIN magangs ON magangs.id = logbooks.magang_id").
			Where("magangs.siswa_id = ?", scope.SiswaID)
	}
	return query
}

func (r *logbookRepository) List(f LogbookFilter, scope Scope) ([]model.Logbook, int64, error) {
	query := r.db.Model(&model.Logbook{})

	if scope.IsSiswa() {
		// Siswa hanya melihat jurnal dari magang berlangsung terbarunya
		if f.MagangID == 0 {
			query = query.Where("1 = 0")
		} else {
			query = query.Where("magang_id = ?", f.MagangID)
		}
	} else {
		query = r.scoped(query, scope)
	}

	if f.Status != "" {
		query = query.Where("logbooks.status_verifikasi = ?", f.Status)
	}
	// Tanggal disimpan sebagai string 2006-01-02, filter bulan/tahun
	// cukup lewat substring agar portable antar driver.
	if f.Month != 0 {
		query = query.Where("SUBSTR(logbooks.tanggal, 6, 2) = ?", fmt.Sprintf("%02d", f.Month))
	}
	if f.Year != 0 {
		query = query.Where("SUBSTR(logbooks.tanggal, 1, 4) = ?", fmt.Sprintf("%04d", f.Year))
	}
	if f.Date != "" {
		query = query.Where("logbooks.tanggal = ?", f.Date)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Logbook
	err := query.Preload("Magang").Preload("Magang.Siswa").Preload("Magang.Dudi").
		Order("logbooks.tanggal desc").
		Limit(f.Limit).Offset(f.Offset).
		Find(&list).Error
	return list, total, err
}

func (r *logbookRepository) Stats(scope Scope) (LogbookStats, error) {
	var stats LogbookStats

	count := func(status string, dest *int64) error {
		query := r.scoped(r.db.Model(&model.Logbook{}), scope)
		if status != "" {
			query = query.Where("logbooks.status_verifikasi = ?", status)
		}
		return query.Count(dest).Error
	}

	if err := count("", &stats.Total); err != nil {
		return stats, err
	}
	if err := count(model.VerifikasiPending, &stats.Pending); err != nil {
		return stats, err
	}
	if err := count(model.VerifikasiDisetujui, &stats.Disetujui); err != nil {
		return stats, err
	}
	err := count(model.VerifikasiDitolak, &stats.Ditolak)
	return stats, err
}

func (r *logbookRepository) GetByID(id uint) (*model.Logbook, error) {
	var logbook model.Logbook
	err := r.db.Preload("Magang").Preload("Magang.Siswa").Preload("Magang.Dudi").First(&logbook, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.NotFound, "Jurnal tidak ditemukan")
	}
	return &logbook, err
}

func (r *logbookRepository) ExistsForDate(magangID uint, date string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Logbook{}).
		Where("magang_id = ? AND tanggal = ?", magangID, date).
		Count(&count).Error
	return count > 0, err
}

func (r *logbookRepository) Create(logbook *model.Logbook) error {
	return r.db.Create(logbook).Error
}

func (r *logbookRepository) Update(logbook *model.Logbook) error {
	return r.db.Save(logbook).Error
}

func (r *logbookRepository) Delete(id uint) error {
	return r.db.Delete(&model.Logbook{}, id).Error
}
