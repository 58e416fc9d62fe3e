package repository

import (
	"errors"

	"simagang-backend/internal/apperror"
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type DudiFilter struct {
	Search string
	Status string
	Limit  int
	Offset int
}

// DudiStats ringkasan direktori mitra, angkanya mengikuti scope pemanggil.
type DudiStats struct {
	TotalDudi        int64   `json:"total_dudi"`
	DudiAktif        int64   `json:"dudi_aktif"`
	DudiTidakAktif   int64   `json:"dudi_tidak_aktif"`
	TotalSiswaMagang int64   `json:"total_siswa_magang"`
	RataRataSiswa    float64 `json:"rata_rata_siswa,omitempty"`
}

type DudiRepository interface {
	List(f DudiFilter, scope Scope) ([]model.Dudi, int64, error)
	Stats(scope Scope) (DudiStats, error)
	// ActiveInternCounts menghitung jumlah magang berlangsung per DUDI.
	// guruID = 0 berarti hitungan global.
	ActiveInternCounts(dudiIDs []uint, guruID uint) (map[uint]int64, error)
	GetByID(id uint) (*model.Dudi, error)
	ExistsByName(name string, excludeID uint) (bool, error)
	Create(dudi *model.Dudi) error
	Update(dudi *model.Dudi) error
	SoftDelete(id uint) error
	Restore(id uint) (*model.Dudi, error)
	SiswaMagang(dudiID uint) ([]model.Magang, error)
}

type dudiRepository struct {
	db *gorm.DB
}

func NewDudiRepository(db *gorm.DB) DudiRepository {
	return &dudiRepository{db}
}

func (r *dudiRepository) applySearch(query *gorm.DB, search string) *gorm.DB {
	if search == "" {
		return query
	}
	like := "%" + search + "%"
	return query.Where(
		"nama_perusahaan LIKE ? OR alamat LIKE ? OR penanggung_jawab LIKE ? OR email LIKE ? OR telepon LIKE ?",
		like, like, like, like, like,
	)
}

func (r *dudiRepository) List(f DudiFilter, scope Scope) ([]model.Dudi, int64, error) {
	query := r.db.Model(&model.Dudi{}).Preload("User")

	switch {
	case scope.IsGuru():
		// Guru hanya melihat DUDI yang punya magang bimbingannya
		if scope.GuruID == 0 {
			query = query.Where("1 = 0")
		} else {
			query = query.Where(
				"EXISTS (SELECT 1 FROM magangs WHERE magangs.dudi_id = dudis.id AND magangs.guru_id = ? AND magangs.deleted_at IS NULL)",
				scope.GuruID,
			)
		}
	case scope.IsSiswa():
		// Siswa hanya melihat DUDI aktif yang bisa dilamar
		query = query.Where("status = ?", model.DudiAktif)
	}

	query = r.applySearch(query, f.Search)
	if f.Status != "" && !scope.IsSiswa() {
		query = query.Where("status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Dudi
	err := query.Order("created_at desc").Limit(f.Limit).Offset(f.Offset).Find(&list).Error
	return list, total, err
}

func (r *dudiRepository) Stats(scope Scope) (DudiStats, error) {
	var stats DudiStats

	if scope.IsGuru() {
		if scope.GuruID == 0 {
			return stats, nil
		}
		supervised := r.db.Model(&model.Dudi{}).Where(
			"EXISTS (SELECT 1 FROM magangs WHERE magangs.dudi_id = dudis.id AND magangs.guru_id = ? AND magangs.deleted_at IS NULL)",
			scope.GuruID,
		)
		if err := supervised.Count(&stats.TotalDudi).Error; err != nil {
			return stats, err
		}
		supervisedAktif := r.db.Model(&model.Dudi{}).Where("status = ?", model.DudiAktif).Where(
			"EXISTS (SELECT 1 FROM magangs WHERE magangs.dudi_id = dudis.id AND magangs.guru_id = ? AND magangs.deleted_at IS NULL)",
			scope.GuruID,
		)
		if err := supervisedAktif.Count(&stats.DudiAktif).Error; err != nil {
			return stats, err
		}
		stats.DudiTidakAktif = stats.TotalDudi - stats.DudiAktif

		err := r.db.Model(&model.Magang{}).
			Where("guru_id = ? AND status = ?", scope.GuruID, model.MagangBerlangsung).
			Count(&stats.TotalSiswaMagang).Error
		if err != nil {
			return stats, err
		}
		if stats.TotalDudi > 0 {
			stats.RataRataSiswa = float64(stats.TotalSiswaMagang) / float64(stats.TotalDudi)
		}
		return stats, nil
	}

	if err := r.db.Model(&model.Dudi{}).Count(&stats.TotalDudi).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&model.Dudi{}).Where("status = ?", model.DudiAktif).Count(&stats.DudiAktif).Error; err != nil {
		return stats, err
	}
	if err := r.db.Model(&model.Dudi{}).Where("status = ?", model.DudiTidakAktif).Count(&stats.DudiTidakAktif).Error; err != nil {
		return stats, err
	}
	err := r.db.Model(&model.Magang{}).Where("status = ?", model.MagangBerlangsung).Count(&stats.TotalSiswaMagang).Error
	return stats, err
}

func (r *dudiRepository) ActiveInternCounts(dudiIDs []uint, guruID uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(dudiIDs))
	if len(dudiIDs) == 0 {
		return counts, nil
	}

	query := r.db.Model(&model.Magang{}).
		Where("dudi_id IN ? AND status = ?", dudiIDs, model.MagangBerlangsung)
	if guruID != 0 {
		query = query.Where("guru_id = ?", guruID)
	}

	var rows []struct {
		DudiID uint
		Count  int64
	}
	err := query.Select("dudi_id, count(*) as count").Group("dudi_id").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.DudiID] = row.Count
	}
	return counts, nil
}

func (r *dudiRepository) GetByID(id uint) (*model.Dudi, error) {
	var dudi model.Dudi
	err := r.db.Preload("User").First(&dudi, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.NotFound, "Data DUDI tidak ditemukan")
	}
	return &dudi, err
}

// ExistsByName hanya memeriksa baris yang belum dihapus: nama DUDI yang
// sudah di-soft-delete boleh dipakai ulang.
func (r *dudiRepository) ExistsByName(name string, excludeID uint) (bool, error) {
	query := r.db.Model(&model.Dudi{}).Where("nama_perusahaan = ?", name)
	if excludeID != 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *dudiRepository) Create(dudi *model.Dudi) error {
	return r.db.Create(dudi).Error
}

func (r *dudiRepository) Update(dudi *model.Dudi) error {
	return r.db.Save(dudi).Error
}

func (r *dudiRepository) SoftDelete(id uint) error {
	result := r.db.Delete(&model.Dudi{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.New(apperror.NotFound, "Data DUDI tidak ditemukan")
	}
	return nil
}

func (r *dudiRepository) Restore(id uint) (*model.Dudi, error) {
	var dudi model.Dudi
	err := r.db.Unscoped().Where("id = ? AND deleted_at IS NOT NULL", id).First(&dudi).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.NotFound, "Data DUDI terhapus tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}

	if err := r.db.Unscoped().Model(&dudi).Update("deleted_at", nil).Error; err != nil {
		return nil, err
	}
	dudi.DeletedAt = gorm.DeletedAt{}
	return &dudi, nil
}

func (r *dudiRepository) SiswaMagang(dudiID uint) ([]model.Magang, error) {
	var list []model.Magang
	err := r.db.Preload("Siswa").Where("dudi_id = ?", dudiID).Find(&list).Error
	return list, err
}
