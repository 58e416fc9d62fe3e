package repository

import (
	"errors"

	"simagang-backend/internal/apperror"
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

// MaxPendaftaran: batas pendaftaran magang non-terminal per siswa.
const MaxPendaftaran = 3

type MagangFilter struct {
	Search string
	Status string
	Limit  int
	Offset int
}

type MagangStats struct {
	Total   int64 `json:"total"`
	Aktif   int64 `json:"aktif"`
	Selesai int64 `json:"selesai"`
	Pending int64 `json:"pending"`
}

// MagangUpdate: field yang boleh diubah lewat operasi update. Pointer nil
// berarti field tidak dikirim.
type MagangUpdate struct {
	TanggalMulai   *string
	TanggalSelesai *string
	Status         *string
	NilaiAkhir     *float64
}

type MagangRepository interface {
	// Apply membuat pendaftaran mandiri siswa (status pending). Batas
	// maksimal dan cek duplikasi dievaluasi dalam satu transaksi.
	Apply(siswaID, dudiID uint) (*model.Magang, error)
	List(f MagangFilter, scope Scope) ([]model.Magang, int64, error)
	Stats(scope Scope) (MagangStats, error)
	GetByID(id uint) (*model.Magang, error)
	Create(magang *model.Magang) error
	Update(id uint, input MagangUpdate, scope Scope) (*model.Magang, error)
	Delete(id uint, scope Scope) error
	// ActiveBySiswa mengembalikan magang berlangsung terbaru milik siswa,
	// atau nil jika tidak ada.
	ActiveBySiswa(siswaID uint) (*model.Magang, error)
	RecentBySiswa(siswaID uint, limit int) ([]model.Magang, error)
}

type magangRepository struct {
	db *gorm.DB
}

func NewMagangRepository(db *gorm.DB) MagangRepository {
	return &magangRepository{db}
}

func (r *magangRepository) Apply(siswaID, dudiID uint) (*model.Magang, error) {
	magang := model.Magang{
		SiswaID: siswaID,
		DudiID:  dudiID,
		Status:  model.MagangPending,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Magang{}).
			Where("siswa_id = ? AND status IN ?", siswaID, model.NonTerminalStatuses).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= MaxPendaftaran {
			return apperror.Newf(apperror.LimitExceeded, "Maksimal pendaftaran magang adalah %d DUDI.", MaxPendaftaran)
		}

		var existing int64
		if err := tx.Model(&model.Magang{}).
			Where("siswa_id = ? AND dudi_id = ? AND status IN ?", siswaID, dudiID, model.NonTerminalStatuses).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperror.New(apperror.Conflict, "Anda sudah mendaftar atau sedang magang di DUDI ini.")
		}

		return tx.Create(&magang).Error
	})
	if err != nil {
		return nil, err
	}
	return &magang, nil
}

func (r *magangRepository) scoped(query *gorm.DB, scope Scope) *gorm.DB {
	switch {
	case scope.IsGuru():
		if scope.GuruID == 0 {
			return query.Where("1 = 0")
		}
		return query.Where("magangs.guru_id = ?", scope.GuruID)
	case scope.IsSiswa():
		if scope.SiswaID == 0 {
			return query.Where("1 = 0")
		}
		return query.Where("magangs.siswa_id = ?", scope.SiswaID)
	}
	return query
}

func (r *magangRepository) List(f MagangFilter, scope Scope) ([]model.Magang, int64, error) {
	query := r.scoped(r.db.Model(&model.Magang{}), scope)

	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.
			Joins("LEFT JOIN siswas ON siswas.id = magangs.siswa_id").
			Joins("LEFT JOIN gurus ON gurus.id = magangs.guru_id").
			Joins("LEFT JOIN dudis ON dudis.id = magangs.dudi_id").
			Where("siswas.nama LIKE ? OR gurus.nama LIKE ? OR dudis.nama_perusahaan LIKE ?", like, like, like)
	}
	if f.Status != "" {
		query = query.Where("magangs.status = ?", f.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Magang
	err := query.Preload("Siswa").Preload("Guru").Preload("Dudi").
		Order("magangs.created_at desc").
		Limit(f.Limit).Offset(f.Offset).
		Find(&list).Error
	return list, total, err
}

func (r *magangRepository) Stats(scope Scope) (MagangStats, error) {
	var stats MagangStats

	count := func(status string, dest *int64) error {
		query := r.scoped(r.db.Model(&model.Magang{}), scope)
		if status != "" {
			query = query.Where("magangs.status = ?", status)
		}
		return query.Count(dest).Error
	}

	if err := count("", &stats.Total); err != nil {
		return stats, err
	}
	if err := count(model.MagangBerlangsung, &stats.Aktif); err != nil {
		return stats, err
	}
	if err := count(model.MagangSelesai, &stats.Selesai); err != nil {
		return stats, err
	}
	err := count(model.MagangPending, &stats.Pending)
	return stats, err
}

func (r *magangRepository) GetByID(id uint) (*model.Magang, error) {
	var magang model.Magang
	err := r.db.Preload("Siswa").Preload("Guru").Preload("Dudi").First(&magang, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.New(apperror.NotFound, "Data magang tidak ditemukan")
	}
	return &magang, err
}

func (r *magangRepository) Create(magang *model.Magang) error {
	return r.db.Create(magang).Error
}

// transisi status yang diizinkan; status terminal tidak punya entry.
var allowedTransitions = map[string][]string{
	model.MagangPending:     {model.MagangBerlangsung, model.MagangDiterima, model.MagangDitolak, model.MagangDibatalkan},
	model.MagangDiterima:    {model.MagangBerlangsung, model.MagangDibatalkan},
	model.MagangBerlangsung: {model.MagangSelesai, model.MagangDibatalkan},
}

func transitionAllowed(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (r *magangRepository) Update(id uint, input MagangUpdate, scope Scope) (*model.Magang, error) {
	magang, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Guru hanya bisa mengelola magang bimbingannya sendiri
	if scope.IsGuru() {
		if scope.GuruID == 0 || magang.GuruID == nil || *magang.GuruID != scope.GuruID {
			return nil, apperror.New(apperror.Forbidden, "Anda tidak memiliki akses ke data magang ini")
		}
	}

	if input.TanggalMulai != nil {
		magang.TanggalMulai = *input.TanggalMulai
	}
	if input.TanggalSelesai != nil {
		magang.TanggalSelesai = *input.TanggalSelesai
	}
	if magang.TanggalMulai != "" && magang.TanggalSelesai != "" && magang.TanggalSelesai < magang.TanggalMulai {
		return nil, apperror.NewValidation("Tanggal selesai harus setelah tanggal mulai",
			apperror.FieldError{Field: "tanggal_selesai", Message: "harus setelah tanggal mulai"})
	}

	if input.Status != nil && *input.Status != magang.Status {
		if !transitionAllowed(magang.Status, *input.Status) {
			return nil, apperror.Newf(apperror.PreconditionFailed,
				"Status %s tidak dapat diubah menjadi %s", magang.Status, *input.Status)
		}
		magang.Status = *input.Status
	}

	// Nilai akhir hanya dipersist jika status hasil update adalah selesai
	if input.NilaiAkhir != nil {
		if magang.Status == model.MagangSelesai {
			magang.NilaiAkhir = input.NilaiAkhir
		}
	}
	if magang.Status != model.MagangSelesai {
		magang.NilaiAkhir = nil
	}

	if err := r.db.Save(magang).Error; err != nil {
		return nil, err
	}
	return magang, nil
}

func (r *magangRepository) Delete(id uint, scope Scope) error {
	magang, err := r.GetByID(id)
	if err != nil {
		return err
	}

	if scope.IsGuru() {
		if scope.GuruID == 0 || magang.GuruID == nil || *magang.GuruID != scope.GuruID {
			return apperror.New(apperror.Forbidden, "Anda tidak memiliki akses ke data magang ini")
		}
	}

	// Logbook ikut terhapus bersama magangnya
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("magang_id = ?", id).Delete(&model.Logbook{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Magang{}, id).Error
	})
}

func (r *magangRepository) ActiveBySiswa(siswaID uint) (*model.Magang, error) {
	var magang model.Magang
	err := r.db.Where("siswa_id = ? AND status = ?", siswaID, model.MagangBerlangsung).
		Order("created_at desc").
		First(&magang).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &magang, nil
}

func (r *magangRepository) RecentBySiswa(siswaID uint, limit int) ([]model.Magang, error) {
	var list []model.Magang
	err := r.db.Select("id", "dudi_id", "status").
		Where("siswa_id = ?", siswaID).
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error
	return list, err
}
