package repository

import (
	"simagang-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	// GetDashboardData menyusun rollup read-only sesuai scope; tidak ada
	// penulisan apa pun di sini.
	GetDashboardData(scope Scope, today string) (map[string]interface{}, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

var verifikasiLabels = map[string]string{
	model.VerifikasiDisetujui: "Disetujui",
	model.VerifikasiDitolak:   "Ditolak",
	model.VerifikasiPending:   "Pending",
}

func (r *dashboardRepository) magangScoped(scope Scope) *gorm.DB {
	query := r.db.Model(&model.Magang{})
	switch {
	case scope.IsGuru():
		if scope.GuruID == 0 {
			return query.Where("1 = 0")
		}
		return query.Where("guru_id = ?", scope.GuruID)
	case scope.IsSiswa():
		if scope.SiswaID == 0 {
			return query.Where("1 = 0")
		}
		return query.Where("siswa_id = ?", scope.SiswaID)
	}
	return query
}

func (r *dashboardRepository) logbookScoped(scope Scope) *gorm.DB {
	query := r.db.Model(&model.Logbook{}).
		Joins("JOIN magangs ON magangs.id = logbooks.magang_id")
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

func (r *dashboardRepository) GetDashboardData(scope Scope, today string) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	// 1. Angka ringkasan
	var totalStudents, dudiPartners, activeInterns, todayLogbooks int64

	switch {
	case scope.IsAdmin():
		r.db.Model(&model.Siswa{}).Count(&totalStudents)
		r.db.Model(&model.Dudi{}).Count(&dudiPartners)
	case scope.IsGuru():
		if scope.GuruID != 0 {
			r.db.Model(&model.Magang{}).
				Where("guru_id = ?", scope.GuruID).
				Distinct("siswa_id").
				Count(&totalStudents)
			r.db.Model(&model.Dudi{}).Where(
				"EXISTS (SELECT 1 FROM magangs WHERE magangs.dudi_id = dudis.id AND magangs.guru_id = ? AND magangs.deleted_at IS NULL)",
				scope.GuruID,
			).Count(&dudiPartners)
		}
	case scope.IsSiswa():
		if scope.SiswaID != 0 {
			totalStudents = 1
			r.db.Model(&model.Magang{}).
				Where("siswa_id = ?", scope.SiswaID).
				Distinct("dudi_id").
				Count(&dudiPartners)
		}
	}

	r.magangScoped(scope).Where("status = ?", model.MagangBerlangsung).Count(&activeInterns)
	r.logbookScoped(scope).Where("logbooks.tanggal = ?", today).Count(&todayLogbooks)

	data["stats"] = map[string]interface{}{
		"totalStudents": totalStudents,
		"dudiPartners":  dudiPartners,
		"activeInterns": activeInterns,
		"todayLogbooks": todayLogbooks,
	}

	// 2. Magang berlangsung terbaru
	var recentMagang []model.Magang
	r.magangScoped(scope).
		Preload("Siswa").Preload("Dudi").
		Where("status = ?", model.MagangBerlangsung).
		Order("created_at desc").
		Limit(3).
		Find(&recentMagang)

	recentInternships := make([]map[string]interface{}, 0, len(recentMagang))
	for _, m := range recentMagang {
		recentInternships = append(recentInternships, map[string]interface{}{
			"id":          m.ID,
			"studentName": defaultText(m.Siswa.Nama, "Siswa tidak diketahui"),
			"companyName": defaultText(m.Dudi.NamaPerusahaan, "DUDI tidak diketahui"),
			"startDate":   m.TanggalMulai,
			"endDate":     m.TanggalSelesai,
			"status":      m.Status,
		})
	}
	data["recentInternships"] = recentInternships

	// 3. DUDI aktif beserta jumlah siswa magang saat ini
	dudiQuery := r.db.Model(&model.Dudi{})
	internCount := r.db.Model(&model.Magang{}).
		Select("count(*)").
		Where("magangs.dudi_id = dudis.id AND magangs.status = ? AND magangs.deleted_at IS NULL", model.MagangBerlangsung)
	if scope.IsGuru() {
		if scope.GuruID == 0 {
			dudiQuery = dudiQuery.Where("1 = 0")
		} else {
			dudiQuery = dudiQuery.Where(
				"EXISTS (SELECT 1 FROM magangs WHERE magangs.dudi_id = dudis.id AND magangs.guru_id = ? AND magangs.deleted_at IS NULL)",
				scope.GuruID,
			)
			internCount = internCount.Where("magangs.guru_id = ?", scope.GuruID)
		}
	} else if scope.IsSiswa() {
		if scope.SiswaID == 0 {
			dudiQuery = dudiQuery.Where("1 = 0")
		} else {
			dudiQuery = dudiQuery.Where(
				"EXISTS (SELECT 1 FROM magangs WHERE magangs.dudi_id = dudis.id AND magangs.siswa_id = ? AND magangs.deleted_at IS NULL)",
				scope.SiswaID,
			)
		}
	}

	var dudiRows []struct {
		model.Dudi
		StudentCount int64
	}
	dudiQuery.
		Select("dudis.*, (?) as student_count", internCount).
		Where("(?) > 0", internCount).
		Order("dudis.created_at desc").
		Limit(3).
		Find(&dudiRows)

	activeDudi := make([]map[string]interface{}, 0, len(dudiRows))
	for _, d := range dudiRows {
		activeDudi = append(activeDudi, map[string]interface{}{
			"id":           d.ID,
			"name":         d.NamaPerusahaan,
			"address":      d.Alamat,
			"phone":        d.Telepon,
			"studentCount": d.StudentCount,
		})
	}
	data["activeDudi"] = activeDudi

	// 4. Jurnal terbaru
	var recentLogbook []model.Logbook
	r.logbookScoped(scope).
		Preload("Magang.Siswa").
		Select("logbooks.*").
		Order("logbooks.tanggal desc").
		Limit(3).
		Find(&recentLogbook)

	recentLogbooks := make([]map[string]interface{}, 0, len(recentLogbook))
	for _, lb := range recentLogbook {
		recentLogbooks = append(recentLogbooks, map[string]interface{}{
			"id":       lb.ID,
			"task":     defaultText(lb.Kegiatan, "Tidak ada kegiatan"),
			"date":     lb.Tanggal,
			"obstacle": defaultText(lb.Kendala, "Tidak ada kendala"),
			"status":   verifikasiLabels[lb.StatusVerifikasi],
		})
	}
	data["recentLogbooks"] = recentLogbooks

	return data, nil
}

func defaultText(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
