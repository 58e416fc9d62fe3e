package repository

import (
	"testing"

	"simagang-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardAdmin(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	siswa1 := seedSiswa(t, db, "Ani Lestari")
	siswa2 := seedSiswa(t, db, "Dodi Pratama")
	dudi1 := seedDudi(t, db, "PT Satu", model.DudiAktif)
	dudi2 := seedDudi(t, db, "PT Dua", model.DudiAktif)
	guru := seedGuru(t, db, "Budi Santoso")

	magang := seedMagang(t, db, siswa1.ID, dudi1.ID, uintPtr(guru.ID), model.MagangBerlangsung)
	seedMagang(t, db, siswa2.ID, dudi2.ID, nil, model.MagangPending)
	seedLogbook(t, db, magang.ID, "2026-01-06", model.VerifikasiPending)
	seedLogbook(t, db, magang.ID, "2026-01-07", model.VerifikasiDisetujui)

	data, err := repo.GetDashboardData(AdminScope(), "2026-01-07")
	require.NoError(t, err)

	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, int64(2), stats["totalStudents"])
	assert.Equal(t, int64(2), stats["dudiPartners"])
	assert.Equal(t, int64(1), stats["activeInterns"])
	assert.Equal(t, int64(1), stats["todayLogbooks"])

	recent := data["recentInternships"].([]map[string]interface{})
	require.Len(t, recent, 1)
	assert.Equal(t, "Ani Lestari", recent[0]["studentName"])
	assert.Equal(t, model.MagangBerlangsung, recent[0]["status"])

	// Hanya DUDI dengan magang berlangsung yang tampil
	activeDudi := data["activeDudi"].([]map[string]interface{})
	require.Len(t, activeDudi, 1)
	assert.Equal(t, "PT Satu", activeDudi[0]["name"])
	assert.Equal(t, int64(1), activeDudi[0]["studentCount"])

	logbooks := data["recentLogbooks"].([]map[string]interface{})
	require.Len(t, logbooks, 2)
	assert.Equal(t, "Disetujui", logbooks[0]["status"])
}

func TestDashboardGuruTerscope(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	siswa1 := seedSiswa(t, db, "Ani Lestari")
	siswa2 := seedSiswa(t, db, "Dodi Pratama")
	dudi1 := seedDudi(t, db, "PT Satu", model.DudiAktif)
	dudi2 := seedDudi(t, db, "PT Dua", model.DudiAktif)
	guru := seedGuru(t, db, "Budi Santoso")
	guruLain := seedGuru(t, db, "Citra Dewi")

	bimbingan := seedMagang(t, db, siswa1.ID, dudi1.ID, uintPtr(guru.ID), model.MagangBerlangsung)
	lain := seedMagang(t, db, siswa2.ID, dudi2.ID, uintPtr(guruLain.ID), model.MagangBerlangsung)
	seedLogbook(t, db, bimbingan.ID, "2026-01-07", model.VerifikasiPending)
	seedLogbook(t, db, lain.ID, "2026-01-07", model.VerifikasiPending)

	data, err := repo.GetDashboardData(guruScope(guru.ID), "2026-01-07")
	require.NoError(t, err)

	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, int64(1), stats["totalStudents"])
	assert.Equal(t, int64(1), stats["dudiPartners"])
	assert.Equal(t, int64(1), stats["activeInterns"])
	assert.Equal(t, int64(1), stats["todayLogbooks"])

	activeDudi := data["activeDudi"].([]map[string]interface{})
	require.Len(t, activeDudi, 1)
	assert.Equal(t, "PT Satu", activeDudi[0]["name"])
}

func TestDashboardTanpaProfilKosong(t *testing.T) {
	db := newTestDB(t)
	repo := NewDashboardRepository(db)

	siswa := seedSiswa(t, db, "Ani Lestari")
	dudi := seedDudi(t, db, "PT Satu", model.DudiAktif)
	magang := seedMagang(t, db, siswa.ID, dudi.ID, nil, model.MagangBerlangsung)
	seedLogbook(t, db, magang.ID, "2026-01-07", model.VerifikasiPending)

	// Role guru tanpa baris profil: semua angka nol, bukan data global
	data, err := repo.GetDashboardData(guruScope(0), "2026-01-07")
	require.NoError(t, err)

	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, int64(0), stats["totalStudents"])
	assert.Equal(t, int64(0), stats["dudiPartners"])
	assert.Equal(t, int64(0), stats["activeInterns"])
	assert.Equal(t, int64(0), stats["todayLogbooks"])
	assert.Empty(t, data["recentInternships"])
	assert.Empty(t, data["activeDudi"])
	assert.Empty(t, data["recentLogbooks"])
}
