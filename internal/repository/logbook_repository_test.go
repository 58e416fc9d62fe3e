package repository

import (
	"testing"

	"simagang-backend/internal/apperror"
	"simagang-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLogbookSiswaFailClosed(t *testing.T) {
	db := newTestDB(t)
	repo := NewLogbookRepository(db)

	siswa := seedSiswa(t, db, "Ani Lestari")
	dudi := seedDudi(t, db, "PT Maju Jaya", model.DudiAktif)
	magang := seedMagang(t, db, siswa.ID, dudi.ID, nil, model.MagangBerlangsung)
	seedLogbook(t, db, magang.ID, "2026-01-06", model.VerifikasiPending)
	seedLogbook(t, db, magang.ID, "2026-01-07", model.VerifikasiDisetujui)

	// Tanpa magang berlangsung (MagangID 0) hasil harus kosong
	list, total, err := repo.List(LogbookFilter{Limit: 10}, siswaScope(siswa.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, list)

	list, total, err = repo.List(LogbookFilter{MagangID: magang.ID, Limit: 10}, siswaScope(siswa.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, list, 2)
	// Urutan tanggal terbaru dulu
	assert.Equal(t, "2026-01-07", list[0].Tanggal)
}

func TestListLogbookGuruTerscope(t *testing.T) {
	db := newTestDB(t)
	repo := NewLogbookRepository(db)

	siswa1 := seedSiswa(t, db, "Ani Lestari")
	siswa2 := seedSiswa(t, db, "Dodi Pratama")
	dudi := seedDudi(t, db, "PT Maju Jaya", model.DudiAktif)
	guru1 := seedGuru(t, db, "Budi Santoso")
	guru2 := seedGuru(t, db, "Citra Dewi")

	magang1 := seedMagang(t, db, siswa1.ID, dudi.ID, uintPtr(guru1.ID), model.MagangBerlangsung)
	magang2 := seedMagang(t, db, siswa2.ID, dudi.ID, uintPtr(guru2.ID), model.MagangBerlangsung)
	seedLogbook(t, db, magang1.ID, "2026-01-06", model.VerifikasiPending)
	seedLogbook(t, db, magang2.ID, "2026-01-06", model.VerifikasiPending)
	seedLogbook(t, db, magang2.ID, "2026-01-07", model.VerifikasiDisetujui)

	_, total, err := repo.List(LogbookFilter{Limit: 10}, guruScope(guru2.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = repo.List(LogbookFilter{Limit: 10}, guruScope(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, total, err = repo.List(LogbookFilter{Limit: 10}, AdminScope())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestListLogbookFilterTanggal(t *testing.T) {
	db := newTestDB(t)
	repo := NewLogbookRepository(db)

	siswa := seedSiswa(t, db, "Ani Lestari")
	dudi := seedDudi(t, db, "PT Maju Jaya", model.DudiAktif)
	magang := seedMagang(t, db, siswa.ID, dudi.ID, nil, model.MagangBerlangsung)
	seedLogbook(t, db, magang.ID, "2025-12-30", model.VerifikasiPending)
	seedLogbook(t, db, magang.ID, "2026-01-06", model.VerifikasiPending)
	seedLogbook(t, db, magang.ID, "2026-01-07", model.VerifikasiDisetujui)

	tests := []struct {
		name   string
		filter LogbookFilter
		want   int64
	}{
		{"filter bulan", LogbookFilter{Month: 1, Limit: 10}, 2},
		{"filter tahun", LogbookFilter{Year: 2025, Limit: 10}, 1},
		{"filter bulan dan tahun", LogbookFilter{Month: 12, Year: 2025, Limit: 10}, 1},
		{"filter tanggal persis", LogbookFilter{Date: "2026-01-06", Limit: 10}, 1},
		{"filter status verifikasi", LogbookFilter{Status: model.VerifikasiDisetujui, Limit: 10}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := repo.List(tt.filter, AdminScope())
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
		})
	}
}

func TestStatsLogbook(t *testing.T) {
	db := newTestDB(t)
	repo := NewLogbookRepository(db)

	siswa := seedSiswa(t, db, "Ani Lestari")
	dudi := seedDudi(t, db, "PT Maju Jaya", model.DudiAktif)
	guru := seedGuru(t, db, "Budi Santoso")
	magang := seedMagang(t, db, siswa.ID, dudi.ID, uintPtr(guru.ID), model.MagangBerlangsung)
	seedLogbook(t, db, magang.ID, "2026-01-06", model.VerifikasiPending)
	seedLogbook(t, db, magang.ID, "2026-01-07", model.VerifikasiDisetujui)
	seedLogbook(t, db, magang.ID, "2026-01-08", model.VerifikasiDitolak)

	stats, err := repo.Stats(guruScope(guru.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Disetujui)
	assert.Equal(t, int64(1), stats.Ditolak)

	stats, err = repo.Stats(siswaScope(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Total)
}

func TestExistsForDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewLogbookRepository(db)

	siswa := seedSiswa(t, db, "Ani Lestari")
	dudi := seedDudi(t, db, "PT Maju Jaya", model.DudiAktif)
	magang := seedMagang(t, db, siswa.ID, dudi.ID, nil, model.MagangBerlangsung)
	seedLogbook(t, db, magang.ID, "2026-01-06", model.VerifikasiPending)

	exists, err := repo.ExistsForDate(magang.ID, "2026-01-06")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForDate(magang.ID, "2026-01-07")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetLogbookByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewLogbookRepository(db)

	siswa := seedSiswa(t, db, "Ani Lestari")
	dudi := seedDudi(t, db, "PT Maju Jaya", model.DudiAktif)
	magang := seedMagang(t, db, siswa.ID, dudi.ID, nil, model.MagangBerlangsung)
	logbook := seedLogbook(t, db, magang.ID, "2026-01-06", model.VerifikasiPending)

	fetched, err := repo.GetByID(logbook.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ani Lestari", fetched.Magang.Siswa.Nama)
	assert.Equal(t, "PT Maju Jaya", fetched.Magang.Dudi.NamaPerusahaan)

	_, err = repo.GetByID(9999)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}
