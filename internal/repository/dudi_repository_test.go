package repository

import (
	"testing"

	"simagang-backend/internal/apperror"
	"simagang-backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsByNameAbaikanYangTerhapus(t *testing.T) {
	db := newTestDB(t)
	repo := NewDudiRepository(db)

	dudi := seedDudi(t, db, "PT Maju Jaya", model.DudiAktif)

	exists, err := repo.ExistsByName("PT Maju Jaya", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// Cek unik boleh mengecualikan diri sendiri (untuk update)
	exists, err = repo.ExistsByName("PT Maju Jaya", dudi.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.SoftDelete(dudi.ID))

	// Nama DUDI yang sudah dihapus boleh dipakai ulang
	exists, err = repo.ExistsByName("PT Maju Jaya", 0)
	require.NoError(t, err)
	assert.False(t, exists)

	pengganti := &model.Dudi{NamaPerusahaan: "PT Maju Jaya", Status: model.DudiAktif}
	require.NoError(t, repo.Create(pengganti))
	assert.NotEqual(t, dudi.ID, pengganti.ID)
}

func TestSoftDeleteDanRestore(t *testing.T) {
	db := newTestDB(t)
	repo := NewDudiRepository(db)

	dudi := seedDudi(t, db, "PT Maju Jaya", model.DudiAktif)

	require.NoError(t, repo.SoftDelete(dudi.ID))

	// Sudah terhapus: tidak ditemukan lewat query biasa
	_, err := repo.GetByID(dudi.ID)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))

	err = repo.SoftDelete(dudi.ID)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))

	restored, err := repo.Restore(dudi.ID)
	require.NoError(t, err)
	assert.Equal(t, dudi.ID, restored.ID)
	assert.False(t, restored.DeletedAt.Valid)

	fetched, err := repo.GetByID(dudi.ID)
	require.NoError(t, err)
	assert.Equal(t, "PT Maju Jaya", fetched.NamaPerusahaan)

	// Restore hanya berlaku untuk baris yang memang terhapus
	_, err = repo.Restore(dudi.ID)
	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
}

func TestListDudiTerscope(t *testing.T) {
	db := newTestDB(t)
	repo := NewDudiRepository(db)

	aktif := seedDudi(t, db, "PT Aktif", model.DudiAktif)
	seedDudi(t, db, "CV Tidak Aktif", model.DudiTidakAktif)
	seedDudi(t, db, "PT Lain", model.DudiAktif)

	siswa := seedSiswa(t, db, "Ani Lestari")
	guru := seedGuru(t, db, "Budi Santoso")
	seedMagang(t, db, siswa.ID, aktif.ID, uintPtr(guru.ID), model.MagangBerlangsung)

	list, total, err := repo.List(DudiFilter{Limit: 10}, AdminScope())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 3)

	// Siswa hanya melihat DUDI aktif, filter status dari query diabaikan
	_, total, err = repo.List(DudiFilter{Limit: 10, Status: model.DudiTidakAktif}, siswaScope(siswa.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Guru hanya melihat DUDI yang punya magang bimbingannya
	list, total, err = repo.List(DudiFilter{Limit: 10}, guruScope(guru.ID))
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	assert.Equal(t, aktif.ID, list[0].ID)

	_, total, err = repo.List(DudiFilter{Limit: 10}, guruScope(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, total, err = repo.List(DudiFilter{Limit: 10, Search: "Lain"}, AdminScope())
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestActiveInternCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewDudiRepository(db)

	dudi1 := seedDudi(t, db, "PT Satu", model.DudiAktif)
	dudi2 := seedDudi(t, db, "PT Dua", model.DudiAktif)
	siswa1 := seedSiswa(t, db, "Ani Lestari")
	siswa2 := seedSiswa(t, db, "Dodi Pratama")
	guru := seedGuru(t, db, "Budi Santoso")

	seedMagang(t, db, siswa1.ID, dudi1.ID, uintPtr(guru.ID), model.MagangBerlangsung)
	seedMagang(t, db, siswa2.ID, dudi1.ID, nil, model.MagangBerlangsung)
	seedMagang(t, db, siswa2.ID, dudi2.ID, nil, model.MagangPending) // belum berlangsung, tidak dihitung

	counts, err := repo.ActiveInternCounts([]uint{dudi1.ID, dudi2.ID}, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[dudi1.ID])
	assert.Equal(t, int64(0), counts[dudi2.ID])

	counts, err = repo.ActiveInternCounts([]uint{dudi1.ID, dudi2.ID}, guru.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[dudi1.ID])

	counts, err = repo.ActiveInternCounts(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestStatsDudi(t *testing.T) {
	db := newTestDB(t)
	repo := NewDudiRepository(db)

	dudi1 := seedDudi(t, db, "PT Satu", model.DudiAktif)
	dudi2 := seedDudi(t, db, "PT Dua", model.DudiAktif)
	seedDudi(t, db, "CV Tiga", model.DudiTidakAktif)

	siswa1 := seedSiswa(t, db, "Ani Lestari")
	siswa2 := seedSiswa(t, db, "Dodi Pratama")
	guru := seedGuru(t, db, "Budi Santoso")
	seedMagang(t, db, siswa1.ID, dudi1.ID, uintPtr(guru.ID), model.MagangBerlangsung)
	seedMagang(t, db, siswa2.ID, dudi2.ID, nil, model.MagangBerlangsung)

	stats, err := repo.Stats(AdminScope())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalDudi)
	assert.Equal(t, int64(2), stats.DudiAktif)
	assert.Equal(t, int64(1), stats.DudiTidakAktif)
	assert.Equal(t, int64(2), stats.TotalSiswaMagang)

	stats, err = repo.Stats(guruScope(guru.ID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalDudi)
	assert.Equal(t, int64(1), stats.TotalSiswaMagang)
	assert.Equal(t, 1.0, stats.RataRataSiswa)

	stats, err = repo.Stats(guruScope(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalDudi)
}
