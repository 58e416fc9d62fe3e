package repository

import (
	"fmt"
	"testing"

	"simagang-backend/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB membuka database sqlite in-memory untuk satu test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// Pool harus satu koneksi supaya semua query menyentuh memory DB yang sama
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Siswa{},
		&model.Guru{},
		&model.Dudi{},
		&model.Magang{},
		&model.Logbook{},
		&model.SchoolSettings{},
	))
	return db
}

var seedCounter int

func nextSeed() int {
	seedCounter++
	return seedCounter
}

func seedSiswa(t *testing.T, db *gorm.DB, nama string) *model.Siswa {
	t.Helper()
	siswa := model.Siswa{
		NIS:     fmt.Sprintf("NIS-%04d", nextSeed()),
		Nama:    nama,
		Kelas:   "XII RPL 1",
		Jurusan: "Rekayasa Perangkat Lunak",
	}
	require.NoError(t, db.Create(&siswa).Error)
	return &siswa
}

func seedGuru(t *testing.T, db *gorm.DB, nama string) *model.Guru {
	t.Helper()
	guru := model.Guru{
		NIP:  fmt.Sprintf("NIP-%04d", nextSeed()),
		Nama: nama,
	}
	require.NoError(t, db.Create(&guru).Error)
	return &guru
}

func seedDudi(t *testing.T, db *gorm.DB, nama, status string) *model.Dudi {
	t.Helper()
	dudi := model.Dudi{
		NamaPerusahaan:  nama,
		Alamat:          "Jl. Test No. 1",
		Telepon:         "0221234567",
		PenanggungJawab: "Penanggung Jawab",
		Status:          status,
	}
	require.NoError(t, db.Create(&dudi).Error)
	return &dudi
}

func seedMagang(t *testing.T, db *gorm.DB, siswaID, dudiID uint, guruID *uint, status string) *model.Magang {
	t.Helper()
	magang := model.Magang{
		SiswaID:      siswaID,
		DudiID:       dudiID,
		GuruID:       guruID,
		TanggalMulai: "2026-01-05",
		Status:       status,
	}
	require.NoError(t, db.Create(&magang).Error)
	return &magang
}

func seedLogbook(t *testing.T, db *gorm.DB, magangID uint, tanggal, statusVerifikasi string) *model.Logbook {
	t.Helper()
	logbook := model.Logbook{
		MagangID:         magangID,
		Tanggal:          tanggal,
		Kegiatan:         "Membuat modul login",
		StatusVerifikasi: statusVerifikasi,
	}
	require.NoError(t, db.Create(&logbook).Error)
	return &logbook
}

func uintPtr(v uint) *uint          { return &v }
func strPtr(v string) *string       { return &v }
func floatPtr(v float64) *float64   { return &v }
func guruScope(guruID uint) Scope   { return Scope{Role: model.RoleGuru, GuruID: guruID} }
func siswaScope(siswaID uint) Scope { return Scope{Role: model.RoleSiswa, SiswaID: siswaID} }
