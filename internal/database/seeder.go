package database

import (
	"log"
	"simagang-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// 1. Akun admin pertama
	admin := model.User{
		Name:     "Administrator",
		Email:    "admin@simagang.sch.id",
		Password: string(hashed),
		Role:     model.RoleAdmin,
	}
	db.FirstOrCreate(&admin, model.User{Email: admin.Email})

	// 2. Akun guru + profil
	guruUser := model.User{
		Name:     "Budi Santoso",
		Email:    "budi.santoso@simagang.sch.id",
		Password: string(hashed),
		Role:     model.RoleGuru,
	}
	db.FirstOrCreate(&guruUser, model.User{Email: guruUser.Email})

	guru := model.Guru{
		UserID:  guruUser.ID,
		NIP:     "198003152005011003",
		Nama:    "Budi Santoso",
		Telepon: "081234567890",
	}
	db.FirstOrCreate(&guru, model.Guru{NIP: guru.NIP})

	// 3. Akun siswa + profil
	siswaUser := model.User{
		Name:     "Ani Lestari",
		Email:    "ani.lestari@simagang.sch.id",
		Password: string(hashed),
		Role:     model.RoleSiswa,
	}
	db.FirstOrCreate(&siswaUser, model.User{Email: siswaUser.Email})

	siswa := model.Siswa{
		UserID:  siswaUser.ID,
		NIS:     "2024100101",
		Nama:    "Ani Lestari",
		Kelas:   "XII RPL 1",
		Jurusan: "Rekayasa Perangkat Lunak",
	}
	db.FirstOrCreate(&siswa, model.Siswa{NIS: siswa.NIS})

	// 4. DUDI contoh
	dudi := model.Dudi{
		UserID:          admin.ID,
		NamaPerusahaan:  "PT Solusi Digital Nusantara",
		Alamat:          "Jl. Merdeka No. 12, Bandung",
		Telepon:         "0221234567",
		Email:           "hrd@solusidigital.co.id",
		PenanggungJawab: "Rina Wijaya",
		Status:          model.DudiAktif,
	}
	db.FirstOrCreate(&dudi, model.Dudi{NamaPerusahaan: dudi.NamaPerusahaan})

	// 5. Magang berlangsung untuk siswa contoh
	magang := model.Magang{
		SiswaID:      siswa.ID,
		DudiID:       dudi.ID,
		GuruID:       &guru.ID,
		TanggalMulai: "2026-01-05",
		Status:       model.MagangBerlangsung,
	}
	result := db.FirstOrCreate(&magang, model.Magang{SiswaID: siswa.ID, DudiID: dudi.ID})
	if result.Error == nil {
		log.Println("Seeding selesai: admin/guru/siswa + DUDI + magang contoh siap dipakai")
	}
}
