package model

import "gorm.io/gorm"

// SchoolSettings adalah record tunggal profil sekolah.
type SchoolSettings struct {
	gorm.Model
	LogoURL       string `json:"logo_url"`
	NamaSekolah   string `json:"nama_sekolah"`
	Alamat        string `json:"alamat"`
	Telepon       string `json:"telepon"`
	Email         string `json:"email"`
	Website       string `json:"website"`
	KepalaSekolah string `json:"kepala_sekolah"`
	NPSN          string `json:"npsn" gorm:"column:npsn"`
}
