package model

import "gorm.io/gorm"

const (
	DudiAktif      = "aktif"
	DudiTidakAktif = "tidak_aktif"
)

// Dudi adalah perusahaan mitra magang. Soft delete via gorm.Model.DeletedAt:
// nama perusahaan hanya unik terhadap baris yang belum dihapus.
type Dudi struct {
	gorm.Model
	UserID          uint   `json:"user_id"` // pembuat data
	NamaPerusahaan  string `json:"nama_perusahaan"`
	Alamat          string `json:"alamat"`
	Telepon         string `json:"telepon"`
	Email           string `json:"email"`
	PenanggungJawab string `json:"penanggung_jawab"`
	Status          string `json:"status" gorm:"default:aktif"` // aktif/tidak_aktif

	User   User     `json:"-" gorm:"foreignKey:UserID"`
	Magang []Magang `json:"magang,omitempty" gorm:"foreignKey:DudiID"`
}
