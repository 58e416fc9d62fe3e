package model

import "gorm.io/gorm"

type Siswa struct {
	gorm.Model
	UserID  uint   `json:"user_id"`
	NIS     string `json:"nis" gorm:"column:nis;unique;not null"`
	Nama    string `json:"nama"`
	Kelas   string `json:"kelas"`
	Jurusan string `json:"jurusan"`
	Alamat  string `json:"alamat"`
	Telepon string `json:"telepon"`

	User   User     `json:"-" gorm:"foreignKey:UserID"`
	Magang []Magang `json:"magang,omitempty" gorm:"foreignKey:SiswaID"`
}
