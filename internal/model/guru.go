package model

import "gorm.io/gorm"

type Guru struct {
	gorm.Model
	UserID  uint   `json:"user_id"`
	NIP     string `json:"nip" gorm:"column:nip;unique;not null"`
	Nama    string `json:"nama"`
	Alamat  string `json:"alamat"`
	Telepon string `json:"telepon"`

	User   User     `json:"-" gorm:"foreignKey:UserID"`
	Magang []Magang `json:"magang,omitempty" gorm:"foreignKey:GuruID"`
}
