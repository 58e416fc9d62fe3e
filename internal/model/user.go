package model

import "gorm.io/gorm"

const (
	RoleAdmin = "admin"
	RoleGuru  = "guru"
	RoleSiswa = "siswa"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:siswa"` // admin/guru/siswa

	// Relasi profil (maksimal satu, sesuai role)
	Guru  *Guru  `json:"guru,omitempty" gorm:"foreignKey:UserID"`
	Siswa *Siswa `json:"siswa,omitempty" gorm:"foreignKey:UserID"`
}
