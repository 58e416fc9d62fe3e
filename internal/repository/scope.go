package repository

import "simagang-backend/internal/model"

// Scope adalah konteks akses yang wajib dibawa setiap query list/agregat.
// Untuk guru/siswa yang tidak punya profil, ID profil bernilai 0 dan setiap
// query ter-scope harus mengembalikan hasil kosong (fail-closed), bukan
// query tanpa filter.
type Scope struct {
	Role    string
	UserID  uint
	GuruID  uint // hanya terisi untuk role guru
	SiswaID uint // hanya terisi untuk role siswa
}

func (s Scope) IsAdmin() bool { return s.Role == model.RoleAdmin }
func (s Scope) IsGuru() bool  { return s.Role == model.RoleGuru }
func (s Scope) IsSiswa() bool { return s.Role == model.RoleSiswa }

func AdminScope() Scope {
	return Scope{Role: model.RoleAdmin}
}
