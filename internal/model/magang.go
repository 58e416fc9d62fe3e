package model

import "gorm.io/gorm"

const (
	MagangPending     = "pending"
	MagangDiterima    = "diterima"
	MagangDitolak     = "ditolak"
	MagangBerlangsung = "berlangsung"
	MagangSelesai     = "selesai"
	MagangDibatalkan  = "dibatalkan"
)

// NonTerminalStatuses: status yang masih dihitung untuk batas pendaftaran
// dan cek duplikasi pendaftaran per DUDI.
var NonTerminalStatuses = []string{MagangPending, MagangBerlangsung}

// Magang menghubungkan satu Siswa, satu Dudi, dan maksimal satu Guru
// pembimbing. NilaiAkhir hanya terisi saat status selesai.
type Magang struct {
	gorm.Model
	SiswaID        uint     `json:"siswa_id"`
	DudiID         uint     `json:"dudi_id"`
	GuruID         *uint    `json:"guru_id"` // nullable sampai guru ditetapkan
	TanggalMulai   string   `json:"tanggal_mulai"`   // format 2006-01-02
	TanggalSelesai string   `json:"tanggal_selesai"` // >= tanggal mulai
	Status         string   `json:"status" gorm:"default:pending"` // pending/diterima/ditolak/berlangsung/selesai/dibatalkan
	NilaiAkhir     *float64 `json:"nilai_akhir"`

	Siswa   Siswa     `json:"siswa" gorm:"foreignKey:SiswaID"`
	Dudi    Dudi      `json:"dudi" gorm:"foreignKey:DudiID"`
	Guru    *Guru     `json:"guru,omitempty" gorm:"foreignKey:GuruID"`
	Logbook []Logbook `json:"logbook,omitempty" gorm:"foreignKey:MagangID;constraint:OnDelete:CASCADE"`
}

// IsTerminal: selesai/ditolak/dibatalkan tidak boleh bertransisi lagi.
func (m Magang) IsTerminal() bool {
	return m.Status == MagangSelesai || m.Status == MagangDitolak || m.Status == MagangDibatalkan
}
