package model

import "gorm.io/gorm"

const (
	VerifikasiPending   = "pending"
	VerifikasiDisetujui = "disetujui"
	VerifikasiDitolak   = "ditolak"
)

// Logbook adalah jurnal harian siswa, terikat pada satu Magang dan ikut
// terhapus saat magangnya dihapus.
type Logbook struct {
	gorm.Model
	MagangID         uint   `json:"magang_id"`
	Tanggal          string `json:"tanggal"` // format 2006-01-02
	Kegiatan         string `json:"kegiatan"`
	Kendala          string `json:"kendala"`
	File             string `json:"file"` // path relatif di bawah uploads/
	StatusVerifikasi string `json:"status_verifikasi" gorm:"default:pending"` // pending/disetujui/ditolak
	CatatanGuru      string `json:"catatan_guru"`
	CatatanDudi      string `json:"catatan_dudi"`

	Magang Magang `json:"magang" gorm:"foreignKey:MagangID"`
}
