package mailer

import (
	"fmt"
	"log"

	"simagang-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim notifikasi email best-effort: kegagalan kirim hanya
// dicatat di log, tidak pernah menggagalkan request.
type Mailer interface {
	PlacementDecision(to, namaSiswa, namaPerusahaan, status string)
	LogbookVerified(to, namaSiswa, tanggal, status string)
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

type noopMailer struct{}

func (noopMailer) PlacementDecision(_, _, _, _ string) {}
func (noopMailer) LogbookVerified(_, _, _, _ string)   {}

// New membaca konfigurasi SMTP dari environment. Tanpa SMTP_HOST, mailer
// menjadi no-op supaya development lokal tidak butuh server mail.
func New() Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return noopMailer{}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(
			host,
			config.GetEnvAsInt("SMTP_PORT", 587),
			config.GetEnv("SMTP_USER", ""),
			config.GetEnv("SMTP_PASSWORD", ""),
		),
		from: config.GetEnv("SMTP_FROM", "no-reply@simagang.sch.id"),
	}
}

func (m *smtpMailer) send(to, subject, body string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("mailer: gagal kirim email ke %s: %v", to, err)
	}
}

func (m *smtpMailer) PlacementDecision(to, namaSiswa, namaPerusahaan, status string) {
	if to == "" {
		return
	}
	m.send(to,
		"Status Pendaftaran Magang",
		fmt.Sprintf("Halo %s,\n\nPendaftaran magang kamu di %s kini berstatus: %s.\n", namaSiswa, namaPerusahaan, status))
}

func (m *smtpMailer) LogbookVerified(to, namaSiswa, tanggal, status string) {
	if to == "" {
		return
	}
	m.send(to,
		"Verifikasi Jurnal Harian",
		fmt.Sprintf("Halo %s,\n\nJurnal harian tanggal %s telah diverifikasi dengan status: %s.\n", namaSiswa, tanggal, status))
}
