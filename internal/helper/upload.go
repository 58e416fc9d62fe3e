package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"simagang-backend/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	MaxLampiranSize = 5 * 1024 * 1024 // 5MB lampiran logbook
	MaxLogoSize     = 2 * 1024 * 1024 // 2MB logo sekolah
)

var lampiranExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".jpg": true, ".jpeg": true, ".png": true,
}

var logoExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".svg": true,
}

// ValidateLampiran mengecek tipe dan ukuran lampiran logbook sebelum disimpan.
func ValidateLampiran(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !lampiranExts[ext] {
		return apperror.NewValidation("Tipe file tidak didukung. Gunakan PDF, DOC, DOCX, JPG, atau PNG.",
			apperror.FieldError{Field: "file", Message: "tipe file tidak didukung"})
	}
	if file.Size > MaxLampiranSize {
		return apperror.NewValidation("Ukuran file maksimal 5MB.",
			apperror.FieldError{Field: "file", Message: "ukuran file maksimal 5MB"})
	}
	return nil
}

func ValidateLogo(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !logoExts[ext] {
		return apperror.NewValidation("Logo harus berupa gambar (JPG, PNG, GIF, atau SVG).",
			apperror.FieldError{Field: "logo", Message: "tipe file tidak didukung"})
	}
	if file.Size > MaxLogoSize {
		return apperror.NewValidation("Ukuran logo maksimal 2MB.",
			apperror.FieldError{Field: "logo", Message: "ukuran file maksimal 2MB"})
	}
	return nil
}

// SaveUpload menyimpan file di bawah root/subdir dengan nama unik dan
// mengembalikan path relatif yang dipersist di database.
func SaveUpload(c *fiber.Ctx, file *multipart.FileHeader, root, subdir string) (string, error) {
	dir := filepath.Join(root, subdir)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	filename := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(file.Filename))
	relPath := filepath.ToSlash(filepath.Join(subdir, filename))
	if err := c.SaveFile(file, filepath.Join(root, relPath)); err != nil {
		return "", err
	}
	return relPath, nil
}

// RemoveUpload menghapus file lama (mis. logo yang diganti). Error diabaikan
// caller karena file bisa saja sudah tidak ada.
func RemoveUpload(root, relPath string) error {
	if relPath == "" {
		return nil
	}
	return os.Remove(filepath.Join(root, relPath))
}
