package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(NotFound, "Data tidak ditemukan")
	assert.Equal(t, NotFound, KindOf(err))
	assert.EqualError(t, err, "Data tidak ditemukan")

	// Tetap dikenali walau dibungkus
	wrapped := fmt.Errorf("gagal memuat: %w", Newf(Conflict, "duplikat untuk id %d", 7))
	assert.Equal(t, Conflict, KindOf(wrapped))

	// Error infrastruktur tidak punya kategori domain
	assert.Equal(t, Kind(""), KindOf(errors.New("connection refused")))
	assert.Equal(t, Kind(""), KindOf(nil))
}

func TestValidationFields(t *testing.T) {
	err := NewValidation("Input tidak valid",
		FieldError{Field: "tanggal", Message: "wajib diisi"},
		FieldError{Field: "kegiatan", Message: "wajib diisi"},
	)
	assert.Equal(t, ValidationFailed, KindOf(err))

	fields := FieldsOf(err)
	assert.Len(t, fields, 2)
	assert.Equal(t, "tanggal", fields[0].Field)

	assert.Nil(t, FieldsOf(errors.New("bukan error domain")))
}
