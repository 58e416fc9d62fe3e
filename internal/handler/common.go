package handler

import (
	"errors"

	"simagang-backend/internal/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// validateStruct menerjemahkan error validator/v10 menjadi ValidationFailed
// per-field supaya klien tahu field mana yang salah.
func validateStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: "gagal pada aturan " + fe.Tag(),
		})
	}
	return apperror.NewValidation("Data tidak valid", fields...)
}

// respondError memetakan taksonomi error domain ke status HTTP. Error di
// luar taksonomi dianggap kegagalan infrastruktur (500) tanpa detail.
func respondError(c *fiber.Ctx, err error) error {
	body := fiber.Map{"error": err.Error()}
	if fields := apperror.FieldsOf(err); len(fields) > 0 {
		body["fields"] = fields
	}

	switch apperror.KindOf(err) {
	case apperror.ValidationFailed:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
	case apperror.Forbidden:
		return c.Status(fiber.StatusForbidden).JSON(body)
	case apperror.NotFound:
		return c.Status(fiber.StatusNotFound).JSON(body)
	case apperror.Conflict:
		return c.Status(fiber.StatusConflict).JSON(body)
	case apperror.LimitExceeded:
		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)
	case apperror.PreconditionFailed:
		return c.Status(fiber.StatusPreconditionFailed).JSON(body)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Terjadi kesalahan pada server"})
}
