package handler

import (
	"simagang-backend/config"
	"simagang-backend/internal/helper"
	"simagang-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type SchoolSettingsHandler struct {
	repo repository.SchoolSettingsRepository
}

func NewSchoolSettingsHandler(repo repository.SchoolSettingsRepository) *SchoolSettingsHandler {
	return &SchoolSettingsHandler{repo: repo}
}

func (h *SchoolSettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.repo.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": settings})
}

type SchoolSettingsRequest struct {
	NamaSekolah   string `json:"nama_sekolah" form:"nama_sekolah" validate:"required,max=255"`
	Alamat        string `json:"alamat" form:"alamat" validate:"required"`
	Telepon       string `json:"telepon" form:"telepon" validate:"max=20"`
	Email         string `json:"email" form:"email" validate:"omitempty,email,max=255"`
	Website       string `json:"website" form:"website" validate:"max=255"`
	KepalaSekolah string `json:"kepala_sekolah" form:"kepala_sekolah" validate:"max=255"`
	NPSN          string `json:"npsn" form:"npsn" validate:"max=20"`
}

func (h *SchoolSettingsHandler) Update(c *fiber.Ctx) error {
	var req SchoolSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	settings, err := h.repo.Get()
	if err != nil {
		return respondError(c, err)
	}

	settings.NamaSekolah = req.NamaSekolah
	settings.Alamat = req.Alamat
	settings.Telepon = req.Telepon
	settings.Email = req.Email
	settings.Website = req.Website
	settings.KepalaSekolah = req.KepalaSekolah
	settings.NPSN = req.NPSN

	if file, errFile := c.FormFile("logo"); errFile == nil {
		if err := helper.ValidateLogo(file); err != nil {
			return respondError(c, err)
		}
		path, err := helper.SaveUpload(c, file, config.UploadRoot(), "logos")
		if err != nil {
			return respondError(c, err)
		}
		// Logo lama dihapus setelah logo baru tersimpan
		helper.RemoveUpload(config.UploadRoot(), settings.LogoURL)
		settings.LogoURL = path
	}

	if err := h.repo.Save(settings); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Pengaturan sekolah berhasil diperbarui",
		"data":    settings,
	})
}
