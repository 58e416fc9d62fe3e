package handler

import (
	"simagang-backend/internal/apperror"
	"simagang-backend/internal/helper"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type DudiHandler struct {
	repo        repository.DudiRepository
	magangRepo  repository.MagangRepository
	authUsecase *usecase.AuthUsecase
}

func NewDudiHandler(repo repository.DudiRepository, magangRepo repository.MagangRepository, authUsecase *usecase.AuthUsecase) *DudiHandler {
	return &DudiHandler{repo: repo, magangRepo: magangRepo, authUsecase: authUsecase}
}

type dudiRow struct {
	model.Dudi
	TotalSiswaMagang int64 `json:"total_siswa_magang"`
}

func (h *DudiHandler) List(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))

	defaultPerPage := 5
	if scope.IsSiswa() {
		defaultPerPage = 6
	}
	paging := helper.ResolvePaging(c, defaultPerPage, 100)

	filter := repository.DudiFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Limit:  paging.Limit(),
		Offset: paging.Offset(),
	}

	list, total, err := h.repo.List(filter, scope)
	if err != nil {
		return respondError(c, err)
	}

	// Jumlah siswa magang berlangsung per DUDI; untuk guru dihitung hanya
	// dari siswa bimbingannya, bukan global.
	ids := make([]uint, 0, len(list))
	for _, d := range list {
		ids = append(ids, d.ID)
	}
	counts, err := h.repo.ActiveInternCounts(ids, scope.GuruID)
	if err != nil {
		return respondError(c, err)
	}

	rows := make([]dudiRow, 0, len(list))
	for _, d := range list {
		rows = append(rows, dudiRow{Dudi: d, TotalSiswaMagang: counts[d.ID]})
	}

	stats, err := h.repo.Stats(scope)
	if err != nil {
		return respondError(c, err)
	}

	resp := fiber.Map{
		"data":  rows,
		"meta":  helper.BuildMeta(total, paging),
		"stats": stats,
	}

	// Daftar pendaftaran siswa (maksimal 3) untuk kontrol tombol daftar
	if scope.IsSiswa() && scope.SiswaID != 0 {
		pendaftaran, err := h.magangRepo.RecentBySiswa(scope.SiswaID, repository.MaxPendaftaran)
		if err != nil {
			return respondError(c, err)
		}
		resp["pendaftaran"] = pendaftaran
	}

	return c.JSON(resp)
}

func (h *DudiHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	dudi, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": dudi})
}

type DudiRequest struct {
	NamaPerusahaan  string `json:"nama_perusahaan" validate:"required,max=255"`
	Alamat          string `json:"alamat" validate:"required"`
	Telepon         string `json:"telepon" validate:"required,max=20"`
	Email           string `json:"email" validate:"required,email,max=255"`
	PenanggungJawab string `json:"penanggung_jawab" validate:"required,max=255"`
	Status          string `json:"status" validate:"required,oneof=aktif tidak_aktif"`
}

func (h *DudiHandler) Create(c *fiber.Ctx) error {
	if middleware.UserRole(c) == model.RoleGuru {
		return respondError(c, apperror.New(apperror.Forbidden, "Anda tidak memiliki akses untuk menambah data DUDI"))
	}

	var req DudiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	// Unik hanya terhadap baris hidup; nama DUDI terhapus boleh dipakai lagi
	exists, err := h.repo.ExistsByName(req.NamaPerusahaan, 0)
	if err != nil {
		return respondError(c, err)
	}
	if exists {
		return respondError(c, apperror.New(apperror.Conflict, "Nama perusahaan sudah terdaftar"))
	}

	dudi := model.Dudi{
		UserID:          middleware.UserID(c),
		NamaPerusahaan:  req.NamaPerusahaan,
		Alamat:          req.Alamat,
		Telepon:         req.Telepon,
		Email:           req.Email,
		PenanggungJawab: req.PenanggungJawab,
		Status:          req.Status,
	}
	if err := h.repo.Create(&dudi); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "DUDI berhasil ditambahkan",
		"data":    dudi,
	})
}

func (h *DudiHandler) Update(c *fiber.Ctx) error {
	if middleware.UserRole(c) == model.RoleGuru {
		return respondError(c, apperror.New(apperror.Forbidden, "Anda tidak memiliki akses untuk mengedit data DUDI"))
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req DudiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	dudi, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	exists, err := h.repo.ExistsByName(req.NamaPerusahaan, dudi.ID)
	if err != nil {
		return respondError(c, err)
	}
	if exists {
		return respondError(c, apperror.New(apperror.Conflict, "Nama perusahaan sudah terdaftar"))
	}

	dudi.NamaPerusahaan = req.NamaPerusahaan
	dudi.Alamat = req.Alamat
	dudi.Telepon = req.Telepon
	dudi.Email = req.Email
	dudi.PenanggungJawab = req.PenanggungJawab
	dudi.Status = req.Status
	if err := h.repo.Update(dudi); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "DUDI berhasil diperbarui",
		"data":    dudi,
	})
}

func (h *DudiHandler) Delete(c *fiber.Ctx) error {
	if middleware.UserRole(c) == model.RoleGuru {
		return respondError(c, apperror.New(apperror.Forbidden, "Anda tidak memiliki akses untuk menghapus data DUDI"))
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.SoftDelete(uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "DUDI berhasil dihapus"})
}

func (h *DudiHandler) Restore(c *fiber.Ctx) error {
	if middleware.UserRole(c) == model.RoleGuru {
		return respondError(c, apperror.New(apperror.Forbidden, "Anda tidak memiliki akses untuk memulihkan data DUDI"))
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	dudi, err := h.repo.Restore(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "DUDI berhasil dipulihkan",
		"data":    dudi,
	})
}

func (h *DudiHandler) SiswaMagang(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	dudi, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	siswaMagang, err := h.repo.SiswaMagang(dudi.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"dudi":         dudi,
		"siswa_magang": siswaMagang,
	})
}

// Apply: pendaftaran magang mandiri oleh siswa, masuk dengan status pending.
func (h *DudiHandler) Apply(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))
	if !scope.IsSiswa() {
		return respondError(c, apperror.New(apperror.Forbidden, "Hanya siswa yang dapat mendaftar magang"))
	}
	if scope.SiswaID == 0 {
		return respondError(c, apperror.New(apperror.PreconditionFailed, "Akun Anda belum terhubung dengan data siswa. Hubungi admin."))
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	dudi, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	magang, err := h.magangRepo.Apply(scope.SiswaID, dudi.ID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pendaftaran magang berhasil diajukan, menunggu verifikasi dari pihak guru",
		"data":    magang,
	})
}
