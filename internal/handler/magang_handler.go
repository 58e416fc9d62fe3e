package handler

import (
	"simagang-backend/internal/apperror"
	"simagang-backend/internal/helper"
	"simagang-backend/internal/mailer"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type MagangHandler struct {
	repo        repository.MagangRepository
	siswaRepo   repository.SiswaRepository
	guruRepo    repository.GuruRepository
	dudiRepo    repository.DudiRepository
	userRepo    repository.UserRepository
	authUsecase *usecase.AuthUsecase
	mail        mailer.Mailer
}

func NewMagangHandler(
	repo repository.MagangRepository,
	siswaRepo repository.SiswaRepository,
	guruRepo repository.GuruRepository,
	dudiRepo repository.DudiRepository,
	userRepo repository.UserRepository,
	authUsecase *usecase.AuthUsecase,
	mail mailer.Mailer,
) *MagangHandler {
	return &MagangHandler{
		repo:        repo,
		siswaRepo:   siswaRepo,
		guruRepo:    guruRepo,
		dudiRepo:    dudiRepo,
		userRepo:    userRepo,
		authUsecase: authUsecase,
		mail:        mail,
	}
}

func (h *MagangHandler) List(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))
	paging := helper.ResolvePaging(c, 10, 100)

	filter := repository.MagangFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Limit:  paging.Limit(),
		Offset: paging.Offset(),
	}

	list, total, err := h.repo.List(filter, scope)
	if err != nil {
		return respondError(c, err)
	}

	stats, err := h.repo.Stats(scope)
	if err != nil {
		return respondError(c, err)
	}

	// Pilihan untuk form tambah data
	siswaOptions, err := h.siswaRepo.GetOptions()
	if err != nil {
		return respondError(c, err)
	}
	dudiOptions, _, err := h.dudiRepo.List(repository.DudiFilter{Limit: 1000}, repository.AdminScope())
	if err != nil {
		return respondError(c, err)
	}

	// Guru yang login hanya boleh memilih dirinya sendiri sebagai pembimbing
	var guruOptions []model.Guru
	if scope.IsGuru() {
		if scope.GuruID != 0 {
			guru, err := h.guruRepo.GetByID(scope.GuruID)
			if err != nil {
				return respondError(c, err)
			}
			guruOptions = []model.Guru{*guru}
		}
	} else {
		guruOptions, err = h.guruRepo.GetOptions()
		if err != nil {
			return respondError(c, err)
		}
	}

	dudiOpts := make([]fiber.Map, 0, len(dudiOptions))
	for _, d := range dudiOptions {
		dudiOpts = append(dudiOpts, fiber.Map{"id": d.ID, "nama": d.NamaPerusahaan})
	}

	return c.JSON(fiber.Map{
		"data":          list,
		"meta":          helper.BuildMeta(total, paging),
		"stats":         stats,
		"siswa_options": siswaOptions,
		"guru_options":  guruOptions,
		"dudi_options":  dudiOpts,
	})
}

type CreateMagangRequest struct {
	SiswaID        uint   `json:"siswa_id" validate:"required"`
	DudiID         uint   `json:"dudi_id" validate:"required"`
	GuruID         *uint  `json:"guru_id"`
	TanggalMulai   string `json:"tanggal_mulai" validate:"omitempty,datetime=2006-01-02"`
	TanggalSelesai string `json:"tanggal_selesai" validate:"omitempty,datetime=2006-01-02"`
}

// Create: entri langsung oleh admin/guru, status langsung berlangsung
// (berbeda dari pendaftaran mandiri siswa yang mulai dari pending).
func (h *MagangHandler) Create(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))

	var req CreateMagangRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}
	if req.TanggalMulai != "" && req.TanggalSelesai != "" && req.TanggalSelesai < req.TanggalMulai {
		return respondError(c, apperror.NewValidation("Tanggal selesai harus setelah tanggal mulai",
			apperror.FieldError{Field: "tanggal_selesai", Message: "harus setelah tanggal mulai"}))
	}

	if _, err := h.siswaRepo.GetByID(req.SiswaID); err != nil {
		return respondError(c, apperror.New(apperror.NotFound, "Data siswa tidak ditemukan"))
	}
	if _, err := h.dudiRepo.GetByID(req.DudiID); err != nil {
		return respondError(c, err)
	}

	// Guru pembimbing: admin harus memilih eksplisit, guru otomatis dirinya
	var guruID uint
	if scope.IsGuru() {
		if scope.GuruID == 0 {
			return respondError(c, apperror.New(apperror.PreconditionFailed, "Akun guru belum terhubung dengan data guru. Hubungi admin."))
		}
		guruID = scope.GuruID
	} else {
		if req.GuruID == nil {
			return respondError(c, apperror.NewValidation("Guru pembimbing wajib dipilih",
				apperror.FieldError{Field: "guru_id", Message: "wajib diisi"}))
		}
		guruID = *req.GuruID
		if _, err := h.guruRepo.GetByID(guruID); err != nil {
			return respondError(c, apperror.New(apperror.NotFound, "Data guru tidak ditemukan"))
		}
	}

	magang := model.Magang{
		SiswaID:        req.SiswaID,
		DudiID:         req.DudiID,
		GuruID:         &guruID,
		TanggalMulai:   req.TanggalMulai,
		TanggalSelesai: req.TanggalSelesai,
		Status:         model.MagangBerlangsung,
	}
	if err := h.repo.Create(&magang); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Data magang berhasil ditambahkan",
		"data":    magang,
	})
}

type UpdateMagangRequest struct {
	TanggalMulai   *string  `json:"tanggal_mulai" validate:"omitempty,datetime=2006-01-02"`
	TanggalSelesai *string  `json:"tanggal_selesai" validate:"omitempty,datetime=2006-01-02"`
	Status         *string  `json:"status" validate:"omitempty,oneof=pending diterima ditolak berlangsung selesai dibatalkan"`
	NilaiAkhir     *float64 `json:"nilai_akhir" validate:"omitempty,gte=0,lte=100"`
}

func (h *MagangHandler) Update(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req UpdateMagangRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	before, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	statusSebelum := before.Status

	magang, err := h.repo.Update(uint(id), repository.MagangUpdate{
		TanggalMulai:   req.TanggalMulai,
		TanggalSelesai: req.TanggalSelesai,
		Status:         req.Status,
		NilaiAkhir:     req.NilaiAkhir,
	}, scope)
	if err != nil {
		return respondError(c, err)
	}

	// Keputusan atas pendaftaran pending diberitahukan ke siswa via email
	if statusSebelum == model.MagangPending && magang.Status != model.MagangPending {
		h.notifySiswa(magang)
	}

	return c.JSON(fiber.Map{
		"message": "Data magang berhasil diperbarui",
		"data":    magang,
	})
}

func (h *MagangHandler) Delete(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.Delete(uint(id), scope); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Data magang berhasil dihapus"})
}

func (h *MagangHandler) notifySiswa(magang *model.Magang) {
	user, err := h.userRepo.GetByID(magang.Siswa.UserID)
	if err != nil {
		return
	}
	h.mail.PlacementDecision(user.Email, magang.Siswa.Nama, magang.Dudi.NamaPerusahaan, magang.Status)
}
