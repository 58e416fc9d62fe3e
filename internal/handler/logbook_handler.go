package handler

import (
	"fmt"
	"strconv"
	"time"

	"simagang-backend/config"
	"simagang-backend/internal/apperror"
	"simagang-backend/internal/helper"
	"simagang-backend/internal/mailer"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type LogbookHandler struct {
	repo        repository.LogbookRepository
	magangRepo  repository.MagangRepository
	userRepo    repository.UserRepository
	authUsecase *usecase.AuthUsecase
	mail        mailer.Mailer
}

func NewLogbookHandler(
	repo repository.LogbookRepository,
	magangRepo repository.MagangRepository,
	userRepo repository.UserRepository,
	authUsecase *usecase.AuthUsecase,
	mail mailer.Mailer,
) *LogbookHandler {
	return &LogbookHandler{
		repo:        repo,
		magangRepo:  magangRepo,
		userRepo:    userRepo,
		authUsecase: authUsecase,
		mail:        mail,
	}
}

func (h *LogbookHandler) List(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))
	paging := helper.ResolvePaging(c, 10, 100)

	filter := repository.LogbookFilter{
		Date:   c.Query("date"),
		Limit:  paging.Limit(),
		Offset: paging.Offset(),
	}
	if status := c.Query("status"); status == model.VerifikasiPending ||
		status == model.VerifikasiDisetujui || status == model.VerifikasiDitolak {
		filter.Status = status
	}
	if month, err := strconv.Atoi(c.Query("month")); err == nil {
		filter.Month = month
	}
	if year, err := strconv.Atoi(c.Query("year")); err == nil {
		filter.Year = year
	}

	// Siswa dibatasi ke magang berlangsung terbarunya; tanpa magang aktif,
	// daftar selalu kosong.
	var activeMagang *model.Magang
	if scope.IsSiswa() && scope.SiswaID != 0 {
		var err error
		activeMagang, err = h.magangRepo.ActiveBySiswa(scope.SiswaID)
		if err != nil {
			return respondError(c, err)
		}
		if activeMagang != nil {
			filter.MagangID = activeMagang.ID
		}
	}

	list, total, err := h.repo.List(filter, scope)
	if err != nil {
		return respondError(c, err)
	}

	stats, err := h.repo.Stats(scope)
	if err != nil {
		return respondError(c, err)
	}

	// Reminder: belum menulis jurnal hari ini (khusus siswa)
	reminderMissingToday := false
	if activeMagang != nil {
		exists, err := h.repo.ExistsForDate(activeMagang.ID, time.Now().Format("2006-01-02"))
		if err != nil {
			return respondError(c, err)
		}
		reminderMissingToday = !exists
	}

	return c.JSON(fiber.Map{
		"data":                   list,
		"meta":                   helper.BuildMeta(total, paging),
		"stats":                  stats,
		"can_create":             activeMagang != nil,
		"can_verify":             scope.IsGuru(),
		"active_magang":          activeMagang,
		"reminder_missing_today": reminderMissingToday,
	})
}

func (h *LogbookHandler) Get(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	logbook, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	if !visibleTo(logbook, scope) {
		return respondError(c, apperror.New(apperror.NotFound, "Jurnal tidak ditemukan"))
	}

	return c.JSON(fiber.Map{"data": logbook})
}

type LogbookContentRequest struct {
	Tanggal  string `json:"tanggal" form:"tanggal" validate:"required,datetime=2006-01-02"`
	Kegiatan string `json:"kegiatan" form:"kegiatan" validate:"required"`
	Kendala  string `json:"kendala" form:"kendala"`
}

// Create: hanya siswa dengan magang berlangsung yang bisa menulis jurnal.
// Lampiran divalidasi sebelum disimpan; saat validasi gagal tidak ada file
// maupun record yang tertinggal.
func (h *LogbookHandler) Create(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))
	if !scope.IsSiswa() {
		return respondError(c, apperror.New(apperror.Forbidden, "Hanya siswa yang dapat menambah jurnal"))
	}
	if scope.SiswaID == 0 {
		return respondError(c, apperror.New(apperror.PreconditionFailed, "Akun Anda belum terhubung dengan data siswa. Hubungi admin."))
	}

	activeMagang, err := h.magangRepo.ActiveBySiswa(scope.SiswaID)
	if err != nil {
		return respondError(c, err)
	}
	if activeMagang == nil {
		return respondError(c, apperror.New(apperror.PreconditionFailed, "Anda belum memiliki magang aktif"))
	}

	var req LogbookContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	path := ""
	if file, errFile := c.FormFile("file"); errFile == nil {
		if err := helper.ValidateLampiran(file); err != nil {
			return respondError(c, err)
		}
		// Lampiran disimpan per-magang: uploads/logbook/<magang_id>/...
		path, err = helper.SaveUpload(c, file, config.UploadRoot(), fmt.Sprintf("logbook/%d", activeMagang.ID))
		if err != nil {
			return respondError(c, err)
		}
	}

	logbook := model.Logbook{
		MagangID:         activeMagang.ID,
		Tanggal:          req.Tanggal,
		Kegiatan:         req.Kegiatan,
		Kendala:          req.Kendala,
		File:             path,
		StatusVerifikasi: model.VerifikasiPending,
	}
	if err := h.repo.Create(&logbook); err != nil {
		helper.RemoveUpload(config.UploadRoot(), path)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Jurnal harian berhasil ditambahkan",
		"data":    logbook,
	})
}

type VerifyLogbookRequest struct {
	StatusVerifikasi string `json:"status_verifikasi" form:"status_verifikasi" validate:"required,oneof=pending disetujui ditolak"`
	CatatanGuru      string `json:"catatan_guru" form:"catatan_guru"`
}

// Update bercabang menurut role: siswa mengubah isi jurnal miliknya, guru
// mengubah status verifikasi + catatan untuk jurnal bimbingannya.
func (h *LogbookHandler) Update(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	logbook, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	switch {
	case scope.IsSiswa():
		return h.updateAsSiswa(c, logbook, scope)
	case scope.IsGuru():
		return h.verifyAsGuru(c, logbook, scope)
	}
	return respondError(c, apperror.New(apperror.Forbidden, "Akses tidak diizinkan"))
}

func (h *LogbookHandler) updateAsSiswa(c *fiber.Ctx, logbook *model.Logbook, scope repository.Scope) error {
	if scope.SiswaID == 0 || logbook.Magang.SiswaID != scope.SiswaID {
		return respondError(c, apperror.New(apperror.Forbidden, "Anda tidak memiliki akses ke jurnal ini"))
	}

	var req LogbookContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	oldFile := logbook.File
	if file, errFile := c.FormFile("file"); errFile == nil {
		if err := helper.ValidateLampiran(file); err != nil {
			return respondError(c, err)
		}
		path, err := helper.SaveUpload(c, file, config.UploadRoot(), fmt.Sprintf("logbook/%d", logbook.MagangID))
		if err != nil {
			return respondError(c, err)
		}
		logbook.File = path
	}

	logbook.Tanggal = req.Tanggal
	logbook.Kegiatan = req.Kegiatan
	logbook.Kendala = req.Kendala
	if err := h.repo.Update(logbook); err != nil {
		if logbook.File != oldFile {
			helper.RemoveUpload(config.UploadRoot(), logbook.File)
		}
		return respondError(c, err)
	}
	if logbook.File != oldFile {
		helper.RemoveUpload(config.UploadRoot(), oldFile)
	}

	return c.JSON(fiber.Map{
		"message": "Jurnal harian berhasil diperbarui",
		"data":    logbook,
	})
}

func (h *LogbookHandler) verifyAsGuru(c *fiber.Ctx, logbook *model.Logbook, scope repository.Scope) error {
	if scope.GuruID == 0 || logbook.Magang.GuruID == nil || *logbook.Magang.GuruID != scope.GuruID {
		return respondError(c, apperror.New(apperror.Forbidden, "Anda tidak memiliki akses untuk memverifikasi jurnal ini"))
	}

	var req VerifyLogbookRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data tidak valid"})
	}
	if err := validateStruct(req); err != nil {
		return respondError(c, err)
	}

	logbook.StatusVerifikasi = req.StatusVerifikasi
	logbook.CatatanGuru = req.CatatanGuru
	if err := h.repo.Update(logbook); err != nil {
		return respondError(c, err)
	}

	// Hasil verifikasi diberitahukan ke siswa via email (best-effort)
	if req.StatusVerifikasi != model.VerifikasiPending {
		if user, err := h.userRepo.GetByID(logbook.Magang.Siswa.UserID); err == nil {
			h.mail.LogbookVerified(user.Email, logbook.Magang.Siswa.Nama, logbook.Tanggal, req.StatusVerifikasi)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Status jurnal berhasil diperbarui",
		"data":    logbook,
	})
}

// Verify: endpoint verifikasi khusus guru.
func (h *LogbookHandler) Verify(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))
	if !scope.IsGuru() {
		return respondError(c, apperror.New(apperror.Forbidden, "Hanya guru yang dapat memverifikasi jurnal"))
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	logbook, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return h.verifyAsGuru(c, logbook, scope)
}

func (h *LogbookHandler) Delete(c *fiber.Ctx) error {
	scope := h.authUsecase.ResolveScope(middleware.UserID(c), middleware.UserRole(c))
	if !scope.IsSiswa() {
		return respondError(c, apperror.New(apperror.Forbidden, "Hanya siswa yang dapat menghapus jurnal"))
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	logbook, err := h.repo.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	if scope.SiswaID == 0 || logbook.Magang.SiswaID != scope.SiswaID {
		return respondError(c, apperror.New(apperror.Forbidden, "Anda tidak memiliki akses ke jurnal ini"))
	}

	if err := h.repo.Delete(logbook.ID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Jurnal harian berhasil dihapus"})
}

func visibleTo(logbook *model.Logbook, scope repository.Scope) bool {
	switch {
	case scope.IsAdmin():
		return true
	case scope.IsGuru():
		return scope.GuruID != 0 && logbook.Magang.GuruID != nil && *logbook.Magang.GuruID == scope.GuruID
	case scope.IsSiswa():
		return scope.SiswaID != 0 && logbook.Magang.SiswaID == scope.SiswaID
	}
	return false
}
