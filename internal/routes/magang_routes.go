package routes

import (
	"simagang-backend/internal/handler"
	"simagang-backend/internal/mailer"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMagangRoutes(app *fiber.App, db *gorm.DB) {
	magangRepo := repository.NewMagangRepository(db)
	siswaRepo := repository.NewSiswaRepository(db)
	guruRepo := repository.NewGuruRepository(db)
	dudiRepo := repository.NewDudiRepository(db)
	userRepo := repository.NewUserRepository(db)
	authUsecase := usecase.NewAuthUsecase(userRepo, guruRepo, siswaRepo)
	hdl := handler.NewMagangHandler(magangRepo, siswaRepo, guruRepo, dudiRepo, userRepo, authUsecase, mailer.New())

	api := app.Group("/api/magang", middleware.Auth)

	api.Get("/", hdl.List)
	// Entri langsung hanya oleh admin/guru; siswa mendaftar lewat /api/dudi/:id/apply
	api.Post("/", middleware.Role(model.RoleAdmin, model.RoleGuru), hdl.Create)
	api.Patch("/:id", middleware.Role(model.RoleAdmin, model.RoleGuru), hdl.Update)
	api.Delete("/:id", middleware.Role(model.RoleAdmin, model.RoleGuru), hdl.Delete)
}
