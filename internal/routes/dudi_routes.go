package routes

import (
	"simagang-backend/internal/handler"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDudiRoutes(app *fiber.App, db *gorm.DB) {
	dudiRepo := repository.NewDudiRepository(db)
	magangRepo := repository.NewMagangRepository(db)
	userRepo := repository.NewUserRepository(db)
	guruRepo := repository.NewGuruRepository(db)
	siswaRepo := repository.NewSiswaRepository(db)
	authUsecase := usecase.NewAuthUsecase(userRepo, guruRepo, siswaRepo)
	hdl := handler.NewDudiHandler(dudiRepo, magangRepo, authUsecase)

	api := app.Group("/api/dudi", middleware.Auth)

	api.Get("/", hdl.List)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.Get)
	api.Patch("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
	api.Post("/:id/restore", hdl.Restore)
	api.Get("/:id/siswa-magang", hdl.SiswaMagang)
	api.Post("/:id/apply", hdl.Apply)
}
