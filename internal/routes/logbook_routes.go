package routes

import (
	"simagang-backend/internal/handler"
	"simagang-backend/internal/mailer"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLogbookRoutes(app *fiber.App, db *gorm.DB) {
	logbookRepo := repository.NewLogbookRepository(db)
	magangRepo := repository.NewMagangRepository(db)
	userRepo := repository.NewUserRepository(db)
	guruRepo := repository.NewGuruRepository(db)
	siswaRepo := repository.NewSiswaRepository(db)
	authUsecase := usecase.NewAuthUsecase(userRepo, guruRepo, siswaRepo)
	hdl := handler.NewLogbookHandler(logbookRepo, magangRepo, userRepo, authUsecase, mailer.New())

	api := app.Group("/api/logbook", middleware.Auth)

	api.Get("/", hdl.List)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.Get)
	api.Patch("/:id", hdl.Update)
	api.Post("/:id/verify", hdl.Verify)
	api.Delete("/:id", hdl.Delete)
}
