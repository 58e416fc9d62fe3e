package routes

import (
	"simagang-backend/internal/handler"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"
	"simagang-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userRepo := repository.NewUserRepository(db)
	guruRepo := repository.NewGuruRepository(db)
	siswaRepo := repository.NewSiswaRepository(db)
	authUsecase := usecase.NewAuthUsecase(userRepo, guruRepo, siswaRepo)
	hdl := handler.NewUserHandler(userRepo, authUsecase)

	// Manajemen user hanya untuk admin
	api := app.Group("/api/users", middleware.Auth, middleware.Role(model.RoleAdmin))

	api.Get("/", hdl.List)
	api.Post("/", hdl.Create)
	api.Patch("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
