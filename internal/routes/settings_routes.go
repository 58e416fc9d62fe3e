package routes

import (
	"simagang-backend/internal/handler"
	"simagang-backend/internal/middleware"
	"simagang-backend/internal/model"
	"simagang-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSettingsRoutes(app *fiber.App, db *gorm.DB) {
	settingsRepo := repository.NewSchoolSettingsRepository(db)
	hdl := handler.NewSchoolSettingsHandler(settingsRepo)

	api := app.Group("/api/settings/school", middleware.Auth)

	api.Get("/", hdl.Get)
	api.Patch("/", middleware.Role(model.RoleAdmin), hdl.Update)
}
