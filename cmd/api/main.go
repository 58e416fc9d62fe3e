package main

import (
	"fmt"
	"simagang-backend/config"
	"simagang-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())
	app.Use(logger.New())

	// Lampiran logbook & logo sekolah bisa diakses via /uploads/...
	app.Static("/uploads", config.UploadRoot())

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupUserRoutes(app, config.DB)
	routes.SetupDudiRoutes(app, config.DB)
	routes.SetupMagangRoutes(app, config.DB)
	routes.SetupLogbookRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupSettingsRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
