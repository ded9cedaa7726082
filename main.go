package main

import (
	"academy_manager/config"
	"academy_manager/database"
	"academy_manager/handler"
	"academy_manager/helper"
	"academy_manager/router"
	"academy_manager/store"
	"academy_manager/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Secrets have no literal defaults; a missing one stops the process here.
	config.MustConfig("JWT_SECRET")

	app := fiber.New(fiber.Config{
		BodyLimit: 5 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	utils.DefaultSMS = utils.NewSMSClient()
	handler.TossClient = handler.NewToss()
	handler.InitRedis()

	// The process keeps serving when the database is down: payments fall back
	// to the volatile store, everything else answers 503.
	if err := database.Connect(); err != nil {
		log.Printf("database unavailable, using in-memory payment store: %v", err)
		handler.Payments = store.NewMemoryStore()
	} else {
		handler.Payments = store.NewDBStore(database.DB)
		helper.StartDailyReportScheduler()
		defer helper.StopDailyReportScheduler()
	}

	router.SetupRoutes(app)

	// Built landing-page bundle.
	app.Static("/", "./public")

	port := config.ConfigOr("PORT", "8002")
	log.Fatal(app.Listen(":" + port))
}
