package router

import (
	"academy_manager/handler"
	"academy_manager/middleware"
	"academy_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	app.Get("/health", handler.Health)

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	consultation := v1.Group("/consultations", logger.New())
	consultation.Post("/", validate.CreateConsultation(), handler.CreateConsultation)
	consultation.Get("/", middleware.Protected(), handler.GetConsultations)
	consultation.Patch("/:consultationId/status", middleware.Protected(), validate.GetById("consultationId"), validate.UpdateConsultationStatus(), handler.UpdateConsultationStatus)

	franchise := v1.Group("/franchise", logger.New())
	franchise.Post("/", validate.CreateFranchise(), handler.CreateFranchiseInquiry)
	franchise.Get("/", middleware.Protected(), handler.GetFranchiseInquiries)
	franchise.Patch("/:inquiryId", middleware.Protected(), validate.GetById("inquiryId"), validate.UpdateFranchise(), handler.UpdateFranchiseInquiry)

	payment := v1.Group("/payments", logger.New())
	payment.Post("/", validate.CreatePayment(), handler.CreatePayment)
	payment.Post("/confirm", validate.ConfirmPayment(), handler.ConfirmPayment)
	payment.Get("/", middleware.Protected(), handler.GetPayments)
	payment.Post("/:paymentId/cancel", middleware.Protected(), validate.GetById("paymentId"), validate.CancelPayment(), handler.CancelPayment)
	payment.Patch("/:paymentId/note", middleware.Protected(), validate.GetById("paymentId"), validate.UpdatePaymentNote(), handler.UpdatePaymentNote)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)

	// Server-to-Server
	app.Post("/payments/webhook", handler.TossWebhook)
}
