package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "acampamentos_backend/internals/features/registrations/payments/controller"
)

// PaymentRoutes mounts installment writes and the camp payments report.
func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentController.NewPaymentController(db)
	rpt := paymentController.NewReportController(db)

	r.Post("/registrations/:id/payments", ctl.Create)
	r.Patch("/payments/:id", ctl.Patch)
	r.Get("/camps/:id/payments-report", rpt.PaymentsByCamp)
}
