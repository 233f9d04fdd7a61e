package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	trailController "acampamentos_backend/internals/features/audit/payment_logs/controller"
)

// AuditRoutes mounts the read-only audit trail.
func AuditRoutes(r fiber.Router, db *gorm.DB) {
	ctl := trailController.NewTrailController(db)
	r.Get("/audit-trail", ctl.Latest)
}
