package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditRoute "acampamentos_backend/internals/features/audit/payment_logs/route"
)

// RegisterAuditRoutes wires the read-only audit trail.
func RegisterAuditRoutes(api fiber.Router, db *gorm.DB) {
	auditRoute.AuditRoutes(api, db)
}
