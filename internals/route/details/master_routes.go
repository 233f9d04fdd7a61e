package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	masterRoute "acampamentos_backend/internals/features/masters/route"
)

// RegisterMasterRoutes wires the five lookup-table CRUDs.
func RegisterMasterRoutes(api fiber.Router, db *gorm.DB) {
	masterRoute.MasterRoutes(api, db)
}
