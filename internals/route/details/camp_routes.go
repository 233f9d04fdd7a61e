package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campPriceRoute "acampamentos_backend/internals/features/camps/camp_prices/route"
	campRoute "acampamentos_backend/internals/features/camps/camps/route"
)

// RegisterCampRoutes wires camps and their price tables.
func RegisterCampRoutes(api fiber.Router, db *gorm.DB) {
	campRoute.CampRoutes(api, db)
	campPriceRoute.CampPriceRoutes(api, db)
}
