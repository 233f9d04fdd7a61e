package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	priceController "acampamentos_backend/internals/features/camps/camp_prices/controller"
)

// CampPriceRoutes mounts the per-camp price table endpoints.
func CampPriceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := priceController.NewCampPriceController(db)

	r.Get("/camps/:id/prices", ctl.ListByCamp)
	r.Post("/camps/:id/prices", ctl.Create)
	r.Patch("/camp-prices/:id", ctl.Patch)
	r.Delete("/camp-prices/:id", ctl.Delete)
}
