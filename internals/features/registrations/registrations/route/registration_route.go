package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registrationController "acampamentos_backend/internals/features/registrations/registrations/controller"
)

// RegistrationRoutes mounts the registration lifecycle endpoints.
func RegistrationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := registrationController.NewRegistrationController(db)

	r.Get("/camps/:id/registrations", ctl.ListByCamp)

	grp := r.Group("/registrations")
	grp.Post("/", ctl.Create)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id", ctl.Patch)
	grp.Get("/:id/resolve-price", ctl.ResolvePrice)
	grp.Post("/:id/cancel", ctl.Cancel)
}
