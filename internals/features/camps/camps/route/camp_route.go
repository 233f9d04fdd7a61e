package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	campController "acampamentos_backend/internals/features/camps/camps/controller"
)

// CampRoutes mounts the camp CRUD + archive/restore endpoints.
func CampRoutes(r fiber.Router, db *gorm.DB) {
	ctl := campController.NewCampController(db)

	grp := r.Group("/camps")
	grp.Get("/", ctl.List)
	grp.Get("/archived", ctl.ListArchived)
	grp.Post("/", ctl.Create)
	grp.Get("/:id", ctl.GetByID)
	grp.Patch("/:id", ctl.Patch)
	grp.Post("/:id/archive", ctl.Archive)
	grp.Post("/:id/restore", ctl.Restore)
}
