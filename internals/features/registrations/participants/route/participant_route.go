package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	participantController "acampamentos_backend/internals/features/registrations/participants/controller"
)

// ParticipantRoutes mounts search-as-you-type and participant CRUD.
func ParticipantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := participantController.NewParticipantController(db)

	grp := r.Group("/participants")
	grp.Get("/", ctl.Search)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Patch)
}
