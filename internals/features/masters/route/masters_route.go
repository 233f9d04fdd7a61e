package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	masterController "acampamentos_backend/internals/features/masters/controller"
)

// MasterRoutes mounts the five lookup-table CRUDs under the same pattern.
func MasterRoutes(r fiber.Router, db *gorm.DB) {
	mount := func(path string, ctl *masterController.MasterController) {
		grp := r.Group(path)
		grp.Get("/", ctl.List)
		grp.Post("/", ctl.Create)
		grp.Get("/:id", ctl.GetByID)
		grp.Patch("/:id", ctl.Update)
		grp.Delete("/:id", ctl.Delete)
	}

	mount("/congregations", masterController.NewMasterController(db, masterController.Congregations))
	mount("/participant-tiers", masterController.NewMasterController(db, masterController.ParticipantTiers))
	mount("/registration-packages", masterController.NewMasterController(db, masterController.RegistrationPackages))
	mount("/payment-methods", masterController.NewMasterController(db, masterController.PaymentMethods))
	mount("/treasurers", masterController.NewMasterController(db, masterController.Treasurers))
}
