package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	participantRoute "acampamentos_backend/internals/features/registrations/participants/route"
	paymentRoute "acampamentos_backend/internals/features/registrations/payments/route"
	registrationRoute "acampamentos_backend/internals/features/registrations/registrations/route"
)

// RegisterRegistrationRoutes wires participants, registrations and payments.
func RegisterRegistrationRoutes(api fiber.Router, db *gorm.DB) {
	participantRoute.ParticipantRoutes(api, db)
	registrationRoute.RegistrationRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)
}
