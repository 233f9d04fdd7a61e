package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "acampamentos_backend/internals/features/users/auth/route"
	"acampamentos_backend/internals/middlewares"
	authMiddleware "acampamentos_backend/internals/middlewares/auth"
	"acampamentos_backend/internals/route/details"
)

// SetupRoutes mounts the public auth surface and the authenticated /api/u
// group every business route lives under.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		middlewares.DBMiddleware(db),
	)

	details.RegisterCampRoutes(api, db)
	details.RegisterMasterRoutes(api, db)
	details.RegisterRegistrationRoutes(api, db)
	details.RegisterAuditRoutes(api, db)

	log.Println("✅ Rotas registradas")
}
