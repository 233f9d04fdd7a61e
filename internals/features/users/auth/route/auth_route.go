package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "acampamentos_backend/internals/features/users/auth/controller"
	authMiddleware "acampamentos_backend/internals/middlewares/auth"
	middlewares "acampamentos_backend/internals/middlewares"
)

// AuthRoutes mounts /api/auth (public) and /api/auth/me (token required).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	grp.Post("/refresh-token", ctl.RefreshToken)
	grp.Post("/logout", ctl.Logout)

	grp.Get("/me", authMiddleware.AuthMiddleware(db), ctl.Me)
}
