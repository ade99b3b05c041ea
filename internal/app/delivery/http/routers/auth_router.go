package routers

import (
	"neuroshield-service/internal/app/delivery/http/middlewares"
	"neuroshield-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, loginLimiter *middlewares.RateLimiter, authController *auth.AuthController) {
	router.Post("/signup", authController.Signup)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.Get("/logout", authController.Logout)
	router.With(middlewares.Authentication).Get("/dashboard", authController.Dashboard)
}
