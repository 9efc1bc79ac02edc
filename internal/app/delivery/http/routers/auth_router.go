package routers

import (
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	authLimiter := middlewares.AuthRateLimiter()

	router.With(authLimiter, middlewares.AuthenticateOptional).Post("/register", authController.Register)
	router.With(authLimiter).Post("/login", authController.Login)
	router.With(authLimiter).Post("/forgot-password", authController.ForgotPassword)
	router.With(authLimiter).Post("/reset-password", authController.ResetPassword)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
