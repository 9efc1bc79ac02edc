package routers

import (
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/users"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *users.UserController) {
	router.Use(middlewares.Authenticate)

	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)
	staffOnly := middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)

	router.Get("/profile", userController.GetProfile)
	router.Get("/doctors", userController.GetDoctors)
	router.With(staffOnly).Get("/patients", userController.GetPatients)

	router.With(adminOnly).Get("/", userController.GetUsers)
	router.Get("/{userID}", userController.GetUserByID)
	router.Put("/{userID}", userController.UpdateUser)
	router.Put("/{userID}/schedule", userController.UpdateSchedule)
	router.With(adminOnly).Delete("/{userID}", userController.DeleteUser)
}
