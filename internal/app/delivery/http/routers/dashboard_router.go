package routers

import (
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/dashboard"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *dashboard.DashboardController) {
	router.Use(middlewares.Authenticate)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Get("/stats", dashboardController.GetStats)
}
