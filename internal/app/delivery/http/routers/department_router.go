package routers

import (
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/departments"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDepartmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, departmentController *departments.DepartmentController) {
	router.Use(middlewares.Authenticate)

	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)

	router.Get("/", departmentController.GetDepartments)
	router.Get("/{departmentID}", departmentController.GetDepartmentByID)
	router.With(adminOnly).Post("/", departmentController.CreateDepartment)
	router.With(adminOnly).Put("/{departmentID}", departmentController.UpdateDepartment)
	router.With(adminOnly).Delete("/{departmentID}", departmentController.DeleteDepartment)
}
