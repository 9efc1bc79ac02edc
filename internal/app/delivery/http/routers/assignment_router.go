package routers

import (
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/assignments"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAssignmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assignmentController *assignments.AssignmentController) {
	router.Use(middlewares.Authenticate)

	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)
	staffOnly := middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)

	router.With(adminOnly).Post("/", assignmentController.CreateAssignment)
	router.With(staffOnly).Get("/doctor/{doctorID}", assignmentController.GetAssignmentsByDoctor)
	router.With(staffOnly).Get("/patient/{patientID}", assignmentController.GetAssignmentsByPatient)
	router.With(adminOnly).Patch("/{assignmentID}/deactivate", assignmentController.DeactivateAssignment)
	router.With(adminOnly).Delete("/{assignmentID}", assignmentController.DeleteAssignment)
}
