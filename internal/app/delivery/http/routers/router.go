package routers

import (
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/app/services/core/assignments"
	"hospital-service/internal/app/services/core/auth"
	"hospital-service/internal/app/services/core/charges"
	"hospital-service/internal/app/services/core/dashboard"
	"hospital-service/internal/app/services/core/departments"
	"hospital-service/internal/app/services/core/diagnoses"
	"hospital-service/internal/app/services/core/labtests"
	"hospital-service/internal/app/services/core/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	departmentController *departments.DepartmentController,
	appointmentController *appointments.AppointmentController,
	assignmentController *assignments.AssignmentController,
	diagnosisController *diagnoses.DiagnosisController,
	labTestController *labtests.LabTestController,
	chargeController *charges.ChargeController,
	dashboardController *dashboard.DashboardController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})
			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})
			r.Route("/departments", func(r chi.Router) {
				attachDepartmentRoutes(r, middlewares, departmentController)
			})
			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})
			r.Route("/assignments", func(r chi.Router) {
				attachAssignmentRoutes(r, middlewares, assignmentController)
			})
			r.Route("/diagnoses", func(r chi.Router) {
				attachDiagnosisRoutes(r, middlewares, diagnosisController)
			})
			r.Route("/lab-tests", func(r chi.Router) {
				attachLabTestRoutes(r, middlewares, labTestController)
			})
			r.Route("/charges", func(r chi.Router) {
				attachChargeRoutes(r, middlewares, chargeController)
			})
			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, dashboardController)
			})
		})
	})
}
