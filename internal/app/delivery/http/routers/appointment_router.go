package routers

import (
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	staffOnly := middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)

	router.Post("/", appointmentController.CreateAppointment)
	router.With(staffOnly).Get("/", appointmentController.GetAppointments)
	router.Get("/my-appointments", appointmentController.GetMyAppointments)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Get("/my-appointments-doctor", appointmentController.GetMyAppointmentsAsDoctor)
	router.Get("/available-slots", appointmentController.GetAvailableSlots)
	router.Get("/available-doctors", appointmentController.GetAvailableDoctors)
	router.With(staffOnly).Get("/patient/{patientID}", appointmentController.GetAppointmentsByPatient)
	router.With(staffOnly).Get("/doctor/{doctorID}", appointmentController.GetAppointmentsByDoctor)
	router.Get("/{appointmentID}", appointmentController.GetAppointmentByID)
	router.Put("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{appointmentID}", appointmentController.DeleteAppointment)
}
