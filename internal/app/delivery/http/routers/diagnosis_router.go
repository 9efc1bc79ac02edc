package routers

import (
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/diagnoses"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDiagnosisRoutes(router chi.Router, middlewares *middlewares.Middlewares, diagnosisController *diagnoses.DiagnosisController) {
	router.Use(middlewares.Authenticate)

	doctorOnly := middlewares.RequireRoles(constvars.RoleDoctor)
	staffOnly := middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)

	router.With(doctorOnly).Post("/", diagnosisController.CreateDiagnosis)
	router.Get("/patient/{patientID}", diagnosisController.GetDiagnosesByPatient)
	router.With(staffOnly).Get("/doctor/{doctorID}", diagnosisController.GetDiagnosesByDoctor)
	router.Get("/{diagnosisID}", diagnosisController.GetDiagnosisByID)
	router.With(staffOnly).Put("/{diagnosisID}", diagnosisController.UpdateDiagnosis)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{diagnosisID}", diagnosisController.DeleteDiagnosis)
}
