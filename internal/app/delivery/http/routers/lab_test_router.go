package routers

import (
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/labtests"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachLabTestRoutes(router chi.Router, middlewares *middlewares.Middlewares, labTestController *labtests.LabTestController) {
	router.Use(middlewares.Authenticate)

	doctorOnly := middlewares.RequireRoles(constvars.RoleDoctor)
	staffOnly := middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)

	router.With(doctorOnly).Post("/", labTestController.CreateLabTest)
	router.Get("/patient/{patientID}", labTestController.GetLabTestsByPatient)
	router.Get("/{labTestID}", labTestController.GetLabTestByID)
	router.With(staffOnly).Put("/{labTestID}/result", labTestController.RecordResult)
	router.Get("/{labTestID}/report", labTestController.GetReportDownloadURL)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{labTestID}", labTestController.DeleteLabTest)
}
