package routers

import (
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/services/core/charges"
	"hospital-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachChargeRoutes(router chi.Router, middlewares *middlewares.Middlewares, chargeController *charges.ChargeController) {
	router.Use(middlewares.Authenticate)

	adminOnly := middlewares.RequireRoles(constvars.RoleAdmin)
	staffOnly := middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)

	router.With(staffOnly).Post("/", chargeController.CreateCharge)
	router.Get("/patient/{patientID}", chargeController.GetChargesByPatient)
	router.Get("/{chargeID}", chargeController.GetChargeByID)
	router.With(adminOnly).Patch("/{chargeID}/pay", chargeController.PayCharge)
	router.With(adminOnly).Patch("/{chargeID}/cancel", chargeController.CancelCharge)
}
