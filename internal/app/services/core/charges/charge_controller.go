package charges

import (
	"context"
	"encoding/json"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChargeController struct {
	Log           *zap.Logger
	ChargeUsecase contracts.ChargeUsecase
}

func NewChargeController(logger *zap.Logger, chargeUsecase contracts.ChargeUsecase) *ChargeController {
	return &ChargeController{
		Log:           logger,
		ChargeUsecase: chargeUsecase,
	}
}

func (ctrl *ChargeController) CreateCharge(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateCharge)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChargeUsecase.CreateCharge(ctx, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateChargeSuccessMessage, result)
}

func (ctrl *ChargeController) GetChargeByID(w http.ResponseWriter, r *http.Request) {
	chargeID := chi.URLParam(r, "chargeID")
	if chargeID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("chargeID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChargeUsecase.GetChargeByID(ctx, chargeID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetChargeSuccessMessage, result)
}

func (ctrl *ChargeController) GetChargesByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChargeUsecase.GetChargesByPatient(ctx, patientID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetChargesSuccessMessage, result)
}

func (ctrl *ChargeController) PayCharge(w http.ResponseWriter, r *http.Request) {
	chargeID := chi.URLParam(r, "chargeID")
	if chargeID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("chargeID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChargeUsecase.PayCharge(ctx, chargeID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PayChargeSuccessMessage, result)
}

func (ctrl *ChargeController) CancelCharge(w http.ResponseWriter, r *http.Request) {
	chargeID := chi.URLParam(r, "chargeID")
	if chargeID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("chargeID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChargeUsecase.CancelCharge(ctx, chargeID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelChargeSuccessMessage, result)
}

func (ctrl *ChargeController) respondError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
