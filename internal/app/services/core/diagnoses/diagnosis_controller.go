package diagnoses

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

type DiagnosisController struct {
	Log              *zap.Logger
	DiagnosisUsecase contracts.DiagnosisUsecase
}

func NewDiagnosisController(logger *zap.Logger, diagnosisUsecase contracts.DiagnosisUsecase) *DiagnosisController {
	return &DiagnosisController{
		Log:              logger,
		DiagnosisUsecase: diagnosisUsecase,
	}
}

func (ctrl *DiagnosisController) CreateDiagnosis(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	request := new(requests.CreateDiagnosis)
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

	result, err := ctrl.DiagnosisUsecase.CreateDiagnosis(ctx, session, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) GetDiagnosisByID(w http.ResponseWriter, r *http.Request) {
	diagnosisID := chi.URLParam(r, "diagnosisID")
	if diagnosisID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("diagnosisID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DiagnosisUsecase.GetDiagnosisByID(ctx, diagnosisID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) GetDiagnosesByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DiagnosisUsecase.GetDiagnosesByPatient(ctx, patientID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosesSuccessMessage, result)
}

func (ctrl *DiagnosisController) GetDiagnosesByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")
	if doctorID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("doctorID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DiagnosisUsecase.GetDiagnosesByDoctor(ctx, doctorID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDiagnosesSuccessMessage, result)
}

func (ctrl *DiagnosisController) UpdateDiagnosis(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	diagnosisID := chi.URLParam(r, "diagnosisID")
	if diagnosisID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("diagnosisID"))
		return
	}

	request := new(requests.UpdateDiagnosis)
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

	result, err := ctrl.DiagnosisUsecase.UpdateDiagnosis(ctx, session, diagnosisID, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDiagnosisSuccessMessage, result)
}

func (ctrl *DiagnosisController) DeleteDiagnosis(w http.ResponseWriter, r *http.Request) {
	diagnosisID := chi.URLParam(r, "diagnosisID")
	if diagnosisID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("diagnosisID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DiagnosisUsecase.DeleteDiagnosis(ctx, diagnosisID); err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDiagnosisSuccessMessage, nil)
}

func (ctrl *DiagnosisController) respondError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
