package labtests

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

type LabTestController struct {
	Log            *zap.Logger
	LabTestUsecase contracts.LabTestUsecase
}

func NewLabTestController(logger *zap.Logger, labTestUsecase contracts.LabTestUsecase) *LabTestController {
	return &LabTestController{
		Log:            logger,
		LabTestUsecase: labTestUsecase,
	}
}

func (ctrl *LabTestController) CreateLabTest(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	request := new(requests.CreateLabTest)
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

	result, err := ctrl.LabTestUsecase.CreateLabTest(ctx, session, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLabTestSuccessMessage, result)
}

func (ctrl *LabTestController) GetLabTestByID(w http.ResponseWriter, r *http.Request) {
	labTestID := chi.URLParam(r, "labTestID")
	if labTestID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("labTestID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LabTestUsecase.GetLabTestByID(ctx, labTestID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabTestSuccessMessage, result)
}

func (ctrl *LabTestController) GetLabTestsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LabTestUsecase.GetLabTestsByPatient(ctx, patientID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabTestsSuccessMessage, result)
}

func (ctrl *LabTestController) RecordResult(w http.ResponseWriter, r *http.Request) {
	labTestID := chi.URLParam(r, "labTestID")
	if labTestID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("labTestID"))
		return
	}

	request := new(requests.RecordLabTestResult)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	// The upload to object storage can be slow for large reports.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.LabTestUsecase.RecordResult(ctx, labTestID, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RecordLabTestResultSuccessMessage, result)
}

func (ctrl *LabTestController) GetReportDownloadURL(w http.ResponseWriter, r *http.Request) {
	labTestID := chi.URLParam(r, "labTestID")
	if labTestID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("labTestID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.LabTestUsecase.GetReportDownloadURL(ctx, labTestID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLabTestReportSuccessMessage, result)
}

func (ctrl *LabTestController) DeleteLabTest(w http.ResponseWriter, r *http.Request) {
	labTestID := chi.URLParam(r, "labTestID")
	if labTestID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("labTestID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.LabTestUsecase.DeleteLabTest(ctx, labTestID); err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteLabTestSuccessMessage, nil)
}

func (ctrl *LabTestController) respondError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
