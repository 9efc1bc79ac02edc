package assignments

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

type AssignmentController struct {
	Log               *zap.Logger
	AssignmentUsecase contracts.AssignmentUsecase
}

func NewAssignmentController(logger *zap.Logger, assignmentUsecase contracts.AssignmentUsecase) *AssignmentController {
	return &AssignmentController{
		Log:               logger,
		AssignmentUsecase: assignmentUsecase,
	}
}

func (ctrl *AssignmentController) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		ctrl.respondError(w, err)
		return
	}

	request := new(requests.CreateAssignment)
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

	result, err := ctrl.AssignmentUsecase.CreateAssignment(ctx, session, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAssignmentSuccessMessage, result)
}

func (ctrl *AssignmentController) GetAssignmentsByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID := chi.URLParam(r, "doctorID")
	if doctorID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("doctorID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AssignmentUsecase.GetAssignmentsByDoctor(ctx, doctorID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssignmentsSuccessMessage, result)
}

func (ctrl *AssignmentController) GetAssignmentsByPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AssignmentUsecase.GetAssignmentsByPatient(ctx, patientID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssignmentsSuccessMessage, result)
}

func (ctrl *AssignmentController) DeactivateAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")
	if assignmentID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("assignmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AssignmentUsecase.DeactivateAssignment(ctx, assignmentID); err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeactivateAssignmentSuccessMessage, nil)
}

func (ctrl *AssignmentController) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	assignmentID := chi.URLParam(r, "assignmentID")
	if assignmentID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("assignmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AssignmentUsecase.DeleteAssignment(ctx, assignmentID); err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAssignmentSuccessMessage, nil)
}

func (ctrl *AssignmentController) respondError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
