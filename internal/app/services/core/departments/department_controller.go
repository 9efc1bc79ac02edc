package departments

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

type DepartmentController struct {
	Log               *zap.Logger
	DepartmentUsecase contracts.DepartmentUsecase
}

func NewDepartmentController(logger *zap.Logger, departmentUsecase contracts.DepartmentUsecase) *DepartmentController {
	return &DepartmentController{
		Log:               logger,
		DepartmentUsecase: departmentUsecase,
	}
}

func (ctrl *DepartmentController) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateDepartment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.respondError(w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeCreateDepartmentRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		ctrl.respondError(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DepartmentUsecase.CreateDepartment(ctx, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDepartmentSuccessMessage, result)
}

func (ctrl *DepartmentController) GetDepartments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DepartmentUsecase.GetDepartments(ctx)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentsSuccessMessage, result)
}

func (ctrl *DepartmentController) GetDepartmentByID(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("departmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DepartmentUsecase.GetDepartmentByID(ctx, departmentID)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDepartmentSuccessMessage, result)
}

func (ctrl *DepartmentController) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("departmentID"))
		return
	}

	request := new(requests.UpdateDepartment)
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

	result, err := ctrl.DepartmentUsecase.UpdateDepartment(ctx, departmentID, request)
	if err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDepartmentSuccessMessage, result)
}

func (ctrl *DepartmentController) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		ctrl.respondError(w, exceptions.ErrURLParamMissing("departmentID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DepartmentUsecase.DeleteDepartment(ctx, departmentID); err != nil {
		ctrl.respondError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDepartmentSuccessMessage, nil)
}

func (ctrl *DepartmentController) respondError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
