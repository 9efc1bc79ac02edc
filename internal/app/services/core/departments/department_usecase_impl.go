package departments

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type departmentUsecase struct {
	DepartmentRepository contracts.DepartmentRepository
	Log                  *zap.Logger
}

func NewDepartmentUsecase(departmentRepository contracts.DepartmentRepository, logger *zap.Logger) contracts.DepartmentUsecase {
	return &departmentUsecase{
		DepartmentRepository: departmentRepository,
		Log:                  logger,
	}
}

func (uc *departmentUsecase) CreateDepartment(ctx context.Context, request *requests.CreateDepartment) (*responses.Department, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.CreateDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("name", request.Name),
	)

	existing, err := uc.DepartmentRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDepartmentNameTaken()
	}

	now := time.Now()
	department := &models.Department{
		Name:        request.Name,
		Description: request.Description,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	departmentID, err := uc.DepartmentRepository.CreateDepartment(ctx, department)
	if err != nil {
		return nil, err
	}
	department.ID = departmentID

	return buildDepartmentResponse(department), nil
}

func (uc *departmentUsecase) GetDepartments(ctx context.Context) ([]responses.Department, error) {
	departments, err := uc.DepartmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Department, 0, len(departments))
	for i := range departments {
		result = append(result, *buildDepartmentResponse(&departments[i]))
	}
	return result, nil
}

func (uc *departmentUsecase) GetDepartmentByID(ctx context.Context, departmentID string) (*responses.Department, error) {
	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}
	return buildDepartmentResponse(department), nil
}

func (uc *departmentUsecase) UpdateDepartment(ctx context.Context, departmentID string, request *requests.UpdateDepartment) (*responses.Department, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.UpdateDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("department_id", departmentID),
	)

	department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, exceptions.ErrDepartmentNotFound(nil)
	}

	if request.Name != "" && request.Name != department.Name {
		existing, err := uc.DepartmentRepository.FindByName(ctx, request.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrDepartmentNameTaken()
		}
		department.Name = request.Name
	}
	if request.Description != "" {
		department.Description = request.Description
	}
	department.UpdatedAt = time.Now()

	if err := uc.DepartmentRepository.UpdateDepartment(ctx, department); err != nil {
		return nil, err
	}
	return buildDepartmentResponse(department), nil
}

func (uc *departmentUsecase) DeleteDepartment(ctx context.Context, departmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("departmentUsecase.DeleteDepartment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("department_id", departmentID),
	)
	return uc.DepartmentRepository.DeleteByID(ctx, departmentID)
}

func buildDepartmentResponse(department *models.Department) *responses.Department {
	return &responses.Department{
		ID:          department.ID,
		Name:        department.Name,
		Description: department.Description,
	}
}
