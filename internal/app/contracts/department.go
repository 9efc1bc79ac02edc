package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, department *models.Department) (string, error)
	FindByID(ctx context.Context, departmentID string) (*models.Department, error)
	FindByName(ctx context.Context, name string) (*models.Department, error)
	FindAll(ctx context.Context) ([]models.Department, error)
	UpdateDepartment(ctx context.Context, department *models.Department) error
	DeleteByID(ctx context.Context, departmentID string) error
	Count(ctx context.Context) (int64, error)
}

type DepartmentUsecase interface {
	CreateDepartment(ctx context.Context, request *requests.CreateDepartment) (*responses.Department, error)
	GetDepartments(ctx context.Context) ([]responses.Department, error)
	GetDepartmentByID(ctx context.Context, departmentID string) (*responses.Department, error)
	UpdateDepartment(ctx context.Context, departmentID string, request *requests.UpdateDepartment) (*responses.Department, error)
	DeleteDepartment(ctx context.Context, departmentID string) error
}
