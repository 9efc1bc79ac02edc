package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, assignment *models.Assignment) (string, error)
	FindByID(ctx context.Context, assignmentID string) (*models.Assignment, error)
	FindActiveByDoctorAndPatient(ctx context.Context, doctorID, patientID string) (*models.Assignment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Assignment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Assignment, error)
	UpdateAssignment(ctx context.Context, assignment *models.Assignment) error
	DeleteByID(ctx context.Context, assignmentID string) error
}

type AssignmentUsecase interface {
	CreateAssignment(ctx context.Context, session *models.Session, request *requests.CreateAssignment) (*responses.Assignment, error)
	GetAssignmentsByDoctor(ctx context.Context, doctorID string) ([]responses.Assignment, error)
	GetAssignmentsByPatient(ctx context.Context, patientID string) ([]responses.Assignment, error)
	DeactivateAssignment(ctx context.Context, assignmentID string) error
	DeleteAssignment(ctx context.Context, assignmentID string) error
}
