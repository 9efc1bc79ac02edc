package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type LabTestRepository interface {
	CreateLabTest(ctx context.Context, labTest *models.LabTest) (string, error)
	FindByID(ctx context.Context, labTestID string) (*models.LabTest, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.LabTest, error)
	UpdateLabTest(ctx context.Context, labTest *models.LabTest) error
	DeleteByID(ctx context.Context, labTestID string) error
}

type LabTestUsecase interface {
	CreateLabTest(ctx context.Context, session *models.Session, request *requests.CreateLabTest) (*responses.LabTest, error)
	GetLabTestByID(ctx context.Context, labTestID string) (*responses.LabTest, error)
	GetLabTestsByPatient(ctx context.Context, patientID string) ([]responses.LabTest, error)
	RecordResult(ctx context.Context, labTestID string, request *requests.RecordLabTestResult) (*responses.LabTest, error)
	GetReportDownloadURL(ctx context.Context, labTestID string) (*responses.LabTestReport, error)
	DeleteLabTest(ctx context.Context, labTestID string) error
}
