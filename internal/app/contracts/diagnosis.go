package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type DiagnosisRepository interface {
	CreateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) (string, error)
	FindByID(ctx context.Context, diagnosisID string) (*models.Diagnosis, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Diagnosis, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Diagnosis, error)
	UpdateDiagnosis(ctx context.Context, diagnosis *models.Diagnosis) error
	DeleteByID(ctx context.Context, diagnosisID string) error
}

type DiagnosisUsecase interface {
	CreateDiagnosis(ctx context.Context, session *models.Session, request *requests.CreateDiagnosis) (*responses.Diagnosis, error)
	GetDiagnosisByID(ctx context.Context, diagnosisID string) (*responses.Diagnosis, error)
	GetDiagnosesByPatient(ctx context.Context, patientID string) ([]responses.Diagnosis, error)
	GetDiagnosesByDoctor(ctx context.Context, doctorID string) ([]responses.Diagnosis, error)
	UpdateDiagnosis(ctx context.Context, session *models.Session, diagnosisID string, request *requests.UpdateDiagnosis) (*responses.Diagnosis, error)
	DeleteDiagnosis(ctx context.Context, diagnosisID string) error
}
