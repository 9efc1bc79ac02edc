package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type ChargeRepository interface {
	CreateCharge(ctx context.Context, charge *models.Charge) (string, error)
	FindByID(ctx context.Context, chargeID string) (*models.Charge, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Charge, error)
	UpdateCharge(ctx context.Context, charge *models.Charge) error
	SumTotalByStatus(ctx context.Context, status string) (float64, error)
}

type ChargeUsecase interface {
	CreateCharge(ctx context.Context, request *requests.CreateCharge) (*responses.Charge, error)
	GetChargeByID(ctx context.Context, chargeID string) (*responses.Charge, error)
	GetChargesByPatient(ctx context.Context, patientID string) ([]responses.Charge, error)
	PayCharge(ctx context.Context, chargeID string) (*responses.Charge, error)
	CancelCharge(ctx context.Context, chargeID string) (*responses.Charge, error)
}
