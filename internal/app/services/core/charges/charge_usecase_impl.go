package charges

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type chargeUsecase struct {
	ChargeRepository contracts.ChargeRepository
	UserRepository   contracts.UserRepository
	Log              *zap.Logger
}

func NewChargeUsecase(
	chargeRepository contracts.ChargeRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.ChargeUsecase {
	return &chargeUsecase{
		ChargeRepository: chargeRepository,
		UserRepository:   userRepository,
		Log:              logger,
	}
}

func (uc *chargeUsecase) CreateCharge(ctx context.Context, request *requests.CreateCharge) (*responses.Charge, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chargeUsecase.CreateCharge called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", request.PatientID),
	)

	if len(request.Items) == 0 {
		return nil, exceptions.ErrEmptyChargeItems()
	}

	patient, err := uc.UserRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Role != constvars.RolePatient {
		return nil, exceptions.ErrTargetNotPatient()
	}

	items := make([]models.ChargeItem, 0, len(request.Items))
	var total float64
	for _, item := range request.Items {
		items = append(items, models.ChargeItem{
			Description: item.Description,
			Amount:      item.Amount,
		})
		total += item.Amount
	}

	now := time.Now()
	charge := &models.Charge{
		PatientID:     request.PatientID,
		AppointmentID: request.AppointmentID,
		Items:         items,
		Total:         total,
		Status:        constvars.ChargeStatusPending,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	chargeID, err := uc.ChargeRepository.CreateCharge(ctx, charge)
	if err != nil {
		return nil, err
	}
	charge.ID = chargeID
	return buildChargeResponse(charge), nil
}

func (uc *chargeUsecase) GetChargeByID(ctx context.Context, chargeID string) (*responses.Charge, error) {
	charge, err := uc.ChargeRepository.FindByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if charge == nil {
		return nil, exceptions.ErrChargeNotFound(nil)
	}
	return buildChargeResponse(charge), nil
}

func (uc *chargeUsecase) GetChargesByPatient(ctx context.Context, patientID string) ([]responses.Charge, error) {
	charges, err := uc.ChargeRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	result := make([]responses.Charge, 0, len(charges))
	for i := range charges {
		result = append(result, *buildChargeResponse(&charges[i]))
	}
	return result, nil
}

// PayCharge settles a pending charge and stamps it with a receipt number.
func (uc *chargeUsecase) PayCharge(ctx context.Context, chargeID string) (*responses.Charge, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chargeUsecase.PayCharge called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("charge_id", chargeID),
	)

	charge, err := uc.ChargeRepository.FindByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if charge == nil {
		return nil, exceptions.ErrChargeNotFound(nil)
	}
	if charge.Status == constvars.ChargeStatusPaid {
		return nil, exceptions.ErrChargeAlreadyPaid()
	}
	if charge.Status == constvars.ChargeStatusCancelled {
		return nil, exceptions.ErrChargeAlreadyCancelled()
	}

	now := time.Now()
	charge.Status = constvars.ChargeStatusPaid
	charge.ReceiptNumber = utils.GenerateReceiptNumber()
	charge.PaidAt = &now
	charge.UpdatedAt = now
	if err := uc.ChargeRepository.UpdateCharge(ctx, charge); err != nil {
		return nil, err
	}
	return buildChargeResponse(charge), nil
}

func (uc *chargeUsecase) CancelCharge(ctx context.Context, chargeID string) (*responses.Charge, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("chargeUsecase.CancelCharge called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("charge_id", chargeID),
	)

	charge, err := uc.ChargeRepository.FindByID(ctx, chargeID)
	if err != nil {
		return nil, err
	}
	if charge == nil {
		return nil, exceptions.ErrChargeNotFound(nil)
	}
	if charge.Status == constvars.ChargeStatusPaid {
		return nil, exceptions.ErrChargeAlreadyPaid()
	}
	if charge.Status == constvars.ChargeStatusCancelled {
		return nil, exceptions.ErrChargeAlreadyCancelled()
	}

	charge.Status = constvars.ChargeStatusCancelled
	charge.UpdatedAt = time.Now()
	if err := uc.ChargeRepository.UpdateCharge(ctx, charge); err != nil {
		return nil, err
	}
	return buildChargeResponse(charge), nil
}

func buildChargeResponse(charge *models.Charge) *responses.Charge {
	items := make([]responses.ChargeItem, 0, len(charge.Items))
	for _, item := range charge.Items {
		items = append(items, responses.ChargeItem{
			Description: item.Description,
			Amount:      item.Amount,
		})
	}
	return &responses.Charge{
		ID:            charge.ID,
		PatientID:     charge.PatientID,
		AppointmentID: charge.AppointmentID,
		Items:         items,
		Total:         charge.Total,
		Status:        charge.Status,
		ReceiptNumber: charge.ReceiptNumber,
		PaidAt:        charge.PaidAt,
	}
}
