package diagnoses

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

type diagnosisUsecase struct {
	DiagnosisRepository contracts.DiagnosisRepository
	UserRepository      contracts.UserRepository
	Log                 *zap.Logger
}

func NewDiagnosisUsecase(
	diagnosisRepository contracts.DiagnosisRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.DiagnosisUsecase {
	return &diagnosisUsecase{
		DiagnosisRepository: diagnosisRepository,
		UserRepository:      userRepository,
		Log:                 logger,
	}
}

// CreateDiagnosis records a diagnosis authored by the calling doctor.
func (uc *diagnosisUsecase) CreateDiagnosis(ctx context.Context, session *models.Session, request *requests.CreateDiagnosis) (*responses.Diagnosis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("diagnosisUsecase.CreateDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", request.PatientID),
	)

	patient, err := uc.UserRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Role != constvars.RolePatient {
		return nil, exceptions.ErrTargetNotPatient()
	}

	now := time.Now()
	diagnosis := &models.Diagnosis{
		PatientID:     request.PatientID,
		DoctorID:      session.UserID,
		AppointmentID: request.AppointmentID,
		Code:          request.Code,
		Description:   request.Description,
		Prescription:  request.Prescription,
		Notes:         request.Notes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	diagnosisID, err := uc.DiagnosisRepository.CreateDiagnosis(ctx, diagnosis)
	if err != nil {
		return nil, err
	}
	diagnosis.ID = diagnosisID
	return buildDiagnosisResponse(diagnosis), nil
}

func (uc *diagnosisUsecase) GetDiagnosisByID(ctx context.Context, diagnosisID string) (*responses.Diagnosis, error) {
	diagnosis, err := uc.DiagnosisRepository.FindByID(ctx, diagnosisID)
	if err != nil {
		return nil, err
	}
	if diagnosis == nil {
		return nil, exceptions.ErrDiagnosisNotFound(nil)
	}
	return buildDiagnosisResponse(diagnosis), nil
}

func (uc *diagnosisUsecase) GetDiagnosesByPatient(ctx context.Context, patientID string) ([]responses.Diagnosis, error) {
	diagnoses, err := uc.DiagnosisRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return buildDiagnosisResponses(diagnoses), nil
}

func (uc *diagnosisUsecase) GetDiagnosesByDoctor(ctx context.Context, doctorID string) ([]responses.Diagnosis, error) {
	diagnoses, err := uc.DiagnosisRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return buildDiagnosisResponses(diagnoses), nil
}

// UpdateDiagnosis lets the authoring doctor or an admin amend a diagnosis.
func (uc *diagnosisUsecase) UpdateDiagnosis(ctx context.Context, session *models.Session, diagnosisID string, request *requests.UpdateDiagnosis) (*responses.Diagnosis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("diagnosisUsecase.UpdateDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("diagnosis_id", diagnosisID),
	)

	diagnosis, err := uc.DiagnosisRepository.FindByID(ctx, diagnosisID)
	if err != nil {
		return nil, err
	}
	if diagnosis == nil {
		return nil, exceptions.ErrDiagnosisNotFound(nil)
	}
	if session.Role != constvars.RoleAdmin && session.UserID != diagnosis.DoctorID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	if request.Code != "" {
		diagnosis.Code = request.Code
	}
	if request.Description != "" {
		diagnosis.Description = request.Description
	}
	if request.Prescription != "" {
		diagnosis.Prescription = request.Prescription
	}
	if request.Notes != "" {
		diagnosis.Notes = request.Notes
	}
	diagnosis.UpdatedAt = time.Now()

	if err := uc.DiagnosisRepository.UpdateDiagnosis(ctx, diagnosis); err != nil {
		return nil, err
	}
	return buildDiagnosisResponse(diagnosis), nil
}

func (uc *diagnosisUsecase) DeleteDiagnosis(ctx context.Context, diagnosisID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("diagnosisUsecase.DeleteDiagnosis called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("diagnosis_id", diagnosisID),
	)
	return uc.DiagnosisRepository.DeleteByID(ctx, diagnosisID)
}

func buildDiagnosisResponse(diagnosis *models.Diagnosis) *responses.Diagnosis {
	return &responses.Diagnosis{
		ID:            diagnosis.ID,
		PatientID:     diagnosis.PatientID,
		DoctorID:      diagnosis.DoctorID,
		AppointmentID: diagnosis.AppointmentID,
		Code:          diagnosis.Code,
		Description:   diagnosis.Description,
		Prescription:  diagnosis.Prescription,
		Notes:         diagnosis.Notes,
	}
}

func buildDiagnosisResponses(diagnoses []models.Diagnosis) []responses.Diagnosis {
	result := make([]responses.Diagnosis, 0, len(diagnoses))
	for i := range diagnoses {
		result = append(result, *buildDiagnosisResponse(&diagnoses[i]))
	}
	return result
}
