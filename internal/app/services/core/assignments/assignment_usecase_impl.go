package assignments

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

type assignmentUsecase struct {
	AssignmentRepository contracts.AssignmentRepository
	UserRepository       contracts.UserRepository
	Log                  *zap.Logger
}

func NewAssignmentUsecase(
	assignmentRepository contracts.AssignmentRepository,
	userRepository contracts.UserRepository,
	logger *zap.Logger,
) contracts.AssignmentUsecase {
	return &assignmentUsecase{
		AssignmentRepository: assignmentRepository,
		UserRepository:       userRepository,
		Log:                  logger,
	}
}

func (uc *assignmentUsecase) CreateAssignment(ctx context.Context, session *models.Session, request *requests.CreateAssignment) (*responses.Assignment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assignmentUsecase.CreateAssignment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", request.DoctorID),
		zap.String("patient_id", request.PatientID),
	)

	doctor, err := uc.UserRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrTargetNotDoctor()
	}

	patient, err := uc.UserRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Role != constvars.RolePatient {
		return nil, exceptions.ErrTargetNotPatient()
	}

	existing, err := uc.AssignmentRepository.FindActiveByDoctorAndPatient(ctx, request.DoctorID, request.PatientID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDuplicateAssignment()
	}

	now := time.Now()
	assignment := &models.Assignment{
		DoctorID:   request.DoctorID,
		PatientID:  request.PatientID,
		AssignedBy: session.UserID,
		Notes:      request.Notes,
		Active:     true,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	assignmentID, err := uc.AssignmentRepository.CreateAssignment(ctx, assignment)
	if err != nil {
		return nil, err
	}
	assignment.ID = assignmentID

	response := buildAssignmentResponse(assignment)
	response.DoctorName = doctor.Name
	response.PatientName = patient.Name
	return response, nil
}

func (uc *assignmentUsecase) GetAssignmentsByDoctor(ctx context.Context, doctorID string) ([]responses.Assignment, error) {
	assignments, err := uc.AssignmentRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return uc.buildAssignmentResponses(ctx, assignments), nil
}

func (uc *assignmentUsecase) GetAssignmentsByPatient(ctx context.Context, patientID string) ([]responses.Assignment, error) {
	assignments, err := uc.AssignmentRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return uc.buildAssignmentResponses(ctx, assignments), nil
}

func (uc *assignmentUsecase) DeactivateAssignment(ctx context.Context, assignmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assignmentUsecase.DeactivateAssignment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("assignment_id", assignmentID),
	)

	assignment, err := uc.AssignmentRepository.FindByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	if assignment == nil {
		return exceptions.ErrAssignmentNotFound(nil)
	}
	assignment.Active = false
	assignment.UpdatedAt = time.Now()
	return uc.AssignmentRepository.UpdateAssignment(ctx, assignment)
}

func (uc *assignmentUsecase) DeleteAssignment(ctx context.Context, assignmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("assignmentUsecase.DeleteAssignment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("assignment_id", assignmentID),
	)
	return uc.AssignmentRepository.DeleteByID(ctx, assignmentID)
}

func (uc *assignmentUsecase) buildAssignmentResponses(ctx context.Context, assignments []models.Assignment) []responses.Assignment {
	result := make([]responses.Assignment, 0, len(assignments))
	for i := range assignments {
		response := buildAssignmentResponse(&assignments[i])
		if doctor, err := uc.UserRepository.FindByID(ctx, response.DoctorID); err == nil && doctor != nil {
			response.DoctorName = doctor.Name
		}
		if patient, err := uc.UserRepository.FindByID(ctx, response.PatientID); err == nil && patient != nil {
			response.PatientName = patient.Name
		}
		result = append(result, *response)
	}
	return result
}

func buildAssignmentResponse(assignment *models.Assignment) *responses.Assignment {
	return &responses.Assignment{
		ID:         assignment.ID,
		DoctorID:   assignment.DoctorID,
		PatientID:  assignment.PatientID,
		AssignedBy: assignment.AssignedBy,
		Notes:      assignment.Notes,
		Active:     assignment.Active,
	}
}
