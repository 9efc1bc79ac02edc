package appointments

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

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	UserRepository        contracts.UserRepository
	DepartmentRepository  contracts.DepartmentRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	userRepository contracts.UserRepository,
	departmentRepository contracts.DepartmentRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		UserRepository:        userRepository,
		DepartmentRepository:  departmentRepository,
		Log:                   logger,
	}
}

// CreateAppointment runs the booking admission checks in a fixed order so
// each rejection carries a distinct, stable error. The cheap shape checks
// come first, then the patient-side checks through the one-per-day rule,
// then the doctor-side checks and the department resolution.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("doctor_id", request.DoctorID),
		zap.String("date", request.AppointmentDate),
	)

	startClock, endClock := normalizeRequestedWindow(request.StartTime, request.EndTime, request.AppointmentTime)
	if request.PatientID == "" || request.DoctorID == "" || request.AppointmentDate == "" || startClock == "" {
		return nil, exceptions.ErrAppointmentMissingFields()
	}

	if !utils.IsValidClock(startClock) {
		return nil, exceptions.ErrAppointmentBadTimeFormat(startClock)
	}
	if !utils.IsValidClock(endClock) {
		return nil, exceptions.ErrAppointmentBadTimeFormat(endClock)
	}
	startMinutes, _ := utils.ParseClockToMinutes(startClock)
	endMinutes, _ := utils.ParseClockToMinutes(endClock)
	if endMinutes <= startMinutes {
		return nil, exceptions.ErrAppointmentEndBeforeStart()
	}

	if _, err := primitive.ObjectIDFromHex(request.PatientID); err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}
	if _, err := primitive.ObjectIDFromHex(request.DoctorID); err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}

	startInstant, err := utils.CombineDateTime(request.AppointmentDate, startClock)
	if err != nil {
		return nil, exceptions.ErrAppointmentBadTimeFormat(request.AppointmentDate)
	}
	if startInstant.Before(time.Now()) {
		return nil, exceptions.ErrAppointmentInPast()
	}

	patient, err := uc.UserRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound()
	}
	if patient.Role != constvars.RolePatient {
		return nil, exceptions.ErrTargetNotPatient()
	}

	// Patients book for themselves only. Doctors and admins book on behalf
	// of any patient.
	if session.Role == constvars.RolePatient && session.UserID != request.PatientID {
		return nil, exceptions.ErrSelfBookingOnly()
	}

	patientAppointments, err := uc.AppointmentRepository.FindActiveByPatientAndDate(ctx, request.PatientID, request.AppointmentDate)
	if err != nil {
		return nil, err
	}
	if len(patientAppointments) > 0 {
		conflict := patientAppointments[0]
		conflictStart := conflict.StartTime
		if conflictStart == "" {
			conflictStart = conflict.AppointmentTime
		}
		return nil, exceptions.ErrOnePerDayConflict(conflict.ID, conflict.AppointmentDate, conflictStart, conflict.DoctorID)
	}

	doctor, err := uc.UserRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound()
	}
	if doctor.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrTargetNotDoctor()
	}

	working, _, _, available := workingWindow(doctor, request.AppointmentDate)
	if !available {
		return nil, exceptions.ErrDoctorUnavailable()
	}

	requested := timeWindow{Start: startMinutes, End: endMinutes}
	if requested.Start < working.Start || requested.End > working.End {
		return nil, exceptions.ErrOutsideWorkingHours()
	}

	doctorAppointments, err := uc.AppointmentRepository.FindActiveByDoctorAndDate(ctx, request.DoctorID, request.AppointmentDate)
	if err != nil {
		return nil, err
	}
	for _, booked := range bookedWindows(doctorAppointments) {
		if requested.Overlaps(booked) {
			return nil, exceptions.ErrAppointmentOverlap()
		}
	}

	departmentID := request.Department
	if departmentID != "" {
		department, err := uc.DepartmentRepository.FindByID(ctx, departmentID)
		if err != nil {
			return nil, err
		}
		if department == nil {
			return nil, exceptions.ErrDepartmentNotFound(nil)
		}
	} else {
		departmentID = doctor.DepartmentID
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:       request.PatientID,
		DoctorID:        request.DoctorID,
		DepartmentID:    departmentID,
		AppointmentDate: request.AppointmentDate,
		AppointmentTime: startClock,
		StartTime:       startClock,
		EndTime:         endClock,
		DateTime:        startInstant,
		Symptoms:        request.Symptoms,
		Notes:           request.Notes,
		Status:          constvars.AppointmentStatusScheduled,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context) ([]responses.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.buildAppointmentResponses(ctx, appointments), nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return uc.buildAppointmentResponses(ctx, appointments), nil
}

func (uc *appointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID string) ([]responses.Appointment, error) {
	appointments, err := uc.AppointmentRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return uc.buildAppointmentResponses(ctx, appointments), nil
}

// UpdateAppointmentStatus accepts any of the known statuses without
// enforcing an ordering between them. Front-desk corrections routinely move
// appointments backwards, so a transition table would get in the way.
func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
		zap.String("status", request.Status),
	)

	switch request.Status {
	case constvars.AppointmentStatusScheduled,
		constvars.AppointmentStatusConfirmed,
		constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusCancelled:
	default:
		return nil, exceptions.ErrInvalidAppointmentStatus(request.Status)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, request.Status, request.Notes); err != nil {
		return nil, err
	}
	appointment.Status = request.Status
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("appointment_id", appointmentID),
	)
	return uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
}

func (uc *appointmentUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error) {
	doctor, err := uc.UserRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrTargetNotDoctor()
	}

	working, clockStart, clockEnd, available := workingWindow(doctor, date)
	if !available {
		return &responses.AvailableSlots{
			Available: false,
			Reason:    "Doctor is not available on this day",
			TimeSlots: []responses.TimeSlot{},
		}, nil
	}

	appointments, err := uc.AppointmentRepository.FindActiveByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}

	slots := freeSlots(working, bookedWindows(appointments))
	timeSlots := make([]responses.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		timeSlots = append(timeSlots, responses.TimeSlot{
			StartTime: utils.MinutesToClock(slot.Start),
			EndTime:   utils.MinutesToClock(slot.End),
		})
	}
	return &responses.AvailableSlots{
		Available: true,
		WorkingHours: &responses.WorkingHours{
			StartTime: clockStart,
			EndTime:   clockEnd,
		},
		TimeSlots: timeSlots,
	}, nil
}

// GetAvailableDoctors lists doctors free for a 30-minute slot starting at
// startTime on the given date.
func (uc *appointmentUsecase) GetAvailableDoctors(ctx context.Context, date, startTime string) ([]responses.AvailableDoctor, error) {
	if !utils.IsValidClock(startTime) {
		return nil, exceptions.ErrAppointmentBadTimeFormat(startTime)
	}
	startMinutes, _ := utils.ParseClockToMinutes(startTime)
	requested := timeWindow{Start: startMinutes, End: startMinutes + constvars.SlotDurationInMinutes}

	doctors, err := uc.UserRepository.FindByRole(ctx, constvars.RoleDoctor)
	if err != nil {
		return nil, err
	}

	available := make([]responses.AvailableDoctor, 0)
	for i := range doctors {
		doctor := &doctors[i]
		working, _, _, ok := workingWindow(doctor, date)
		if !ok || requested.Start < working.Start || requested.End > working.End {
			continue
		}

		appointments, err := uc.AppointmentRepository.FindActiveByDoctorAndDate(ctx, doctor.ID, date)
		if err != nil {
			return nil, err
		}
		conflict := false
		for _, booked := range bookedWindows(appointments) {
			if requested.Overlaps(booked) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		available = append(available, responses.AvailableDoctor{
			ID:           doctor.ID,
			Name:         doctor.Name,
			DepartmentID: doctor.DepartmentID,
		})
	}
	return available, nil
}

func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment) *responses.Appointment {
	response := &responses.Appointment{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		DepartmentID:    appointment.DepartmentID,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		StartTime:       appointment.StartTime,
		EndTime:         appointment.EndTime,
		DateTime:        appointment.DateTime,
		Symptoms:        appointment.Symptoms,
		Notes:           appointment.Notes,
		Status:          appointment.Status,
	}
	if response.StartTime == "" {
		response.StartTime = appointment.AppointmentTime
	}
	if response.EndTime == "" {
		if window, ok := effectiveWindow(appointment); ok {
			response.EndTime = utils.MinutesToClock(window.End)
		}
	}

	// Name lookups are best effort; a deleted user leaves the name blank.
	if patient, err := uc.UserRepository.FindByID(ctx, appointment.PatientID); err == nil && patient != nil {
		response.PatientName = patient.Name
	}
	if doctor, err := uc.UserRepository.FindByID(ctx, appointment.DoctorID); err == nil && doctor != nil {
		response.DoctorName = doctor.Name
	}
	return response
}

func (uc *appointmentUsecase) buildAppointmentResponses(ctx context.Context, appointments []models.Appointment) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *uc.buildAppointmentResponse(ctx, &appointments[i]))
	}
	return result
}
