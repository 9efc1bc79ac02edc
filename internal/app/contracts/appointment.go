package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	// FindActiveByPatientAndDate returns scheduled/confirmed appointments the
	// patient holds on the given calendar date, any doctor.
	FindActiveByPatientAndDate(ctx context.Context, patientID, date string) ([]models.Appointment, error)
	// FindActiveByDoctorAndDate returns scheduled/confirmed appointments for
	// the doctor on the given calendar date.
	FindActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status, notes string) error
	DeleteByID(ctx context.Context, appointmentID string) error
	CountByDate(ctx context.Context, date string) (int64, error)
	CountGroupedByStatus(ctx context.Context) (map[string]int64, error)
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error)
	GetAppointments(ctx context.Context) ([]responses.Appointment, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	GetAppointmentsByPatient(ctx context.Context, patientID string) ([]responses.Appointment, error)
	GetAppointmentsByDoctor(ctx context.Context, doctorID string) ([]responses.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	DeleteAppointment(ctx context.Context, appointmentID string) error
	GetAvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error)
	GetAvailableDoctors(ctx context.Context, date, startTime string) ([]responses.AvailableDoctor, error)
}
