package routers

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/delivery/http/middlewares"
	"hospital-service/internal/app/models"
	"hospital-service/internal/app/services/core/appointments"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, ttlInHours int) error {
	args := m.Called(ctx, session, ttlInHours)
	return args.Error(0)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointments(ctx context.Context) ([]responses.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointmentsByPatient(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointmentsByDoctor(ctx context.Context, doctorID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).([]responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Appointment), args.Error(1)
}

func (m *MockAppointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) GetAvailableSlots(ctx context.Context, doctorID, date string) (*responses.AvailableSlots, error) {
	args := m.Called(ctx, doctorID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AvailableSlots), args.Error(1)
}

func (m *MockAppointmentUsecase) GetAvailableDoctors(ctx context.Context, date, startTime string) ([]responses.AvailableDoctor, error) {
	args := m.Called(ctx, date, startTime)
	return args.Get(0).([]responses.AvailableDoctor), args.Error(1)
}

const testJWTSecret = "router-test-secret"

func newAppointmentTestRouter(t *testing.T, usecase *MockAppointmentUsecase, role string) (*chi.Mux, string) {
	t.Helper()

	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = testJWTSecret
	internalConfig.JWT.ExpTimeInHour = 1

	sessionService := new(MockSessionService)
	sessionService.On("GetSession", mock.Anything, "s1").
		Return(&models.Session{SessionID: "s1", UserID: "u1", Username: "jane", Role: role}, nil)

	m := middlewares.New(zap.NewNop(), internalConfig, sessionService)
	controller := appointments.NewAppointmentController(zap.NewNop(), usecase)

	router := chi.NewRouter()
	router.Route("/appointments", func(r chi.Router) {
		attachAppointmentRoutes(r, m, controller)
	})

	token, err := utils.GenerateSessionJWT("s1", testJWTSecret, 1)
	assert.NoError(t, err)
	return router, token
}

func TestAppointmentRoutes_AvailableSlotsQueryParams(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	router, token := newAppointmentTestRouter(t, usecase, constvars.RolePatient)

	usecase.On("GetAvailableSlots", mock.Anything, "64f1b2c3d4e5f6a7b8c9d0e2", "2026-09-07").
		Return(&responses.AvailableSlots{Available: true, TimeSlots: []responses.TimeSlot{}}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/appointments/available-slots?doctorId=64f1b2c3d4e5f6a7b8c9d0e2&date=2026-09-07", nil)
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	usecase.AssertExpectations(t)

	t.Run("missing doctorId is rejected", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/appointments/available-slots?date=2026-09-07", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestAppointmentRoutes_AvailableDoctorsQueryParams(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	router, token := newAppointmentTestRouter(t, usecase, constvars.RolePatient)

	usecase.On("GetAvailableDoctors", mock.Anything, "2026-09-07", "10:00").
		Return([]responses.AvailableDoctor{}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/appointments/available-doctors?date=2026-09-07&time=10:00", nil)
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	usecase.AssertExpectations(t)
}

func TestAppointmentRoutes_StatusUpdateUsesPut(t *testing.T) {
	usecase := new(MockAppointmentUsecase)
	router, token := newAppointmentTestRouter(t, usecase, constvars.RoleAdmin)

	usecase.On("UpdateAppointmentStatus", mock.Anything, "a1", mock.AnythingOfType("*requests.UpdateAppointmentStatus")).
		Return(&responses.Appointment{ID: "a1", Status: constvars.AppointmentStatusConfirmed}, nil)

	body := `{"status":"confirmed"}`

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPut, "/appointments/a1/status", strings.NewReader(body))
	request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	usecase.AssertExpectations(t)

	t.Run("patch is not registered", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPatch, "/appointments/a1/status", strings.NewReader(body))
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}
