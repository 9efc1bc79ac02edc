package appointments

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveByPatientAndDate(ctx context.Context, patientID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, patientID, date)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindActiveByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, doctorID, date)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status, notes string) error {
	args := m.Called(ctx, appointmentID, status, notes)
	return args.Error(0)
}

func (m *MockAppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) CountGroupedByStatus(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]int64), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	args := m.Called(ctx, email, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) CreateDepartment(ctx context.Context, department *models.Department) (string, error) {
	args := m.Called(ctx, department)
	return args.String(0), args.Error(1)
}

func (m *MockDepartmentRepository) FindByID(ctx context.Context, departmentID string) (*models.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByName(ctx context.Context, name string) (*models.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindAll(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Department), args.Error(1)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, department *models.Department) error {
	args := m.Called(ctx, department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) DeleteByID(ctx context.Context, departmentID string) error {
	args := m.Called(ctx, departmentID)
	return args.Error(0)
}

func (m *MockDepartmentRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

const (
	testPatientID = "64f1b2c3d4e5f6a7b8c9d0e1"
	testDoctorID  = "64f1b2c3d4e5f6a7b8c9d0e2"
	testOtherID   = "64f1b2c3d4e5f6a7b8c9d0e3"
)

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format(constvars.DateLayout)
}

func testPatient() *models.User {
	return &models.User{ID: testPatientID, Name: "Pat", Role: constvars.RolePatient}
}

func testDoctor() *models.User {
	return &models.User{ID: testDoctorID, Name: "Doc", Role: constvars.RoleDoctor}
}

func adminSession() *models.Session {
	return &models.Session{SessionID: "s1", UserID: testOtherID, Username: "admin", Role: constvars.RoleAdmin}
}

func newTestUsecase(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepo,
		UserRepository:        userRepo,
		DepartmentRepository:  new(MockDepartmentRepository),
		Log:                   zap.NewNop(),
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	userRepo := new(MockUserRepository)
	uc := newTestUsecase(appointmentRepo, userRepo)

	date := futureDate()
	userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
	userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
	appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).Return([]models.Appointment{}, nil)
	appointmentRepo.On("FindActiveByDoctorAndDate", mock.Anything, testDoctorID, date).Return([]models.Appointment{}, nil)
	appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("a1", nil)

	result, err := uc.CreateAppointment(context.Background(), adminSession(), &requests.CreateAppointment{
		PatientID:       testPatientID,
		DoctorID:        testDoctorID,
		AppointmentDate: date,
		StartTime:       "10:00",
		EndTime:         "10:30",
	})

	assert.NoError(t, err)
	assert.Equal(t, "a1", result.ID)
	assert.Equal(t, constvars.AppointmentStatusScheduled, result.Status)
	assert.Equal(t, "10:00", result.StartTime)
	assert.Equal(t, "10:30", result.EndTime)
	appointmentRepo.AssertExpectations(t)
}

func TestCreateAppointment_LegacyTimeGetsDefaultDuration(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	userRepo := new(MockUserRepository)
	uc := newTestUsecase(appointmentRepo, userRepo)

	date := futureDate()
	userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
	userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
	appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).Return([]models.Appointment{}, nil)
	appointmentRepo.On("FindActiveByDoctorAndDate", mock.Anything, testDoctorID, date).Return([]models.Appointment{}, nil)
	appointmentRepo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
		return a.StartTime == "11:00" && a.EndTime == "11:30" && a.AppointmentTime == "11:00"
	})).Return("a2", nil)

	result, err := uc.CreateAppointment(context.Background(), adminSession(), &requests.CreateAppointment{
		PatientID:       testPatientID,
		DoctorID:        testDoctorID,
		AppointmentDate: date,
		AppointmentTime: "11:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, "11:30", result.EndTime)
	appointmentRepo.AssertExpectations(t)
}

func TestCreateAppointment_PreconditionFailures(t *testing.T) {
	date := futureDate()

	tests := []struct {
		name           string
		request        *requests.CreateAppointment
		session        *models.Session
		setup          func(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "missing required fields",
			request: &requests.CreateAppointment{
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10:00",
			},
			session:        adminSession(),
			expectedStatus: constvars.StatusBadRequest,
		},
		{
			name: "bad time format",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10am",
			},
			session:        adminSession(),
			expectedStatus: constvars.StatusBadRequest,
		},
		{
			name: "end before start",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "11:00",
				EndTime:         "10:00",
			},
			session:        adminSession(),
			expectedStatus: constvars.StatusBadRequest,
		},
		{
			name: "malformed object id",
			request: &requests.CreateAppointment{
				PatientID:       "not-an-id",
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10:00",
			},
			session:        adminSession(),
			expectedStatus: constvars.StatusBadRequest,
		},
		{
			name: "appointment in the past",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: "2020-01-01",
				StartTime:       "10:00",
			},
			session:        adminSession(),
			expectedStatus: constvars.StatusBadRequest,
		},
		{
			name: "target user is not a patient",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10:00",
			},
			session: adminSession(),
			setup: func(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) {
				userRepo.On("FindByID", mock.Anything, testPatientID).Return(&models.User{ID: testPatientID, Role: constvars.RoleDoctor}, nil)
			},
			expectedStatus: constvars.StatusBadRequest,
		},
		{
			name: "target doctor does not exist",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10:00",
			},
			session: adminSession(),
			setup: func(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) {
				userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
				userRepo.On("FindByID", mock.Anything, testDoctorID).Return(nil, nil)
				appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).Return([]models.Appointment{}, nil)
			},
			expectedStatus: constvars.StatusNotFound,
		},
		{
			name: "target patient does not exist",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10:00",
			},
			session: adminSession(),
			setup: func(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) {
				userRepo.On("FindByID", mock.Anything, testPatientID).Return(nil, nil)
			},
			expectedStatus: constvars.StatusNotFound,
		},
		{
			name: "patient booking for someone else",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10:00",
			},
			session: &models.Session{SessionID: "s2", UserID: testOtherID, Role: constvars.RolePatient},
			setup: func(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) {
				userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
				userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
			},
			expectedStatus: constvars.StatusForbidden,
		},
		{
			name: "patient already booked that day",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10:00",
			},
			session: adminSession(),
			setup: func(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) {
				userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
				userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
				appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).
					Return([]models.Appointment{{ID: "existing"}}, nil)
			},
			expectedStatus: constvars.StatusConflict,
		},
		{
			name: "doctor off that day",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10:00",
			},
			session: adminSession(),
			setup: func(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) {
				doctor := testDoctor()
				doctor.Schedule = map[string]models.DaySchedule{}
				for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
					doctor.Schedule[day] = models.DaySchedule{Available: false}
				}
				userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
				userRepo.On("FindByID", mock.Anything, testDoctorID).Return(doctor, nil)
				appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).Return([]models.Appointment{}, nil)
			},
			expectedStatus: constvars.StatusBadRequest,
		},
		{
			name: "outside working hours",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "18:00",
			},
			session: adminSession(),
			setup: func(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) {
				userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
				userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
				appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).Return([]models.Appointment{}, nil)
			},
			expectedStatus: constvars.StatusBadRequest,
		},
		{
			name: "overlapping booking",
			request: &requests.CreateAppointment{
				PatientID:       testPatientID,
				DoctorID:        testDoctorID,
				AppointmentDate: date,
				StartTime:       "10:00",
				EndTime:         "11:00",
			},
			session: adminSession(),
			setup: func(appointmentRepo *MockAppointmentRepository, userRepo *MockUserRepository) {
				userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
				userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
				appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).Return([]models.Appointment{}, nil)
				appointmentRepo.On("FindActiveByDoctorAndDate", mock.Anything, testDoctorID, date).
					Return([]models.Appointment{{StartTime: "10:30", EndTime: "11:00"}}, nil)
			},
			expectedStatus: constvars.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appointmentRepo := new(MockAppointmentRepository)
			userRepo := new(MockUserRepository)
			if tt.setup != nil {
				tt.setup(appointmentRepo, userRepo)
			}
			uc := newTestUsecase(appointmentRepo, userRepo)

			result, err := uc.CreateAppointment(context.Background(), tt.session, tt.request)

			assert.Nil(t, result)
			assert.Error(t, err)
			customErr, ok := err.(*exceptions.CustomError)
			assert.True(t, ok)
			assert.Equal(t, tt.expectedStatus, customErr.StatusCode)
			appointmentRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateAppointment_OnePerDayBeatsDoctorLookup(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	userRepo := new(MockUserRepository)
	uc := newTestUsecase(appointmentRepo, userRepo)

	date := futureDate()
	conflict := models.Appointment{
		ID:              "existing1",
		PatientID:       testPatientID,
		DoctorID:        testOtherID,
		AppointmentDate: date,
		StartTime:       "09:00",
		EndTime:         "09:30",
		Status:          constvars.AppointmentStatusScheduled,
	}
	userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
	appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).
		Return([]models.Appointment{conflict}, nil)

	result, err := uc.CreateAppointment(context.Background(), adminSession(), &requests.CreateAppointment{
		PatientID:       testPatientID,
		DoctorID:        testDoctorID,
		AppointmentDate: date,
		StartTime:       "10:00",
	})

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	// The per-day conflict wins even when the requested doctor would not
	// resolve, and the rejection names the blocking appointment.
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	assert.Contains(t, customErr.ClientMessage, "existing1")
	assert.Contains(t, customErr.ClientMessage, date)
	assert.Contains(t, customErr.ClientMessage, "09:00")
	assert.Contains(t, customErr.ClientMessage, testOtherID)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, testDoctorID)
}

func TestCreateAppointment_UnknownDepartmentRejected(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	userRepo := new(MockUserRepository)
	departmentRepo := new(MockDepartmentRepository)
	uc := &appointmentUsecase{
		AppointmentRepository: appointmentRepo,
		UserRepository:        userRepo,
		DepartmentRepository:  departmentRepo,
		Log:                   zap.NewNop(),
	}

	date := futureDate()
	bogusDepartment := "ffffffffffffffffffffffff"
	userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
	userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
	appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).Return([]models.Appointment{}, nil)
	appointmentRepo.On("FindActiveByDoctorAndDate", mock.Anything, testDoctorID, date).Return([]models.Appointment{}, nil)
	departmentRepo.On("FindByID", mock.Anything, bogusDepartment).Return(nil, nil)

	result, err := uc.CreateAppointment(context.Background(), adminSession(), &requests.CreateAppointment{
		PatientID:       testPatientID,
		DoctorID:        testDoctorID,
		Department:      bogusDepartment,
		AppointmentDate: date,
		StartTime:       "10:00",
	})

	assert.Nil(t, result)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	appointmentRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreateAppointment_ExplicitDepartmentVerified(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	userRepo := new(MockUserRepository)
	departmentRepo := new(MockDepartmentRepository)
	uc := &appointmentUsecase{
		AppointmentRepository: appointmentRepo,
		UserRepository:        userRepo,
		DepartmentRepository:  departmentRepo,
		Log:                   zap.NewNop(),
	}

	date := futureDate()
	departmentID := "64f1b2c3d4e5f6a7b8c9d0f0"
	userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
	userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
	appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).Return([]models.Appointment{}, nil)
	appointmentRepo.On("FindActiveByDoctorAndDate", mock.Anything, testDoctorID, date).Return([]models.Appointment{}, nil)
	departmentRepo.On("FindByID", mock.Anything, departmentID).
		Return(&models.Department{ID: departmentID, Name: "Cardiology"}, nil)
	appointmentRepo.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
		return a.DepartmentID == departmentID
	})).Return("a4", nil)

	result, err := uc.CreateAppointment(context.Background(), adminSession(), &requests.CreateAppointment{
		PatientID:       testPatientID,
		DoctorID:        testDoctorID,
		Department:      departmentID,
		AppointmentDate: date,
		StartTime:       "10:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, departmentID, result.DepartmentID)
	departmentRepo.AssertExpectations(t)
}

func TestCreateAppointment_TouchingWindowsDoNotConflict(t *testing.T) {
	appointmentRepo := new(MockAppointmentRepository)
	userRepo := new(MockUserRepository)
	uc := newTestUsecase(appointmentRepo, userRepo)

	date := futureDate()
	userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
	userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
	appointmentRepo.On("FindActiveByPatientAndDate", mock.Anything, testPatientID, date).Return([]models.Appointment{}, nil)
	appointmentRepo.On("FindActiveByDoctorAndDate", mock.Anything, testDoctorID, date).
		Return([]models.Appointment{{StartTime: "09:30", EndTime: "10:00"}}, nil)
	appointmentRepo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).Return("a3", nil)

	result, err := uc.CreateAppointment(context.Background(), adminSession(), &requests.CreateAppointment{
		PatientID:       testPatientID,
		DoctorID:        testDoctorID,
		AppointmentDate: date,
		StartTime:       "10:00",
		EndTime:         "10:30",
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		uc := newTestUsecase(new(MockAppointmentRepository), new(MockUserRepository))
		result, err := uc.UpdateAppointmentStatus(context.Background(), "a1", &requests.UpdateAppointmentStatus{Status: "archived"})
		assert.Nil(t, result)
		assert.Error(t, err)
	})

	t.Run("allows any transition between known statuses", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := newTestUsecase(appointmentRepo, userRepo)

		appointmentRepo.On("FindByID", mock.Anything, "a1").Return(&models.Appointment{
			ID:        "a1",
			PatientID: testPatientID,
			DoctorID:  testDoctorID,
			StartTime: "10:00",
			EndTime:   "10:30",
			Status:    constvars.AppointmentStatusCompleted,
		}, nil)
		appointmentRepo.On("UpdateStatus", mock.Anything, "a1", constvars.AppointmentStatusScheduled, "").Return(nil)
		userRepo.On("FindByID", mock.Anything, testPatientID).Return(testPatient(), nil)
		userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)

		result, err := uc.UpdateAppointmentStatus(context.Background(), "a1", &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusScheduled,
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusScheduled, result.Status)
	})
}

func TestGetAvailableSlots(t *testing.T) {
	t.Run("unavailable day reports reason with no slots", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := newTestUsecase(appointmentRepo, userRepo)

		doctor := testDoctor()
		doctor.Schedule = map[string]models.DaySchedule{}
		for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
			doctor.Schedule[day] = models.DaySchedule{Available: false}
		}
		userRepo.On("FindByID", mock.Anything, testDoctorID).Return(doctor, nil)

		result, err := uc.GetAvailableSlots(context.Background(), testDoctorID, futureDate())
		assert.NoError(t, err)
		assert.False(t, result.Available)
		assert.NotEmpty(t, result.Reason)
		assert.Empty(t, result.TimeSlots)
	})

	t.Run("booked windows are carved out of the default day", func(t *testing.T) {
		appointmentRepo := new(MockAppointmentRepository)
		userRepo := new(MockUserRepository)
		uc := newTestUsecase(appointmentRepo, userRepo)

		date := futureDate()
		userRepo.On("FindByID", mock.Anything, testDoctorID).Return(testDoctor(), nil)
		appointmentRepo.On("FindActiveByDoctorAndDate", mock.Anything, testDoctorID, date).
			Return([]models.Appointment{{StartTime: "09:00", EndTime: "12:00"}}, nil)

		result, err := uc.GetAvailableSlots(context.Background(), testDoctorID, date)
		assert.NoError(t, err)
		assert.True(t, result.Available)
		assert.Equal(t, "09:00", result.WorkingHours.StartTime)
		assert.Equal(t, "17:00", result.WorkingHours.EndTime)
		// 09:00-17:00 holds 16 half-hour slots; 09:00-12:00 shadows 6.
		assert.Len(t, result.TimeSlots, 10)
		assert.Equal(t, "12:00", result.TimeSlots[0].StartTime)
	})
}
