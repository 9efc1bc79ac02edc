package labtests

import (
	"context"
	"encoding/base64"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockLabTestRepository struct {
	mock.Mock
}

func (m *MockLabTestRepository) CreateLabTest(ctx context.Context, labTest *models.LabTest) (string, error) {
	args := m.Called(ctx, labTest)
	return args.String(0), args.Error(1)
}

func (m *MockLabTestRepository) FindByID(ctx context.Context, labTestID string) (*models.LabTest, error) {
	args := m.Called(ctx, labTestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LabTest), args.Error(1)
}

func (m *MockLabTestRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.LabTest, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]models.LabTest), args.Error(1)
}

func (m *MockLabTestRepository) UpdateLabTest(ctx context.Context, labTest *models.LabTest) error {
	args := m.Called(ctx, labTest)
	return args.Error(0)
}

func (m *MockLabTestRepository) DeleteByID(ctx context.Context, labTestID string) error {
	args := m.Called(ctx, labTestID)
	return args.Error(0)
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

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, objectName string, data []byte, contentType string) error {
	args := m.Called(ctx, objectName, data, contentType)
	return args.Error(0)
}

func (m *MockStorage) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, objectName, expiry)
	return args.String(0), args.Error(1)
}

func newTestLabTestUsecase(labTestRepo *MockLabTestRepository, userRepo *MockUserRepository, storage *MockStorage) *labTestUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.ReportPresignedURLExpiryInHours = 24
	return &labTestUsecase{
		LabTestRepository: labTestRepo,
		UserRepository:    userRepo,
		Storage:           storage,
		InternalConfig:    internalConfig,
		Log:               zap.NewNop(),
	}
}

func TestCreateLabTest(t *testing.T) {
	labTestRepo := new(MockLabTestRepository)
	userRepo := new(MockUserRepository)
	uc := newTestLabTestUsecase(labTestRepo, userRepo, new(MockStorage))

	userRepo.On("FindByID", mock.Anything, "p1").
		Return(&models.User{ID: "p1", Role: constvars.RolePatient}, nil)
	labTestRepo.On("CreateLabTest", mock.Anything, mock.MatchedBy(func(lt *models.LabTest) bool {
		return lt.OrderedBy == "d1" && lt.Status == constvars.LabTestStatusOrdered
	})).Return("lt1", nil)

	session := &models.Session{SessionID: "s1", UserID: "d1", Role: constvars.RoleDoctor}
	result, err := uc.CreateLabTest(context.Background(), session, &requests.CreateLabTest{
		PatientID: "p1",
		TestType:  "CBC",
	})

	assert.NoError(t, err)
	assert.Equal(t, "lt1", result.ID)
	assert.Equal(t, constvars.LabTestStatusOrdered, result.Status)
	labTestRepo.AssertExpectations(t)
}

func TestRecordResult(t *testing.T) {
	t.Run("report file is uploaded and test completed", func(t *testing.T) {
		labTestRepo := new(MockLabTestRepository)
		storage := new(MockStorage)
		uc := newTestLabTestUsecase(labTestRepo, new(MockUserRepository), storage)

		payload := []byte("report-bytes")
		labTestRepo.On("FindByID", mock.Anything, "lt1").
			Return(&models.LabTest{ID: "lt1", PatientID: "p1", Status: constvars.LabTestStatusOrdered}, nil)
		storage.On("UploadObject", mock.Anything, mock.AnythingOfType("string"), payload, "application/octet-stream").Return(nil)
		labTestRepo.On("UpdateLabTest", mock.Anything, mock.MatchedBy(func(lt *models.LabTest) bool {
			return lt.Status == constvars.LabTestStatusCompleted && lt.ResultObjectName != ""
		})).Return(nil)

		result, err := uc.RecordResult(context.Background(), "lt1", &requests.RecordLabTestResult{
			Result:         "within range",
			ReportFile:     base64.StdEncoding.EncodeToString(payload),
			ReportFileName: "report.pdf",
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.LabTestStatusCompleted, result.Status)
		assert.True(t, result.HasReport)
		storage.AssertExpectations(t)
	})

	t.Run("malformed base64 is rejected", func(t *testing.T) {
		labTestRepo := new(MockLabTestRepository)
		uc := newTestLabTestUsecase(labTestRepo, new(MockUserRepository), new(MockStorage))

		labTestRepo.On("FindByID", mock.Anything, "lt1").
			Return(&models.LabTest{ID: "lt1", Status: constvars.LabTestStatusOrdered}, nil)

		result, err := uc.RecordResult(context.Background(), "lt1", &requests.RecordLabTestResult{
			Result:     "within range",
			ReportFile: "%%%not-base64%%%",
		})

		assert.Nil(t, result)
		assert.Error(t, err)
		labTestRepo.AssertNotCalled(t, "UpdateLabTest", mock.Anything, mock.Anything)
	})
}

func TestGetReportDownloadURL(t *testing.T) {
	t.Run("no stored report", func(t *testing.T) {
		labTestRepo := new(MockLabTestRepository)
		uc := newTestLabTestUsecase(labTestRepo, new(MockUserRepository), new(MockStorage))

		labTestRepo.On("FindByID", mock.Anything, "lt1").
			Return(&models.LabTest{ID: "lt1", Status: constvars.LabTestStatusCompleted}, nil)

		result, err := uc.GetReportDownloadURL(context.Background(), "lt1")
		assert.Nil(t, result)
		assert.Error(t, err)
	})

	t.Run("presigns the stored object", func(t *testing.T) {
		labTestRepo := new(MockLabTestRepository)
		storage := new(MockStorage)
		uc := newTestLabTestUsecase(labTestRepo, new(MockUserRepository), storage)

		labTestRepo.On("FindByID", mock.Anything, "lt1").
			Return(&models.LabTest{ID: "lt1", ResultObjectName: "labreport/lt1.pdf"}, nil)
		storage.On("PresignedGetURL", mock.Anything, "labreport/lt1.pdf", 24*time.Hour).
			Return("https://storage.local/labreport/lt1.pdf?sig=abc", nil)

		result, err := uc.GetReportDownloadURL(context.Background(), "lt1")
		assert.NoError(t, err)
		assert.Equal(t, "https://storage.local/labreport/lt1.pdf?sig=abc", result.DownloadURL)
	})
}
