package labtests

import (
	"context"
	"encoding/base64"
	"fmt"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

type labTestUsecase struct {
	LabTestRepository contracts.LabTestRepository
	UserRepository    contracts.UserRepository
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewLabTestUsecase(
	labTestRepository contracts.LabTestRepository,
	userRepository contracts.UserRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.LabTestUsecase {
	return &labTestUsecase{
		LabTestRepository: labTestRepository,
		UserRepository:    userRepository,
		Storage:           storage,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

func (uc *labTestUsecase) CreateLabTest(ctx context.Context, session *models.Session, request *requests.CreateLabTest) (*responses.LabTest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.CreateLabTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("patient_id", request.PatientID),
		zap.String("test_type", request.TestType),
	)

	patient, err := uc.UserRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.Role != constvars.RolePatient {
		return nil, exceptions.ErrTargetNotPatient()
	}

	now := time.Now()
	labTest := &models.LabTest{
		PatientID:     request.PatientID,
		OrderedBy:     session.UserID,
		AppointmentID: request.AppointmentID,
		TestType:      request.TestType,
		Status:        constvars.LabTestStatusOrdered,
		Notes:         request.Notes,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	labTestID, err := uc.LabTestRepository.CreateLabTest(ctx, labTest)
	if err != nil {
		return nil, err
	}
	labTest.ID = labTestID
	return buildLabTestResponse(labTest), nil
}

func (uc *labTestUsecase) GetLabTestByID(ctx context.Context, labTestID string) (*responses.LabTest, error) {
	labTest, err := uc.LabTestRepository.FindByID(ctx, labTestID)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, exceptions.ErrLabTestNotFound(nil)
	}
	return buildLabTestResponse(labTest), nil
}

func (uc *labTestUsecase) GetLabTestsByPatient(ctx context.Context, patientID string) ([]responses.LabTest, error) {
	labTests, err := uc.LabTestRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	result := make([]responses.LabTest, 0, len(labTests))
	for i := range labTests {
		result = append(result, *buildLabTestResponse(&labTests[i]))
	}
	return result, nil
}

// RecordResult stores the textual result and, when a report file is
// attached, uploads it to object storage before marking the test completed.
func (uc *labTestUsecase) RecordResult(ctx context.Context, labTestID string, request *requests.RecordLabTestResult) (*responses.LabTest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.RecordResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("lab_test_id", labTestID),
	)

	labTest, err := uc.LabTestRepository.FindByID(ctx, labTestID)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, exceptions.ErrLabTestNotFound(nil)
	}

	if request.ReportFile != "" {
		data, err := base64.StdEncoding.DecodeString(request.ReportFile)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		extension := filepath.Ext(request.ReportFileName)
		if extension == "" {
			extension = ".pdf"
		}
		objectName := utils.GenerateObjectName("labreport", labTest.ID, extension)
		if err := uc.Storage.UploadObject(ctx, objectName, data, "application/octet-stream"); err != nil {
			return nil, err
		}
		labTest.ResultObjectName = objectName
	}

	labTest.Result = request.Result
	labTest.Status = constvars.LabTestStatusCompleted
	labTest.UpdatedAt = time.Now()
	if err := uc.LabTestRepository.UpdateLabTest(ctx, labTest); err != nil {
		return nil, err
	}
	return buildLabTestResponse(labTest), nil
}

func (uc *labTestUsecase) GetReportDownloadURL(ctx context.Context, labTestID string) (*responses.LabTestReport, error) {
	labTest, err := uc.LabTestRepository.FindByID(ctx, labTestID)
	if err != nil {
		return nil, err
	}
	if labTest == nil {
		return nil, exceptions.ErrLabTestNotFound(nil)
	}
	if labTest.ResultObjectName == "" {
		return nil, exceptions.ErrLabTestNoReport()
	}

	expiry := time.Duration(uc.InternalConfig.App.ReportPresignedURLExpiryInHours) * time.Hour
	downloadURL, err := uc.Storage.PresignedGetURL(ctx, labTest.ResultObjectName, expiry)
	if err != nil {
		return nil, err
	}
	return &responses.LabTestReport{
		DownloadURL: downloadURL,
		ExpiresIn:   fmt.Sprintf("%dh", uc.InternalConfig.App.ReportPresignedURLExpiryInHours),
	}, nil
}

func (uc *labTestUsecase) DeleteLabTest(ctx context.Context, labTestID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("labTestUsecase.DeleteLabTest called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("lab_test_id", labTestID),
	)
	return uc.LabTestRepository.DeleteByID(ctx, labTestID)
}

func buildLabTestResponse(labTest *models.LabTest) *responses.LabTest {
	return &responses.LabTest{
		ID:            labTest.ID,
		PatientID:     labTest.PatientID,
		OrderedBy:     labTest.OrderedBy,
		AppointmentID: labTest.AppointmentID,
		TestType:      labTest.TestType,
		Status:        labTest.Status,
		Result:        labTest.Result,
		HasReport:     labTest.ResultObjectName != "",
		Notes:         labTest.Notes,
	}
}
