package dashboard

import (
	"context"
	"hospital-service/internal/app/contracts"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/dto/responses"
	"time"

	"go.uber.org/zap"
)

type dashboardUsecase struct {
	UserRepository        contracts.UserRepository
	DepartmentRepository  contracts.DepartmentRepository
	AppointmentRepository contracts.AppointmentRepository
	ChargeRepository      contracts.ChargeRepository
	Log                   *zap.Logger
}

func NewDashboardUsecase(
	userRepository contracts.UserRepository,
	departmentRepository contracts.DepartmentRepository,
	appointmentRepository contracts.AppointmentRepository,
	chargeRepository contracts.ChargeRepository,
	logger *zap.Logger,
) contracts.DashboardUsecase {
	return &dashboardUsecase{
		UserRepository:        userRepository,
		DepartmentRepository:  departmentRepository,
		AppointmentRepository: appointmentRepository,
		ChargeRepository:      chargeRepository,
		Log:                   logger,
	}
}

func (uc *dashboardUsecase) GetStats(ctx context.Context) (*responses.DashboardStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("dashboardUsecase.GetStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	totalPatients, err := uc.UserRepository.CountByRole(ctx, constvars.RolePatient)
	if err != nil {
		return nil, err
	}
	totalDoctors, err := uc.UserRepository.CountByRole(ctx, constvars.RoleDoctor)
	if err != nil {
		return nil, err
	}
	totalDepartments, err := uc.DepartmentRepository.Count(ctx)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(constvars.DateLayout)
	appointmentsToday, err := uc.AppointmentRepository.CountByDate(ctx, today)
	if err != nil {
		return nil, err
	}
	appointmentsByStatus, err := uc.AppointmentRepository.CountGroupedByStatus(ctx)
	if err != nil {
		return nil, err
	}
	pendingChargesTotal, err := uc.ChargeRepository.SumTotalByStatus(ctx, constvars.ChargeStatusPending)
	if err != nil {
		return nil, err
	}

	return &responses.DashboardStats{
		TotalPatients:        totalPatients,
		TotalDoctors:         totalDoctors,
		TotalDepartments:     totalDepartments,
		AppointmentsToday:    appointmentsToday,
		AppointmentsByStatus: appointmentsByStatus,
		PendingChargesTotal:  pendingChargesTotal,
	}, nil
}
