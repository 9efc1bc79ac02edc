package users

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

type userUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewUserUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *userUsecase) GetUsers(ctx context.Context, roleFilter string) ([]responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.GetUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role_filter", roleFilter),
	)

	var (
		users []models.User
		err   error
	)
	if roleFilter != "" {
		users, err = uc.UserRepository.FindByRole(ctx, roleFilter)
	} else {
		users, err = uc.UserRepository.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return buildUserResponses(users), nil
}

func (uc *userUsecase) GetUserByID(ctx context.Context, userID string) (*responses.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	response := buildUserResponse(user)
	return &response, nil
}

func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.User, error) {
	return uc.GetUserByID(ctx, session.UserID)
}

func (uc *userUsecase) UpdateUser(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)

	if session.Role != constvars.RoleAdmin && session.UserID != userID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Email != "" {
		user.Email = request.Email
	}
	if request.Phone != "" {
		user.Phone = request.Phone
	}
	if request.DepartmentID != "" {
		user.DepartmentID = request.DepartmentID
	}
	user.UpdatedAt = time.Now()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	response := buildUserResponse(user)
	return &response, nil
}

func (uc *userUsecase) UpdateSchedule(ctx context.Context, session *models.Session, userID string, request *requests.UpdateSchedule) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.UpdateSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)

	if session.Role != constvars.RoleAdmin && session.UserID != userID {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotFound(nil)
	}
	if user.Role != constvars.RoleDoctor {
		return nil, exceptions.ErrTargetNotDoctor()
	}

	schedule := make(map[string]models.DaySchedule, len(request.Schedule))
	for day, window := range request.Schedule {
		if !isWeekdayKey(day) {
			return nil, exceptions.ErrInvalidWorkingHours(day)
		}
		if window.Available {
			startMinutes, err := utils.ParseClockToMinutes(window.StartTime)
			if err != nil {
				return nil, exceptions.ErrInvalidWorkingHours(day)
			}
			endMinutes, err := utils.ParseClockToMinutes(window.EndTime)
			if err != nil {
				return nil, exceptions.ErrInvalidWorkingHours(day)
			}
			if endMinutes <= startMinutes {
				return nil, exceptions.ErrInvalidWorkingHours(day)
			}
		}
		schedule[day] = models.DaySchedule{
			Available: window.Available,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
		}
	}

	user.Schedule = schedule
	user.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	response := buildUserResponse(user)
	return &response, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotFound(nil)
	}
	return uc.UserRepository.DeleteByID(ctx, userID)
}

func (uc *userUsecase) GetDoctors(ctx context.Context) ([]responses.User, error) {
	users, err := uc.UserRepository.FindByRole(ctx, constvars.RoleDoctor)
	if err != nil {
		return nil, err
	}
	return buildUserResponses(users), nil
}

func (uc *userUsecase) GetPatients(ctx context.Context) ([]responses.User, error) {
	users, err := uc.UserRepository.FindByRole(ctx, constvars.RolePatient)
	if err != nil {
		return nil, err
	}
	return buildUserResponses(users), nil
}

func isWeekdayKey(day string) bool {
	switch day {
	case "sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday":
		return true
	}
	return false
}

func buildUserResponse(user *models.User) responses.User {
	response := responses.User{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Username:     user.Username,
		Role:         user.Role,
		Phone:        user.Phone,
		DepartmentID: user.DepartmentID,
	}
	if len(user.Schedule) > 0 {
		response.Schedule = make(map[string]responses.DaySchedule, len(user.Schedule))
		for day, window := range user.Schedule {
			response.Schedule[day] = responses.DaySchedule{
				Available: window.Available,
				StartTime: window.StartTime,
				EndTime:   window.EndTime,
			}
		}
	}
	return response
}

func buildUserResponses(users []models.User) []responses.User {
	out := make([]responses.User, 0, len(users))
	for i := range users {
		out = append(out, buildUserResponse(&users[i]))
	}
	return out
}
