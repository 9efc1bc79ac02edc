package auth

import (
	"context"
	"fmt"
	"hospital-service/internal/app/config"
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

const resetTokenKeyPrefix = "reset-token:"

type authUsecase struct {
	UserRepository  contracts.UserRepository
	SessionService  contracts.SessionService
	RedisRepository contracts.RedisRepository
	MailerService   contracts.MailerService
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	redisRepository contracts.RedisRepository,
	mailerService contracts.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		SessionService:  sessionService,
		RedisRepository: redisRepository,
		MailerService:   mailerService,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, caller *models.Session, request *requests.Register) (*responses.Register, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("role", request.Role),
	)

	// Creating an admin account needs an authenticated admin caller.
	if request.Role == constvars.RoleAdmin {
		if caller == nil || caller.Role != constvars.RoleAdmin {
			return nil, exceptions.ErrRoleNotAllowed(nil)
		}
	}

	existing, err := uc.UserRepository.FindByEmailOrUsername(ctx, request.Email, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Email == request.Email {
			return nil, exceptions.ErrEmailAlreadyExist(nil)
		}
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := time.Now()
	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Username: request.Username,
		Password: hashedPassword,
		Role:     request.Role,
		Phone:    request.Phone,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("user_id", userID),
	)
	return &responses.Register{UserID: userID}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Username:  user.Username,
		Role:      user.Role,
	}
	if err := uc.SessionService.CreateSession(ctx, session, uc.InternalConfig.App.SessionExpiredTimeInHours); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token: token,
		User: responses.User{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Username:     user.Username,
			Role:         user.Role,
			DepartmentID: user.DepartmentID,
		},
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user == nil {
		// Do not reveal whether the email is registered.
		return nil
	}

	resetToken := utils.GenerateResetToken()
	ttlInSeconds := uc.InternalConfig.App.ResetTokenExpiredTimeInMinutes * 60
	if err := uc.RedisRepository.Set(ctx, resetTokenKeyPrefix+resetToken, user.ID, ttlInSeconds); err != nil {
		return err
	}

	job := &models.EmailJob{
		To:      user.Email,
		Subject: "Reset your password",
		Body: fmt.Sprintf(
			"Hello %s,\n\nUse the link below to reset your password. It expires in %d minutes.\n\n%s?token=%s\n",
			user.Name,
			uc.InternalConfig.App.ResetTokenExpiredTimeInMinutes,
			uc.InternalConfig.App.ResetPasswordURL,
			resetToken,
		),
	}
	if err := uc.MailerService.PublishEmailJob(ctx, job); err != nil {
		uc.Log.Error("authUsecase.ForgotPassword failed to publish email job",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *authUsecase) ResetPassword(ctx context.Context, request *requests.ResetPassword) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	userID, err := uc.RedisRepository.Get(ctx, resetTokenKeyPrefix+request.Token)
	if err != nil {
		return exceptions.ErrResetTokenExpired(err)
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotFound(nil)
	}

	hashedPassword, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}
	user.Password = hashedPassword
	user.UpdatedAt = time.Now()
	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	return uc.RedisRepository.Delete(ctx, resetTokenKeyPrefix+request.Token)
}
