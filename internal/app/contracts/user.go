package contracts

import (
	"context"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/dto/requests"
	"hospital-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
	CountByRole(ctx context.Context, role string) (int64, error)
}

type UserUsecase interface {
	GetUsers(ctx context.Context, roleFilter string) ([]responses.User, error)
	GetUserByID(ctx context.Context, userID string) (*responses.User, error)
	GetProfile(ctx context.Context, session *models.Session) (*responses.User, error)
	UpdateUser(ctx context.Context, session *models.Session, userID string, request *requests.UpdateUser) (*responses.User, error)
	UpdateSchedule(ctx context.Context, session *models.Session, userID string, request *requests.UpdateSchedule) (*responses.User, error)
	DeleteUser(ctx context.Context, userID string) error
	GetDoctors(ctx context.Context) ([]responses.User, error)
	GetPatients(ctx context.Context) ([]responses.User, error)
}
