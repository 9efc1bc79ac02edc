package middlewares

import (
	"context"
	"hospital-service/internal/app/config"
	"hospital-service/internal/app/models"
	"hospital-service/internal/pkg/constvars"
	"hospital-service/internal/pkg/exceptions"
	"hospital-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

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

const testJWTSecret = "test-secret"

func newTestMiddlewares(sessionService *MockSessionService) *Middlewares {
	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = testJWTSecret
	internalConfig.JWT.ExpTimeInHour = 1
	return New(zap.NewNop(), internalConfig, sessionService)
}

func sessionCaptureHandler(captured **models.Session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if session, err := utils.SessionFromContext(r.Context()); err == nil {
			*captured = session
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing token is rejected", func(t *testing.T) {
		m := newTestMiddlewares(new(MockSessionService))
		var captured *models.Session

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/profile", nil)
		m.Authenticate(sessionCaptureHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		m := newTestMiddlewares(new(MockSessionService))
		var captured *models.Session

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/profile", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		m.Authenticate(sessionCaptureHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("revoked session is rejected", func(t *testing.T) {
		sessionService := new(MockSessionService)
		sessionService.On("GetSession", mock.Anything, "s1").Return(nil, exceptions.ErrSessionInvalid(nil))
		m := newTestMiddlewares(sessionService)
		var captured *models.Session

		token, err := utils.GenerateSessionJWT("s1", testJWTSecret, 1)
		assert.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/profile", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		m.Authenticate(sessionCaptureHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("valid token attaches session", func(t *testing.T) {
		session := &models.Session{SessionID: "s1", UserID: "u1", Username: "jane", Role: constvars.RolePatient}
		sessionService := new(MockSessionService)
		sessionService.On("GetSession", mock.Anything, "s1").Return(session, nil)
		m := newTestMiddlewares(sessionService)
		var captured *models.Session

		token, err := utils.GenerateSessionJWT("s1", testJWTSecret, 1)
		assert.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/profile", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		m.Authenticate(sessionCaptureHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, session, captured)
	})
}

func TestAuthenticateOptional(t *testing.T) {
	t.Run("anonymous request passes through", func(t *testing.T) {
		m := newTestMiddlewares(new(MockSessionService))
		var captured *models.Session

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/register", nil)
		m.AuthenticateOptional(sessionCaptureHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Nil(t, captured)
	})

	t.Run("valid token attaches session", func(t *testing.T) {
		session := &models.Session{SessionID: "s1", UserID: "u1", Role: constvars.RoleAdmin}
		sessionService := new(MockSessionService)
		sessionService.On("GetSession", mock.Anything, "s1").Return(session, nil)
		m := newTestMiddlewares(sessionService)
		var captured *models.Session

		token, err := utils.GenerateSessionJWT("s1", testJWTSecret, 1)
		assert.NoError(t, err)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/register", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		m.AuthenticateOptional(sessionCaptureHandler(&captured)).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, session, captured)
	})
}

func TestRequireRoles(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	withSession := func(role string) *http.Request {
		request := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		session := &models.Session{SessionID: "s1", UserID: "u1", Role: role}
		ctx := context.WithValue(request.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		return request.WithContext(ctx)
	}

	m := newTestMiddlewares(new(MockSessionService))
	guard := m.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)

	t.Run("allowed role passes", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		guard(next).ServeHTTP(recorder, withSession(constvars.RoleDoctor))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		guard(next).ServeHTTP(recorder, withSession(constvars.RolePatient))
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("no session is rejected", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		guard(next).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
