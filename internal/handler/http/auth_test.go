package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/mock"
	"github.com/kvasnikov/go-task-sync/internal/service"
	"github.com/kvasnikov/go-task-sync/internal/store"
	"github.com/kvasnikov/go-task-sync/internal/validators"
	"github.com/kvasnikov/go-task-sync/models"
)

func newAuthHandler(authService service.AuthService) *Handler {
	return &Handler{
		services:  &service.Services{AuthService: authService},
		validator: validators.NewSyncValidator(),
		logger:    logger.Nop(),
	}
}

func TestRegister(t *testing.T) {
	user := models.User{Login: "john", Password: "secret"}

	t.Run("success returns bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authService := mock.NewMockAuthService(ctrl)

		registered := models.User{UserID: 1, Login: "john"}
		authService.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(registered, nil)
		authService.EXPECT().CreateToken(gomock.Any(), registered).
			Return(models.Token{SignedString: "signed-token"}, nil)

		h := newAuthHandler(authService)

		req := httptest.NewRequest(http.MethodPost, "/api/user/register", jsonBody(t, user))
		rr := httptest.NewRecorder()
		h.register(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Bearer signed-token", rr.Header().Get("Authorization"))
	})

	t.Run("malformed json", func(t *testing.T) {
		h := newAuthHandler(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewBufferString("oops"))
		rr := httptest.NewRecorder()
		h.register(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty credentials", func(t *testing.T) {
		h := newAuthHandler(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/user/register", jsonBody(t, models.User{Login: "john"}))
		rr := httptest.NewRecorder()
		h.register(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("duplicate login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authService := mock.NewMockAuthService(ctrl)
		authService.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, store.ErrLoginAlreadyExists)

		h := newAuthHandler(authService)

		req := httptest.NewRequest(http.MethodPost, "/api/user/register", jsonBody(t, user))
		rr := httptest.NewRecorder()
		h.register(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("token creation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authService := mock.NewMockAuthService(ctrl)
		authService.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
		authService.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
			Return(models.Token{}, service.ErrTokenCreationFailed)

		h := newAuthHandler(authService)

		req := httptest.NewRequest(http.MethodPost, "/api/user/register", jsonBody(t, user))
		rr := httptest.NewRecorder()
		h.register(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	user := models.User{Login: "john", Password: "secret"}

	t.Run("success returns bearer token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authService := mock.NewMockAuthService(ctrl)

		found := models.User{UserID: 1, Login: "john"}
		authService.EXPECT().Login(gomock.Any(), gomock.Any()).Return(found, nil)
		authService.EXPECT().CreateToken(gomock.Any(), found).
			Return(models.Token{SignedString: "signed-token"}, nil)

		h := newAuthHandler(authService)

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", jsonBody(t, user))
		rr := httptest.NewRecorder()
		h.login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Bearer signed-token", rr.Header().Get("Authorization"))
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authService := mock.NewMockAuthService(ctrl)
		authService.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.User{}, service.ErrWrongPassword)

		h := newAuthHandler(authService)

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", jsonBody(t, user))
		rr := httptest.NewRecorder()
		h.login(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		authService := mock.NewMockAuthService(ctrl)
		authService.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.User{}, store.ErrNoUserWasFound)

		h := newAuthHandler(authService)

		req := httptest.NewRequest(http.MethodPost, "/api/user/login", jsonBody(t, user))
		rr := httptest.NewRecorder()
		h.login(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
