package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/mock"
	"github.com/kvasnikov/go-task-sync/internal/service"
	"github.com/kvasnikov/go-task-sync/internal/validators"
	"github.com/kvasnikov/go-task-sync/models"
)

func newRouterWithServices(t *testing.T) (*mock.MockAuthService, *mock.MockSyncService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	authService := mock.NewMockAuthService(ctrl)
	syncService := mock.NewMockSyncService(ctrl)

	h := &Handler{
		services:  &service.Services{AuthService: authService, SyncService: syncService},
		validator: validators.NewSyncValidator(),
		logger:    logger.Nop(),
	}

	return authService, syncService, h.Init()
}

func TestRoutes(t *testing.T) {
	t.Run("register is reachable without a token", func(t *testing.T) {
		authService, _, router := newRouterWithServices(t)

		authService.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
		authService.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
			Return(models.Token{SignedString: "signed"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/user/register",
			strings.NewReader(`{"login":"john","password":"secret"}`))

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))
	})

	t.Run("sync routes reject missing token", func(t *testing.T) {
		_, _, router := newRouterWithServices(t)

		for _, path := range []string{"/api/sync/push", "/api/sync/pull"} {
			req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code, path)
		}
	})

	t.Run("authenticated pull flows through", func(t *testing.T) {
		authService, syncService, router := newRouterWithServices(t)

		authService.EXPECT().ParseToken(gomock.Any(), "good").
			Return(models.Token{UserID: 3}, nil)
		syncService.EXPECT().Pull(gomock.Any(), int64(3), gomock.Any()).
			Return(models.PullResponse{Timestamp: 1700000000000}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/sync/pull",
			strings.NewReader(`{"lastPulledAt":null,"schemaVersion":1}`))
		req.Header.Set("Authorization", "Bearer good")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("wrong method yields not found", func(t *testing.T) {
		_, _, router := newRouterWithServices(t)

		req := httptest.NewRequest(http.MethodGet, "/api/user/register", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unknown path yields not found", func(t *testing.T) {
		_, _, router := newRouterWithServices(t)

		req := httptest.NewRequest(http.MethodPost, "/api/unknown", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
