package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvasnikov/go-task-sync/internal/config"
	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	a, err := NewHTTPServerAdapter(config.AgentAdapter{ServerURL: server.URL}, logger.Nop())
	require.NoError(t, err)

	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "scheme added", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "https preserved", raw: "https://sync.example.com", want: "https://sync.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHTTPServerAdapter_Login(t *testing.T) {
	t.Run("stores bearer token from response header", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/user/login", func(w http.ResponseWriter, r *http.Request) {
			var user models.User
			require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
			assert.Equal(t, "alice", user.Login)
			assert.Equal(t, "hunter2", user.Password)

			w.Header().Set("Authorization", "Bearer test-token")
			w.WriteHeader(http.StatusOK)
		})

		a := newTestAdapter(t, mux)

		err := a.Login(context.Background(), models.User{Login: "alice", Password: "hunter2"})

		require.NoError(t, err)
		assert.Equal(t, "test-token", a.Token())
	})

	t.Run("401 maps to unauthorized", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "wrong password", http.StatusUnauthorized)
		}))

		err := a.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Empty(t, a.Token())
	})

	t.Run("missing token header", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		err := a.Login(context.Background(), models.User{Login: "alice", Password: "hunter2"})

		require.Error(t, err)
	})
}

func TestHTTPServerAdapter_Push(t *testing.T) {
	var gotAuth string
	var gotBody models.PushRequest

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/sync/push", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	a := newTestAdapter(t, mux)
	a.SetToken("test-token")

	changes := models.ChangeSet{}
	changes.Tasks.Created = []models.Task{{ID: "task-1", Name: "groceries", Icon: "cart"}}
	watermark := int64(1700000000100)

	err := a.Push(context.Background(), models.PushRequest{Changes: changes, LastPulledAt: &watermark})

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	require.Len(t, gotBody.Changes.Tasks.Created, 1)
	assert.Equal(t, "task-1", gotBody.Changes.Tasks.Created[0].ID)
	require.NotNil(t, gotBody.LastPulledAt)
	assert.Equal(t, watermark, *gotBody.LastPulledAt)
}

func TestHTTPServerAdapter_Pull(t *testing.T) {
	t.Run("decodes change set and watermark", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /api/sync/pull", func(w http.ResponseWriter, r *http.Request) {
			var req models.PullRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 2, req.SchemaVersion)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"changes": {"tasks": {"created": [{"id": "task-1", "name": "groceries", "icon": "cart", "is_done": false, "created_at": 1, "updated_at": 1}], "updated": [], "deleted": []}},
				"timestamp": 1700000000200
			}`))
		})

		a := newTestAdapter(t, mux)
		a.SetToken("test-token")

		response, err := a.Pull(context.Background(), models.PullRequest{SchemaVersion: 2})

		require.NoError(t, err)
		assert.Equal(t, int64(1700000000200), response.Timestamp)
		require.Len(t, response.Changes.Tasks.Created, 1)
		assert.Equal(t, "task-1", response.Changes.Tasks.Created[0].ID)
	})

	t.Run("500 maps to internal server error", func(t *testing.T) {
		a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))

		_, err := a.Pull(context.Background(), models.PullRequest{SchemaVersion: 1})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInternalServerError)
	})
}
