package validators

import (
	"context"
	"testing"

	"github.com/kvasnikov/go-task-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func int64Ptr(v int64) *int64 { return &v }
func strPtr(s string) *string { return &s }

func validTask() models.Task {
	return models.Task{
		ID:              "task-1",
		Name:            "Buy groceries",
		Icon:            "cart",
		Done:            false,
		ClientCreatedAt: 1700000000000,
		ClientUpdatedAt: 1700000000000,
	}
}

func validPullRequest() models.PullRequest {
	return models.PullRequest{
		LastPulledAt:  int64Ptr(1700000000000),
		SchemaVersion: 1,
	}
}

// ---------------------------------------------------------------------------
// TestNewSyncValidator
// ---------------------------------------------------------------------------

func TestNewSyncValidator(t *testing.T) {
	v := NewSyncValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("Task value", func(t *testing.T) {
		task := validTask()
		require.NoError(t, v.Validate(ctx, task))
	})

	t.Run("Task pointer", func(t *testing.T) {
		task := validTask()
		require.NoError(t, v.Validate(ctx, &task))
	})

	t.Run("PushRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.PushRequest{}))
	})

	t.Run("PullRequest pointer", func(t *testing.T) {
		request := validPullRequest()
		require.NoError(t, v.Validate(ctx, &request))
	})

	t.Run("User value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.User{Login: "john", Password: "secret"}))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Task
// ---------------------------------------------------------------------------

func TestValidate_Task(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Task)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid task",
			mutate: func(*models.Task) {},
		},
		{
			name:    "empty id",
			mutate:  func(task *models.Task) { task.ID = "" },
			wantErr: ErrInvalidTaskID,
		},
		{
			name:    "blank id",
			mutate:  func(task *models.Task) { task.ID = "   " },
			wantErr: ErrInvalidTaskID,
		},
		{
			name:    "empty name",
			mutate:  func(task *models.Task) { task.Name = "" },
			wantErr: ErrEmptyTaskName,
		},
		{
			name:    "empty icon",
			mutate:  func(task *models.Task) { task.Icon = "" },
			wantErr: ErrEmptyTaskIcon,
		},
		{
			name:    "negative created_at",
			mutate:  func(task *models.Task) { task.ClientCreatedAt = -1 },
			wantErr: ErrInvalidTimestamp,
		},
		{
			name:   "field scoping skips invalid name",
			mutate: func(task *models.Task) { task.Name = "" },
			fields: []string{FieldTaskID},
		},
		{
			name:    "unknown field",
			mutate:  func(*models.Task) {},
			fields:  []string{"no_such_field"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(&task)

			err := v.Validate(ctx, task, tt.fields...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_PushRequest
// ---------------------------------------------------------------------------

func TestValidate_PushRequest(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	t.Run("empty change set is valid", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.PushRequest{}))
	})

	t.Run("valid batch", func(t *testing.T) {
		request := models.PushRequest{
			Changes: models.ChangeSet{
				Tasks: models.TaskChanges{
					Created: []models.Task{validTask()},
					Updated: []models.Task{validTask()},
					Deleted: []string{"task-2"},
				},
			},
			LastPulledAt: int64Ptr(1700000000000),
		}
		require.NoError(t, v.Validate(ctx, request))
	})

	t.Run("invalid created record reports index", func(t *testing.T) {
		bad := validTask()
		bad.Name = ""
		request := models.PushRequest{
			Changes: models.ChangeSet{
				Tasks: models.TaskChanges{
					Created: []models.Task{validTask(), bad},
				},
			},
		}

		err := v.Validate(ctx, request)
		require.ErrorIs(t, err, ErrEmptyTaskName)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("invalid updated record", func(t *testing.T) {
		bad := validTask()
		bad.ID = ""
		request := models.PushRequest{
			Changes: models.ChangeSet{
				Tasks: models.TaskChanges{
					Updated: []models.Task{bad},
				},
			},
		}

		err := v.Validate(ctx, request)
		require.ErrorIs(t, err, ErrInvalidTaskID)
	})

	t.Run("blank deleted id", func(t *testing.T) {
		request := models.PushRequest{
			Changes: models.ChangeSet{
				Tasks: models.TaskChanges{
					Deleted: []string{"task-1", " "},
				},
			},
		}

		err := v.Validate(ctx, request)
		require.ErrorIs(t, err, ErrEmptyDeletedID)
		assert.Contains(t, err.Error(), "index 1")
	})

	t.Run("negative watermark", func(t *testing.T) {
		request := models.PushRequest{LastPulledAt: int64Ptr(-5)}
		err := v.Validate(ctx, request)
		require.ErrorIs(t, err, ErrInvalidWatermark)
	})

	t.Run("nil watermark is a first sync", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.PushRequest{LastPulledAt: nil}))
	})
}

// ---------------------------------------------------------------------------
// TestValidate_PullRequest
// ---------------------------------------------------------------------------

func TestValidate_PullRequest(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.PullRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(*models.PullRequest) {},
		},
		{
			name:   "nil watermark",
			mutate: func(request *models.PullRequest) { request.LastPulledAt = nil },
		},
		{
			name:    "negative watermark",
			mutate:  func(request *models.PullRequest) { request.LastPulledAt = int64Ptr(-1) },
			wantErr: ErrInvalidWatermark,
		},
		{
			name:    "zero schema version",
			mutate:  func(request *models.PullRequest) { request.SchemaVersion = 0 },
			wantErr: ErrInvalidSchemaVersion,
		},
		{
			name:    "negative schema version",
			mutate:  func(request *models.PullRequest) { request.SchemaVersion = -3 },
			wantErr: ErrInvalidSchemaVersion,
		},
		{
			name:   "migration descriptor present",
			mutate: func(request *models.PullRequest) { request.Migration = strPtr(`{"from":1}`) },
		},
		{
			name:    "blank migration descriptor",
			mutate:  func(request *models.PullRequest) { request.Migration = strPtr("  ") },
			wantErr: ErrEmptyMigration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := validPullRequest()
			tt.mutate(&request)

			err := v.Validate(ctx, request)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_User
// ---------------------------------------------------------------------------

func TestValidate_User(t *testing.T) {
	v := NewSyncValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		fields  []string
		wantErr error
	}{
		{
			name: "valid user",
			user: models.User{Login: "john", Password: "secret"},
		},
		{
			name:    "blank login",
			user:    models.User{Login: " ", Password: "secret"},
			wantErr: ErrInvalidLogin,
		},
		{
			name:    "empty password",
			user:    models.User{Login: "john"},
			wantErr: ErrInvalidPassword,
		},
		{
			name:   "login only scoping",
			user:   models.User{Login: "john"},
			fields: []string{FieldLogin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user, tt.fields...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
