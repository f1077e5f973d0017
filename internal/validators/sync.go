package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/kvasnikov/go-task-sync/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldTaskID targets the client-generated unique identifier of a task.
	FieldTaskID = "task_id"

	// FieldTaskName targets the display name of a task.
	FieldTaskName = "task_name"

	// FieldTaskIcon targets the icon identifier of a task.
	FieldTaskIcon = "task_icon"

	// FieldTaskTimestamps targets the client-side created_at and
	// updated_at bookkeeping timestamps of a task.
	FieldTaskTimestamps = "task_timestamps"

	// FieldChanges targets the batched created/updated/deleted sets
	// of a push request.
	FieldChanges = "changes"

	// FieldLastPulledAt targets the watermark field of a push or pull request.
	FieldLastPulledAt = "last_pulled_at"

	// FieldSchemaVersion targets the client schema version of a pull request.
	FieldSchemaVersion = "schema_version"

	// FieldMigration targets the serialized migration descriptor
	// of a pull request.
	FieldMigration = "migration"

	// FieldLogin targets the login identifier of a user payload.
	FieldLogin = "login"

	// FieldPassword targets the plaintext password of an inbound
	// register or login payload.
	FieldPassword = "password"
)

// SyncValidator implements the Validator interface for the sync and
// authentication request models: Task, PushRequest, PullRequest and User.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type SyncValidator struct {
}

// NewSyncValidator constructs a new SyncValidator
// and returns it as the Validator interface.
func NewSyncValidator() Validator {
	return &SyncValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Task / *models.Task
//   - models.PushRequest / *models.PushRequest
//   - models.PullRequest / *models.PullRequest
//   - models.User / *models.User
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *SyncValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Task:
		return v.validateTask(ctx, value, fields...)
	case *models.Task:
		return v.validateTask(ctx, *value, fields...)

	case models.PushRequest:
		return v.validatePushRequest(ctx, value, fields...)
	case *models.PushRequest:
		return v.validatePushRequest(ctx, *value, fields...)

	case models.PullRequest:
		return v.validatePullRequest(ctx, value, fields...)
	case *models.PullRequest:
		return v.validatePullRequest(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateTask validates a single Task model.
//
// Default validated fields (when none specified):
// TaskID, TaskName, TaskIcon, TaskTimestamps.
//
// Returns the first encountered validation error or nil.
func (v *SyncValidator) validateTask(_ context.Context, task models.Task, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTaskID, FieldTaskName, FieldTaskIcon, FieldTaskTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldTaskID:
			if strings.TrimSpace(task.ID) == "" {
				return ErrInvalidTaskID
			}
		case FieldTaskName:
			if task.Name == "" {
				return ErrEmptyTaskName
			}
		case FieldTaskIcon:
			if task.Icon == "" {
				return ErrEmptyTaskIcon
			}
		case FieldTaskTimestamps:
			if task.ClientCreatedAt < 0 || task.ClientUpdatedAt < 0 {
				return ErrInvalidTimestamp
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePushRequest validates a PushRequest, which carries the client's
// batched local mutations.
//
// Default validated fields: Changes, LastPulledAt.
//
// When FieldChanges is validated, each record in the created and updated
// sets is individually checked with validateTask and each deleted id is
// checked for non-emptiness. An empty change set is valid: push is
// idempotent and a no-op batch succeeds trivially.
//
// Returns a wrapped error indicating the index of the first invalid record.
func (v *SyncValidator) validatePushRequest(ctx context.Context, request models.PushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldLastPulledAt}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			for i, task := range request.Changes.Tasks.Created {
				if err := v.validateTask(ctx, task); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
			for i, task := range request.Changes.Tasks.Updated {
				if err := v.validateTask(ctx, task); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
			for i, id := range request.Changes.Tasks.Deleted {
				if strings.TrimSpace(id) == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyDeletedID)
				}
			}
		case FieldLastPulledAt:
			if request.LastPulledAt != nil && *request.LastPulledAt < 0 {
				return ErrInvalidWatermark
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePullRequest validates a PullRequest.
//
// Default validated fields: LastPulledAt, SchemaVersion, Migration.
//
// A nil LastPulledAt means "full sync, beginning of time" and is valid.
// A nil Migration is valid; a present but blank one is not, since the
// service needs at least a JSON object to decode.
func (v *SyncValidator) validatePullRequest(_ context.Context, request models.PullRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLastPulledAt, FieldSchemaVersion, FieldMigration}
	}

	for _, f := range fields {
		switch f {
		case FieldLastPulledAt:
			if request.LastPulledAt != nil && *request.LastPulledAt < 0 {
				return ErrInvalidWatermark
			}
		case FieldSchemaVersion:
			if request.SchemaVersion <= 0 {
				return ErrInvalidSchemaVersion
			}
		case FieldMigration:
			if request.Migration != nil && strings.TrimSpace(*request.Migration) == "" {
				return ErrEmptyMigration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser validates a User payload as received by the register and
// login endpoints.
//
// Default validated fields: Login, Password.
func (v *SyncValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if strings.TrimSpace(user.Login) == "" {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
