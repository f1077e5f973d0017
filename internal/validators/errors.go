package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidTaskID        = errors.New("invalid task id")
	ErrEmptyTaskName        = errors.New("task name is required")
	ErrEmptyTaskIcon        = errors.New("task icon is required")
	ErrInvalidTimestamp     = errors.New("invalid timestamp")
	ErrInvalidWatermark     = errors.New("invalid last pulled at watermark")
	ErrInvalidSchemaVersion = errors.New("invalid schema version")
	ErrEmptyMigration       = errors.New("migration descriptor cannot be empty")
	ErrEmptyDeletedID       = errors.New("deleted ids cannot be empty strings")
	ErrInvalidLogin         = errors.New("invalid login")
	ErrInvalidPassword      = errors.New("invalid password")
)
