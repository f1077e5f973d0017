package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrInvalidMigration is returned by Pull when the migration field is
	// present but does not decode into a descriptor.
	ErrInvalidMigration = errors.New("invalid migration descriptor")
)
