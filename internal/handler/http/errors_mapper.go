package http

import (
	"errors"
	"net/http"

	"github.com/kvasnikov/go-task-sync/internal/service"
	"github.com/kvasnikov/go-task-sync/internal/store"
	"github.com/kvasnikov/go-task-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidMigration:        http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	validators.ErrInvalidTaskID:        http.StatusBadRequest,
	validators.ErrEmptyTaskName:        http.StatusBadRequest,
	validators.ErrEmptyTaskIcon:        http.StatusBadRequest,
	validators.ErrInvalidTimestamp:     http.StatusBadRequest,
	validators.ErrInvalidWatermark:     http.StatusBadRequest,
	validators.ErrInvalidSchemaVersion: http.StatusBadRequest,
	validators.ErrEmptyMigration:       http.StatusBadRequest,
	validators.ErrEmptyDeletedID:       http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrTaskNotFound:       http.StatusNotFound,
	store.ErrDuplicateTask:      http.StatusConflict,
	store.ErrTaskNotSaved:       http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
