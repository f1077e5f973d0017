package http

import (
	"encoding/json"
	"net/http"

	"github.com/kvasnikov/go-task-sync/internal/app"
	"github.com/kvasnikov/go-task-sync/internal/logger"
	"github.com/kvasnikov/go-task-sync/internal/utils"
	"github.com/kvasnikov/go-task-sync/models"
)

func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.push").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserID, http.StatusUnauthorized)
		return
	}

	var pushRequest models.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("invalid push payload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.SyncService.Push(ctx, userID, pushRequest); err != nil {
		log.Err(err).Str("func", "*Handler.push").Msg("error applying pushed changes")
		http.Error(w, app.MsgPushFailed, statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.pull").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserID, http.StatusUnauthorized)
		return
	}

	var pullRequest models.PullRequest
	if err := json.NewDecoder(r.Body).Decode(&pullRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, pullRequest); err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("invalid pull payload")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.services.SyncService.Pull(ctx, userID, pullRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.pull").Msg("error assembling pull response")
		http.Error(w, app.MsgPullFailed, statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
