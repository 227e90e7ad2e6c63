package handlers

import (
	"errors"
	"net/http"
	"strings"

	authsvc "github.com/Brooklyn-808/friendr/internal/services/auth"
	matchsvc "github.com/Brooklyn-808/friendr/internal/services/match"
	"github.com/Brooklyn-808/friendr/internal/transport/http/dto"
	httperrors "github.com/Brooklyn-808/friendr/internal/transport/http/errors"
)

const (
	actionLike = "LIKE"
	actionSkip = "SKIP"
)

type SwipeHandler struct {
	service *matchsvc.Service
}

func NewSwipeHandler(service *matchsvc.Service) *SwipeHandler {
	return &SwipeHandler{service: service}
}

func (h *SwipeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "SWIPE_SERVICE_UNAVAILABLE", "swipe service is unavailable")
		return
	}

	var req dto.SwipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if strings.TrimSpace(req.TargetID) == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "target_id is required")
		return
	}

	switch strings.ToUpper(strings.TrimSpace(req.Action)) {
	case actionLike:
		result, err := h.service.Like(r.Context(), identity.UserID, req.TargetID)
		if err != nil {
			writeMatchError(w, err, "failed to process like")
			return
		}
		httperrors.Write(w, http.StatusOK, dto.SwipeResponse{OK: true, NewMatch: result.NewMatch})
	case actionSkip:
		if err := h.service.Skip(r.Context(), identity.UserID, req.TargetID); err != nil {
			writeMatchError(w, err, "failed to process skip")
			return
		}
		httperrors.Write(w, http.StatusOK, dto.SwipeResponse{OK: true})
	default:
		writeBadRequest(w, "VALIDATION_ERROR", "unsupported action")
	}
}

func (h *SwipeHandler) ResetSeen(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "SWIPE_SERVICE_UNAVAILABLE", "swipe service is unavailable")
		return
	}

	if err := h.service.ResetSeen(r.Context(), identity.UserID); err != nil {
		writeMatchError(w, err, "failed to reset seen candidates")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.SwipeResponse{OK: true})
}

func writeMatchError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, matchsvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request")
	case errors.Is(err, matchsvc.ErrSelfLike):
		writeBadRequest(w, "SELF_LIKE", "cannot swipe on own profile")
	case errors.Is(err, matchsvc.ErrUnknownProfile):
		writeNotFound(w, "UNKNOWN_PROFILE", "profile does not exist")
	case errors.Is(err, matchsvc.ErrNotMatched):
		writeForbidden(w, "NOT_MATCHED", "users are not matched")
	case errors.Is(err, matchsvc.ErrEmptyMessage):
		writeBadRequest(w, "EMPTY_MESSAGE", "message text is required")
	case errors.Is(err, matchsvc.ErrNotFound):
		writeNotFound(w, "NOTIFICATION_NOT_FOUND", "notification does not exist")
	case errors.Is(err, matchsvc.ErrStorageUnavailable):
		writeStorageUnavailable(w)
	default:
		if tf, ok := matchsvc.IsTooFast(err); ok {
			httperrors.Write(w, http.StatusTooManyRequests, httperrors.RateLimitError{
				Code:          "TOO_FAST",
				Message:       "too many like actions, slow down",
				RetryAfterSec: tf.RetryAfter(),
			})
			return
		}
		writeInternal(w, "INTERNAL_ERROR", fallback)
	}
}
