package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authsvc "github.com/Brooklyn-808/friendr/internal/services/auth"
	matchsvc "github.com/Brooklyn-808/friendr/internal/services/match"
	"github.com/Brooklyn-808/friendr/internal/transport/http/dto"
	httperrors "github.com/Brooklyn-808/friendr/internal/transport/http/errors"
)

type DMHandler struct {
	service *matchsvc.Service
}

func NewDMHandler(service *matchsvc.Service) *DMHandler {
	return &DMHandler{service: service}
}

func (h *DMHandler) Send(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "DM_SERVICE_UNAVAILABLE", "dm service is unavailable")
		return
	}

	var req dto.SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if strings.TrimSpace(req.PeerID) == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "peer_id is required")
		return
	}

	msg, err := h.service.SendMessage(r.Context(), identity.UserID, req.PeerID, req.Text)
	if err != nil {
		writeMatchError(w, err, "failed to send message")
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.MapMessage(msg))
}

func (h *DMHandler) History(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "DM_SERVICE_UNAVAILABLE", "dm service is unavailable")
		return
	}

	peerID := strings.TrimSpace(chi.URLParam(r, "peerID"))
	if peerID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "peer id is required")
		return
	}

	messages, err := h.service.History(r.Context(), identity.UserID, peerID)
	if err != nil {
		writeMatchError(w, err, "failed to load history")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.HistoryResponse{Items: dto.MapMessages(messages)})
}
