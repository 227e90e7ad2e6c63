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

type NotificationsHandler struct {
	service *matchsvc.Service
}

func NewNotificationsHandler(service *matchsvc.Service) *NotificationsHandler {
	return &NotificationsHandler{service: service}
}

func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "NOTIFICATIONS_SERVICE_UNAVAILABLE", "notifications service is unavailable")
		return
	}

	pending, err := h.service.Notifications(r.Context(), identity.UserID)
	if err != nil {
		writeMatchError(w, err, "failed to load notifications")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.NotificationListResponse{Items: dto.MapNotifications(pending)})
}

func (h *NotificationsHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "NOTIFICATIONS_SERVICE_UNAVAILABLE", "notifications service is unavailable")
		return
	}

	notificationID := strings.TrimSpace(chi.URLParam(r, "id"))
	if notificationID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "notification id is required")
		return
	}

	if err := h.service.DismissNotification(r.Context(), identity.UserID, notificationID); err != nil {
		writeMatchError(w, err, "failed to dismiss notification")
		return
	}

	httperrors.Write(w, http.StatusOK, struct {
		OK bool `json:"ok"`
	}{OK: true})
}
