package handlers

import (
	"net/http"

	authsvc "github.com/Brooklyn-808/friendr/internal/services/auth"
	matchsvc "github.com/Brooklyn-808/friendr/internal/services/match"
	"github.com/Brooklyn-808/friendr/internal/transport/http/dto"
	httperrors "github.com/Brooklyn-808/friendr/internal/transport/http/errors"
)

type LikesHandler struct {
	service *matchsvc.Service
}

func NewLikesHandler(service *matchsvc.Service) *LikesHandler {
	return &LikesHandler{service: service}
}

func (h *LikesHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "LIKES_SERVICE_UNAVAILABLE", "likes service is unavailable")
		return
	}

	liked, err := h.service.Liked(r.Context(), identity.UserID)
	if err != nil {
		writeMatchError(w, err, "failed to load liked profiles")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ProfileListResponse{Items: dto.MapProfiles(liked)})
}
