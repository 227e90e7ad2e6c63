package handlers

import (
	"net/http"

	authsvc "github.com/Brooklyn-808/friendr/internal/services/auth"
	matchsvc "github.com/Brooklyn-808/friendr/internal/services/match"
	"github.com/Brooklyn-808/friendr/internal/transport/http/dto"
	httperrors "github.com/Brooklyn-808/friendr/internal/transport/http/errors"
)

type MatchesHandler struct {
	service *matchsvc.Service
}

func NewMatchesHandler(service *matchsvc.Service) *MatchesHandler {
	return &MatchesHandler{service: service}
}

func (h *MatchesHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "MATCHES_SERVICE_UNAVAILABLE", "matches service is unavailable")
		return
	}

	ids, err := h.service.Matches(r.Context(), identity.UserID)
	if err != nil {
		writeMatchError(w, err, "failed to load matches")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.MatchesResponse{MatchIDs: ids})
}

type CandidatesHandler struct {
	service *matchsvc.Service
}

func NewCandidatesHandler(service *matchsvc.Service) *CandidatesHandler {
	return &CandidatesHandler{service: service}
}

func (h *CandidatesHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "CANDIDATES_SERVICE_UNAVAILABLE", "candidates service is unavailable")
		return
	}

	candidates, err := h.service.Candidates(r.Context(), identity.UserID)
	if err != nil {
		writeMatchError(w, err, "failed to load candidates")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ProfileListResponse{Items: dto.MapProfiles(candidates)})
}
