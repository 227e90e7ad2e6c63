package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	authsvc "github.com/Brooklyn-808/friendr/internal/services/auth"
	profilesvc "github.com/Brooklyn-808/friendr/internal/services/profiles"
	"github.com/Brooklyn-808/friendr/internal/transport/http/dto"
	httperrors "github.com/Brooklyn-808/friendr/internal/transport/http/errors"
)

type ProfileHandler struct {
	service *profilesvc.Service
}

func NewProfileHandler(service *profilesvc.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	var req dto.ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	profile, err := h.service.Create(r.Context(), profilesvc.Input{
		DisplayName: req.DisplayName,
		Age:         req.Age,
		Interests:   req.Interests,
		Bio:         req.Bio,
	})
	if err != nil {
		writeProfileError(w, err, "failed to create profile")
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.MapProfile(profile))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := authsvc.IdentityFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, "UNAUTHORIZED", "user identity required")
		return
	}
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	var req dto.ProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	profile, err := h.service.Update(r.Context(), identity.UserID, profilesvc.Input{
		DisplayName: req.DisplayName,
		Age:         req.Age,
		Interests:   req.Interests,
		Bio:         req.Bio,
	})
	if err != nil {
		writeProfileError(w, err, "failed to update profile")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.MapProfile(profile))
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "profile id is required")
		return
	}

	profile, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeProfileError(w, err, "failed to load profile")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.MapProfile(profile))
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "PROFILE_SERVICE_UNAVAILABLE", "profile service is unavailable")
		return
	}

	profiles, err := h.service.List(r.Context())
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load profiles")
		return
	}

	httperrors.Write(w, http.StatusOK, dto.ProfileListResponse{Items: dto.MapProfiles(profiles)})
}

func writeProfileError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, profilesvc.ErrValidation):
		writeBadRequest(w, "VALIDATION_ERROR", "profile validation failed")
	case errors.Is(err, profilesvc.ErrUnknownProfile):
		writeNotFound(w, "UNKNOWN_PROFILE", "profile does not exist")
	case errors.Is(err, profilesvc.ErrStorageUnavailable):
		writeStorageUnavailable(w)
	default:
		writeInternal(w, "INTERNAL_ERROR", fallback)
	}
}

func decodeJSON(r *http.Request, target any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeBadRequest(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusBadRequest, httperrors.APIError{Code: code, Message: message})
}

func writeUnauthorized(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusUnauthorized, httperrors.APIError{Code: code, Message: message})
}

func writeForbidden(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusForbidden, httperrors.APIError{Code: code, Message: message})
}

func writeNotFound(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusNotFound, httperrors.APIError{Code: code, Message: message})
}

func writeInternal(w http.ResponseWriter, code, message string) {
	httperrors.Write(w, http.StatusInternalServerError, httperrors.APIError{Code: code, Message: message})
}

func writeStorageUnavailable(w http.ResponseWriter) {
	httperrors.Write(w, http.StatusServiceUnavailable, httperrors.APIError{
		Code:    "STORAGE_UNAVAILABLE",
		Message: "durable storage is unavailable, the change was not applied",
	})
}
