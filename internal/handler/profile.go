package handler

import (
	"net/http"

	"github.com/dangerclosesec/goodworks/internal/service"
)

type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Get(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, profile)
}

// UpdateMine handles PUT /me/profile.
func (h *ProfileHandler) UpdateMine(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateProfileInput
	if !decodeJSON(w, r, &input) {
		return
	}

	profile, err := h.profiles.UpdateMine(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, profile)
}

// Update handles PUT /profiles/{id}.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.UpdateProfileInput
	if !decodeJSON(w, r, &input) {
		return
	}

	profile, err := h.profiles.Update(r.Context(), profileID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithData(w, http.StatusOK, profile)
}
