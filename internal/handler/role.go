package handler

import (
	"net/http"

	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/service"
)

type RoleHandler struct {
	roles *service.RoleService
}

func NewRoleHandler(roles *service.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

type RolesResponse struct {
	BaseResponse
	Roles []model.Role `json:"roles"`
}

func (h *RoleHandler) Mine(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roles.Mine(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	if roles == nil {
		roles = []model.Role{}
	}
	respondWithJSON(w, http.StatusOK, RolesResponse{BaseResponse: BaseResponse{Ok: true}, Roles: roles})
}

// Join handles POST /me/roles with a body of {"role": "volunteer"}.
func (h *RoleHandler) Join(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Role model.Role `json:"role"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	if err := h.roles.Join(r.Context(), input.Role); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, BaseResponse{Ok: true})
}

// Grant handles POST /admin/roles.
func (h *RoleHandler) Grant(w http.ResponseWriter, r *http.Request) {
	var input service.GrantRoleInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if err := h.roles.Grant(r.Context(), input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, BaseResponse{Ok: true})
}
