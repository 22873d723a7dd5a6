package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"ukmprhub/internal/apperr"
	"ukmprhub/internal/models"
	"ukmprhub/internal/service"
)

func (h *Handlers) GetMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.MemberService.List(r.Context())
	if err != nil {
		log.Printf("Failed to list members: %v", err)
		members = []models.Member{}
	}
	writeSuccess(w, members, http.StatusOK)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid member id", http.StatusBadRequest)
		return
	}

	member, err := h.MemberService.Get(r.Context(), id)
	h.writeMember(w, r, member, err)
}

func (h *Handlers) GetMemberByUsername(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(mux.Vars(r)["username"])
	if username == "" {
		WriteError(w, "username is required", http.StatusBadRequest)
		return
	}

	member, err := h.MemberService.GetByUsername(r.Context(), username)
	h.writeMember(w, r, member, err)
}

// writeMember answers a missing member with a null body so profile pages
// can render an empty state.
func (h *Handlers) writeMember(w http.ResponseWriter, r *http.Request, member *models.Member, err error) {
	if apperr.Is(err, apperr.KindNotFound) {
		writeSuccess(w, nil, http.StatusNotFound)
		return
	}
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeSuccess(w, member, http.StatusOK)
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput
	if !h.decode(w, r, &req) {
		return
	}

	member, err := h.AuthService.Register(r.Context(), req, true)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, CreatedResponse{Success: true, ID: member.ID}, http.StatusCreated)
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid member id", http.StatusBadRequest)
		return
	}

	var req service.MemberPatch
	if !h.decode(w, r, &req) {
		return
	}

	member, err := h.MemberService.Update(r.Context(), id, req)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, AuthResponse{Success: true, User: member}, http.StatusOK)
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, "invalid member id", http.StatusBadRequest)
		return
	}

	if err := h.MemberService.Delete(r.Context(), id); err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}
