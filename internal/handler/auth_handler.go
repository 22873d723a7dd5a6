package handlers

import (
	"net/http"

	"ukmprhub/internal/models"
	"ukmprhub/internal/service"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Success bool           `json:"success"`
	User    *models.Member `json:"user"`
}

// Register serves /api/auth/register. An admin caller may pick the role and
// gets no session; anyone else is signed in as the new member.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	caller, _ := CurrentMember(r.Context())
	h.register(w, r, caller.IsAdmin())
}

func (h *Handlers) PublicRegister(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, false)
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request, byAdmin bool) {
	var req service.RegisterInput
	if !h.decode(w, r, &req) {
		return
	}

	member, err := h.AuthService.Register(r.Context(), req, byAdmin)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	if !byAdmin {
		if !h.startSession(w, r, member) {
			return
		}
	}

	writeSuccess(w, AuthResponse{Success: true, User: member}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	member, session, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	token, err := h.AuthService.SessionToken(session)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	SetSessionCookie(w, h.Cfg.Session, token)

	writeSuccess(w, AuthResponse{Success: true, User: member}, http.StatusOK)
}

func (h *Handlers) startSession(w http.ResponseWriter, r *http.Request, member *models.Member) bool {
	session, err := h.AuthService.StartSession(r.Context(), member.ID)
	if err != nil {
		writeAppError(w, r, err)
		return false
	}

	token, err := h.AuthService.SessionToken(session)
	if err != nil {
		writeAppError(w, r, err)
		return false
	}

	SetSessionCookie(w, h.Cfg.Session, token)
	return true
}

// Me answers null for anonymous callers instead of 401.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	member, ok := CurrentMember(r.Context())
	if !ok {
		writeSuccess(w, nil, http.StatusOK)
		return
	}
	writeSuccess(w, member, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.AuthService.Logout(r.Context(), SessionCookie(r, h.Cfg.Session)); err != nil {
		writeAppError(w, r, err)
		return
	}

	ClearSessionCookie(w, h.Cfg.Session)
	writeSuccess(w, SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	member, _ := CurrentMember(r.Context())

	var req service.MemberPatch
	if !h.decode(w, r, &req) {
		return
	}

	updated, err := h.MemberService.UpdateProfile(r.Context(), member.ID, req)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	writeSuccess(w, AuthResponse{Success: true, User: updated}, http.StatusOK)
}
