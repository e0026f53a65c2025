package handler

import (
	"errors"
	"net/http"

	"booking-api/internal/apperr"
	"booking-api/internal/metrics"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		badRequest(w, "email and password required")
		return
	}

	u, cred, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrInvalidCredentials) {
			metrics.AuthFailuresTotal.Inc()
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{User: toUserResponse(u), Token: cred})
}
