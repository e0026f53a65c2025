// Package handler binds the booking services to HTTP. Handlers decode and
// validate the transport shape only; every business rule lives in
// internal/service.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"booking-api/internal/apperr"
	"booking-api/internal/service"
)

type Handler struct {
	registration *service.RegistrationService
	auth         *service.AuthService
	scheduling   *service.SchedulingService
	recovery     *service.PasswordRecoveryService
	reset        *service.PasswordResetService
	providers    *service.ProviderService
	profile      *service.ProfileService
}

func New(
	registration *service.RegistrationService,
	auth *service.AuthService,
	scheduling *service.SchedulingService,
	recovery *service.PasswordRecoveryService,
	reset *service.PasswordResetService,
	providers *service.ProviderService,
	profile *service.ProfileService,
) *Handler {
	return &Handler{
		registration: registration,
		auth:         auth,
		scheduling:   scheduling,
		recovery:     recovery,
		reset:        reset,
		providers:    providers,
		profile:      profile,
	}
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps business-error kinds to HTTP status classes.
var statusFor = map[apperr.Kind]int{
	apperr.KindSelfBooking:          http.StatusBadRequest,
	apperr.KindPastDate:             http.StatusBadRequest,
	apperr.KindOutsideBusinessHours: http.StatusBadRequest,
	apperr.KindSlotTaken:            http.StatusConflict,
	apperr.KindInvalidCredentials:   http.StatusUnauthorized,
	apperr.KindUserNotFound:         http.StatusNotFound,
	apperr.KindInvalidToken:         http.StatusBadRequest,
	apperr.KindTokenExpired:         http.StatusBadRequest,
	apperr.KindEmailExists:          http.StatusConflict,
	apperr.KindUserMissing:          http.StatusNotFound,
}

// writeError renders a business failure with its stable code, or a bare 500
// for infrastructure errors, which are logged but never exposed.
func writeError(w http.ResponseWriter, err error) {
	if kind, ok := apperr.KindOf(err); ok {
		status, known := statusFor[kind]
		if !known {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorBody{Status: "error", Code: string(kind), Message: err.Error()})
		return
	}
	slog.Error("request failed", "err", err)
	writeJSON(w, http.StatusInternalServerError,
		errorBody{Status: "error", Code: "internal", Message: "internal server error"})
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Status: "error", Code: "bad_request", Message: msg})
}
