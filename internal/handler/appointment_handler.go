package handler

import (
	"net/http"
	"time"

	"booking-api/internal/apperr"
	"booking-api/internal/metrics"
	"booking-api/internal/middleware"
	"booking-api/internal/model"
)

type appointmentResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	UserID     string    `json:"user_id"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"created_at"`
}

func toAppointmentResponse(a *model.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:         a.ID,
		ProviderID: a.ProviderID,
		UserID:     a.UserID,
		Date:       a.Date,
		CreatedAt:  a.CreatedAt,
	}
}

type createAppointmentRequest struct {
	ProviderID string    `json:"provider_id"`
	Date       time.Time `json:"date"`
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}
	if req.ProviderID == "" || req.Date.IsZero() {
		badRequest(w, "provider_id and date required")
		return
	}

	a, err := h.scheduling.Schedule(r.Context(), req.ProviderID, middleware.UserID(r.Context()), req.Date)
	if err != nil {
		if kind, ok := apperr.KindOf(err); ok {
			metrics.RecordBooking(metrics.StatusRejected, string(kind))
		} else {
			metrics.RecordBooking(metrics.StatusError, "")
		}
		writeError(w, err)
		return
	}
	metrics.RecordBooking(metrics.StatusSuccess, "")
	writeJSON(w, http.StatusCreated, toAppointmentResponse(a))
}

// ListMyAppointments returns the authenticated user's agenda as a provider
// within an optional [from, to) range.
func (h *Handler) ListMyAppointments(w http.ResponseWriter, r *http.Request) {
	from := time.Now().AddDate(0, 0, -30)
	to := time.Now().AddDate(0, 2, 0)

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			badRequest(w, "invalid from date")
			return
		}
		from = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			badRequest(w, "invalid to date")
			return
		}
		to = t
	}

	apts, err := h.providers.ListProviderAppointments(r.Context(), middleware.UserID(r.Context()), from, to)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]appointmentResponse, len(apts))
	for i := range apts {
		out[i] = toAppointmentResponse(&apts[i])
	}
	writeJSON(w, http.StatusOK, out)
}
