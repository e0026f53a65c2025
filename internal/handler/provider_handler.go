package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"booking-api/internal/middleware"
)

func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	users, err := h.providers.ListProviders(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// DayAvailability reports a provider's bookable hours on ?date=YYYY-MM-DD.
func (h *Handler) DayAvailability(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "id")

	day, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("date"), time.Local)
	if err != nil {
		badRequest(w, "date must be YYYY-MM-DD")
		return
	}

	hours, err := h.providers.DayAvailability(r.Context(), providerID, day.Year(), day.Month(), day.Day())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}
