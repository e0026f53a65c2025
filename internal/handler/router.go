package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"booking-api/internal/auth"
	"booking-api/internal/middleware"
)

// Router assembles the HTTP surface. Everything under the authenticated
// group requires a valid session credential.
func Router(h *Handler, signer *auth.Signer, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Post("/users", h.Register)
	r.Post("/sessions", h.Login)
	r.Post("/password/forgot", h.ForgotPassword)
	r.Post("/password/reset", h.ResetPassword)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(signer))

		r.Post("/appointments", h.CreateAppointment)
		r.Get("/appointments/me", h.ListMyAppointments)
		r.Get("/providers", h.ListProviders)
		r.Get("/providers/{id}/day-availability", h.DayAvailability)
		r.Patch("/users/avatar", h.UpdateAvatar)
	})

	return r
}
