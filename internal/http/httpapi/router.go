package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"ngoportal/internal/http/handlers"
	"ngoportal/internal/infra"
	"ngoportal/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(logger),
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/settings/hero", app.HeroImage)
	r.Get("/v1/ngos", app.NGOsList)
	r.Get("/v1/events", app.EventsList)
	r.Post("/v1/donations", app.DonationsCreate)
	r.Post("/v1/volunteers", app.VolunteersRegister)

	r.Route("/v1/admin", func(r chi.Router) {
		r.Post("/login", app.AdminLogin)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.AdminTokenSecret))
			r.Get("/dashboard", app.AdminDashboard)
			r.Get("/volunteers", app.AdminVolunteers)
			r.Get("/donation-impact", app.AdminDonationImpact)
			r.Get("/budget-audit", app.AdminBudgetAudit)
			r.Post("/redistribute-funds", app.AdminRedistributeFunds)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
