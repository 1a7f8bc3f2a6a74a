package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"ngoportal/internal/adapter/repo"
	"ngoportal/internal/domain"
	"ngoportal/internal/infra"
)

// App is the handler container: repositories, logger, validation and the
// admin token settings.
type App struct {
	Logger   zerolog.Logger
	Validate *validator.Validate

	Donations  domain.DonationRepository
	Volunteers domain.VolunteerRepository
	Events     domain.EventRepository
	NGOs       domain.NGORepository
	Reports    domain.ReportRepository
	Admins     domain.AdminRepository
	Settings   domain.SettingsRepository

	AdminTokenSecret string
	AdminTokenTTL    time.Duration
}

// NewApp wires the PostgreSQL repositories into a handler container.
func NewApp(db infra.DB, logger zerolog.Logger, cfg *infra.Config) *App {
	return &App{
		Logger:           logger,
		Validate:         validator.New(),
		Donations:        repo.NewDonationRepository(db),
		Volunteers:       repo.NewVolunteerRepository(db),
		Events:           repo.NewEventRepository(db),
		NGOs:             repo.NewNGORepository(db),
		Reports:          repo.NewReportRepository(db),
		Admins:           repo.NewAdminRepository(db),
		Settings:         repo.NewSettingsRepository(db),
		AdminTokenSecret: cfg.AdminTokenSecret,
		AdminTokenTTL:    cfg.AdminTokenTTL,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]any{"error": map[string]string{"code": code, "message": message}})
}

// domainError maps the error taxonomy onto HTTP statuses. Business rejections
// keep their underlying message; infrastructure failures stay generic.
func (a *App) domainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEntity):
		a.error(w, http.StatusConflict, "duplicate", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, domain.ErrConstraint):
		a.error(w, http.StatusUnprocessableEntity, "constraint_violation", err.Error())
	case errors.Is(err, domain.ErrConnectivity):
		a.error(w, http.StatusServiceUnavailable, "unavailable", "store unavailable")
	case errors.Is(err, domain.ErrDelegate):
		a.error(w, http.StatusBadGateway, "delegate_failure", "computation failed")
	default:
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}
