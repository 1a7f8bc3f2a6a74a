package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ngoportal/internal/domain"
	"ngoportal/internal/metrics"
	"ngoportal/internal/middleware"
)

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin verifies the credentials against the stored bcrypt hash and
// issues a capability token. No session state is kept server-side.
func (a *App) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	user, err := a.Admins.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
			return
		}
		a.Logger.Error().Err(err).Msg("admin lookup failed")
		a.domainError(w, err)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	token, err := middleware.SignAdminToken(a.AdminTokenSecret, user.Username, a.AdminTokenTTL)
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign admin token failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"token":      token,
		"expires_at": time.Now().Add(a.AdminTokenTTL).UTC().Format(time.RFC3339),
	})
}

func (a *App) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := a.Reports.Dashboard(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("dashboard failed")
		a.domainError(w, err)
		return
	}

	recent := make([]map[string]any, 0, len(stats.RecentDonations))
	for _, d := range stats.RecentDonations {
		recent = append(recent, map[string]any{
			"donation_id":    d.ID,
			"donor_name":     d.DonorName,
			"ngo_name":       d.NgoName,
			"amount":         d.Amount,
			"donation_date":  d.DonationDate.Format(time.DateOnly),
			"payment_method": d.PaymentMethod,
		})
	}
	upcoming := make([]map[string]any, 0, len(stats.UpcomingEvents))
	for _, e := range stats.UpcomingEvents {
		upcoming = append(upcoming, map[string]any{
			"event_id":   e.ID,
			"event_name": e.Name,
			"event_date": e.Date.Format(time.DateOnly),
			"ngo_name":   e.NgoName,
		})
	}

	a.json(w, http.StatusOK, map[string]any{
		"total_donors":        stats.TotalDonors,
		"total_donations":     stats.TotalDonations,
		"total_events":        stats.TotalEvents,
		"total_beneficiaries": stats.TotalBeneficiaries,
		"recent_donations":    recent,
		"upcoming_events":     upcoming,
	})
}

func (a *App) AdminVolunteers(w http.ResponseWriter, r *http.Request) {
	roster, err := a.Volunteers.Roster(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("volunteer roster failed")
		a.domainError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(roster))
	for _, v := range roster {
		items = append(items, map[string]any{
			"volunteer_id": v.ID,
			"name":         v.Name,
			"skills":       v.Skills,
			"emails":       v.Emails,
			"phones":       v.Phones,
			"events_count": v.EventsCount,
			"total_hours":  v.TotalHours,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) AdminDonationImpact(w http.ResponseWriter, r *http.Request) {
	impacts, err := a.Reports.DonationImpact(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("donation impact failed")
		a.domainError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(impacts))
	for _, i := range impacts {
		items = append(items, map[string]any{
			"donor_name":              i.DonorName,
			"amount":                  i.Amount,
			"donation_date":           i.DonationDate.Format(time.DateOnly),
			"ngo_name":                i.NgoName,
			"beneficiaries_supported": i.BeneficiariesSupported,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

func (a *App) AdminBudgetAudit(w http.ResponseWriter, r *http.Request) {
	audits, err := a.Reports.BudgetAudit(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("budget audit failed")
		a.domainError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(audits))
	for _, audit := range audits {
		items = append(items, map[string]any{
			"audit_id":         audit.ID,
			"ngo_id":           audit.NgoID,
			"old_budget":       audit.OldBudget,
			"new_budget":       audit.NewBudget,
			"change_timestamp": audit.ChangedAt.UTC().Format(time.RFC3339),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// AdminRedistributeFunds runs the redistribution routine and returns the full
// transfer history, newest first. On routine failure no report is shown.
func (a *App) AdminRedistributeFunds(w http.ResponseWriter, r *http.Request) {
	transfers, err := a.NGOs.RedistributeFunds(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("fund redistribution failed")
		a.domainError(w, err)
		return
	}

	metrics.RedistributionRuns.Inc()
	items := make([]map[string]any, 0, len(transfers))
	for _, t := range transfers {
		items = append(items, map[string]any{
			"from_ngo":            t.FromNgo,
			"to_ngo":              t.ToNgo,
			"amount":              t.Amount,
			"redistribution_date": t.Date.UTC().Format(time.RFC3339),
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
