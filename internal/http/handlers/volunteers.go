package handlers

import (
	"encoding/json"
	"net/http"

	"ngoportal/internal/domain"
	"ngoportal/internal/metrics"
)

type volunteerRequest struct {
	Name   string   `json:"name" validate:"required"`
	Email  string   `json:"email" validate:"required,email"`
	Phone  string   `json:"phone" validate:"required"`
	Skills []string `json:"skills"`
}

func (a *App) VolunteersRegister(w http.ResponseWriter, r *http.Request) {
	var req volunteerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	volunteerID, err := a.Volunteers.Register(r.Context(), domain.VolunteerRegistration{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Skills: req.Skills,
	})
	if err != nil {
		a.Logger.Warn().Err(err).Msg("volunteer registration rejected")
		a.domainError(w, err)
		return
	}

	metrics.VolunteersRegistered.Inc()
	a.json(w, http.StatusCreated, map[string]any{"volunteer_id": volunteerID})
}
