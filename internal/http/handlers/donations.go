package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"ngoportal/internal/domain"
	"ngoportal/internal/metrics"
)

type donationRequest struct {
	Name          string          `json:"name" validate:"required"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address" validate:"required"`
	NgoID         int64           `json:"ngo_id" validate:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required"`
}

func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Validate.Struct(req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	if !req.Amount.IsPositive() {
		a.error(w, http.StatusBadRequest, "bad_request", "amount must be positive")
		return
	}

	donationID, donorID, err := a.Donations.Create(r.Context(), domain.DonationSubmission{
		DonorName:     req.Name,
		DonorAddress:  req.Address,
		Phone:         req.Phone,
		Email:         req.Email,
		NgoID:         req.NgoID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		a.Logger.Error().Err(err).Msg("donation create failed")
		a.domainError(w, err)
		return
	}

	metrics.DonationsCreated.Inc()
	a.json(w, http.StatusCreated, map[string]any{
		"donation_id": donationID,
		"donor_id":    donorID,
	})
}
