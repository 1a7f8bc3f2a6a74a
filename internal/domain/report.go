package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats is the admin landing view, recomputed on every call.
type DashboardStats struct {
	TotalDonors        int64
	TotalDonations     int64
	TotalEvents        int64
	TotalBeneficiaries int64
	RecentDonations    []RecentDonation
	UpcomingEvents     []Event
}

// DonationImpact is one donation joined with the beneficiary reach of the
// receiving NGO.
type DonationImpact struct {
	DonorName              string
	Amount                 decimal.Decimal
	DonationDate           time.Time
	NgoName                string
	BeneficiariesSupported int64
}

// BudgetAudit is one append-only log row written by database-side triggers.
type BudgetAudit struct {
	ID        int64
	NgoID     int64
	OldBudget decimal.Decimal
	NewBudget decimal.Decimal
	ChangedAt time.Time
}
