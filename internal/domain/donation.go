package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation is an immutable contribution record. Rows are only ever inserted.
type Donation struct {
	ID            int64
	DonorID       int64
	NgoID         int64
	Amount        decimal.Decimal
	DonationDate  time.Time
	PaymentMethod string
}

// DonationSubmission carries one donation form submission: the donor's
// natural-key attributes plus the donation facts. Phone and Email are
// optional contact associations, upserted idempotently.
type DonationSubmission struct {
	DonorName     string
	DonorAddress  string
	Phone         string
	Email         string
	NgoID         int64
	Amount        decimal.Decimal
	PaymentMethod string
}

// RecentDonation is a donation joined with donor and NGO names for display.
type RecentDonation struct {
	Donation
	DonorName string
	NgoName   string
}
