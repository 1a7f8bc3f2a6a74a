package domain

import "context"

// DonationRepository persists donation submissions.
type DonationRepository interface {
	// Create reconciles the donor and writes the contact associations plus
	// the donation row in one transaction; any failure rolls everything back.
	Create(ctx context.Context, sub DonationSubmission) (donationID, donorID int64, err error)
}

// VolunteerRepository persists volunteer registrations and builds the roster.
type VolunteerRepository interface {
	// Register fails with ErrDuplicateEntity when the email is already
	// registered; otherwise it writes volunteer, email, phone and skill rows
	// atomically.
	Register(ctx context.Context, reg VolunteerRegistration) (int64, error)
	Roster(ctx context.Context) ([]VolunteerSummary, error)
}

// EventRepository reads events.
type EventRepository interface {
	// ListUpcoming returns events dated today or later, ascending by date.
	ListUpcoming(ctx context.Context) ([]Event, error)
}

// NGORepository reads NGOs and drives the database-side delegates.
type NGORepository interface {
	ListWithEfficiency(ctx context.Context) ([]NGOWithScore, error)
	// RedistributeFunds invokes RedistributeExcessDonations and, only after
	// it commits, reads back every transfer record, newest first.
	RedistributeFunds(ctx context.Context) ([]Redistribution, error)
}

// ReportRepository assembles the admin read-only views.
type ReportRepository interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	DonationImpact(ctx context.Context) ([]DonationImpact, error)
	BudgetAudit(ctx context.Context) ([]BudgetAudit, error)
}

// AdminRepository reads admin accounts for login.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*AdminUser, error)
}

// SettingsRepository reads site-wide settings.
type SettingsRepository interface {
	// HeroImage returns the landing image bytes, or ErrNotFound when unset.
	HeroImage(ctx context.Context) ([]byte, error)
}
