package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"ngoportal/internal/domain"
)

type fakeDonations struct {
	sub        domain.DonationSubmission
	donationID int64
	donorID    int64
	err        error
}

func (f *fakeDonations) Create(_ context.Context, sub domain.DonationSubmission) (int64, int64, error) {
	f.sub = sub
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.donationID, f.donorID, nil
}

type fakeVolunteers struct {
	reg    domain.VolunteerRegistration
	id     int64
	err    error
	roster []domain.VolunteerSummary
}

func (f *fakeVolunteers) Register(_ context.Context, reg domain.VolunteerRegistration) (int64, error) {
	f.reg = reg
	if f.err != nil {
		return 0, f.err
	}
	return f.id, nil
}

func (f *fakeVolunteers) Roster(context.Context) ([]domain.VolunteerSummary, error) {
	return f.roster, f.err
}

type fakeAdmins struct {
	user *domain.AdminUser
	err  error
}

func (f *fakeAdmins) GetByUsername(_ context.Context, username string) (*domain.AdminUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeReports struct {
	stats   *domain.DashboardStats
	impacts []domain.DonationImpact
	audits  []domain.BudgetAudit
	err     error
}

func (f *fakeReports) Dashboard(context.Context) (*domain.DashboardStats, error) {
	return f.stats, f.err
}

func (f *fakeReports) DonationImpact(context.Context) ([]domain.DonationImpact, error) {
	return f.impacts, f.err
}

func (f *fakeReports) BudgetAudit(context.Context) ([]domain.BudgetAudit, error) {
	return f.audits, f.err
}

type fakeNGOs struct {
	ngos      []domain.NGOWithScore
	transfers []domain.Redistribution
	err       error
}

func (f *fakeNGOs) ListWithEfficiency(context.Context) ([]domain.NGOWithScore, error) {
	return f.ngos, f.err
}

func (f *fakeNGOs) RedistributeFunds(context.Context) ([]domain.Redistribution, error) {
	return f.transfers, f.err
}

func newTestApp() *App {
	return &App{
		Logger:           zerolog.Nop(),
		Validate:         validator.New(),
		AdminTokenSecret: "test-secret",
		AdminTokenTTL:    time.Hour,
	}
}
