package repo

import (
	"context"

	"ngoportal/internal/domain"
	"ngoportal/internal/infra"
	"ngoportal/internal/sqlinline"
)

const dashboardListLimit = 5

// ReportRepositoryPG implements ReportRepository using PostgreSQL.
type ReportRepositoryPG struct {
	db infra.DB
}

// NewReportRepository creates a new report repo.
func NewReportRepository(db infra.DB) *ReportRepositoryPG {
	return &ReportRepositoryPG{db: db}
}

// Dashboard assembles the admin landing view from call-time table state:
// literal row counts, the five most recent donations by descending
// identifier, and the five soonest events dated today or later.
func (r *ReportRepositoryPG) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats

	counts := []struct {
		query string
		dest  *int64
	}{
		{sqlinline.QCountDonors, &stats.TotalDonors},
		{sqlinline.QCountDonations, &stats.TotalDonations},
		{sqlinline.QCountEvents, &stats.TotalEvents},
		{sqlinline.QCountBeneficiaries, &stats.TotalBeneficiaries},
	}
	for _, c := range counts {
		if err := r.db.QueryRow(ctx, c.query).Scan(c.dest); err != nil {
			return nil, mapError(err)
		}
	}

	recent, err := r.recentDonations(ctx, dashboardListLimit)
	if err != nil {
		return nil, err
	}
	stats.RecentDonations = recent

	rows, err := r.db.Query(ctx, sqlinline.QSelectUpcomingEventsLimit, dashboardListLimit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()
	upcoming, err := scanEvents(rows)
	if err != nil {
		return nil, err
	}
	stats.UpcomingEvents = upcoming

	return &stats, nil
}

func (r *ReportRepositoryPG) recentDonations(ctx context.Context, limit int) ([]domain.RecentDonation, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectRecentDonations, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var items []domain.RecentDonation
	for rows.Next() {
		var d domain.RecentDonation
		if err := rows.Scan(&d.ID, &d.DonorID, &d.NgoID, &d.Amount, &d.DonationDate, &d.PaymentMethod, &d.DonorName, &d.NgoName); err != nil {
			return nil, mapError(err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// DonationImpact lists every donation with the beneficiary reach of the
// receiving NGO, newest donation first.
func (r *ReportRepositoryPG) DonationImpact(ctx context.Context) ([]domain.DonationImpact, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectDonationImpact)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var items []domain.DonationImpact
	for rows.Next() {
		var i domain.DonationImpact
		if err := rows.Scan(&i.DonorName, &i.Amount, &i.DonationDate, &i.NgoName, &i.BeneficiariesSupported); err != nil {
			return nil, mapError(err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

// BudgetAudit returns the trigger-maintained audit log, newest change first.
func (r *ReportRepositoryPG) BudgetAudit(ctx context.Context) ([]domain.BudgetAudit, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectBudgetAudit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var items []domain.BudgetAudit
	for rows.Next() {
		var a domain.BudgetAudit
		if err := rows.Scan(&a.ID, &a.NgoID, &a.OldBudget, &a.NewBudget, &a.ChangedAt); err != nil {
			return nil, mapError(err)
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}
