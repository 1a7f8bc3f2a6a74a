package repo

import (
	"context"
	"fmt"

	"ngoportal/internal/domain"
	"ngoportal/internal/infra"
	"ngoportal/internal/sqlinline"
)

// DonationRepositoryPG implements DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	db infra.DB
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(db infra.DB) *DonationRepositoryPG {
	return &DonationRepositoryPG{db: db}
}

// Create writes one donation submission as a single transaction: donor
// reconciliation, the optional idempotent phone/email associations, then the
// donation row dated with the current date. A failure at any step makes the
// whole submission invisible; a donation never exists without the donor and
// contact rows its submission implies.
func (r *DonationRepositoryPG) Create(ctx context.Context, sub domain.DonationSubmission) (int64, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("begin donation tx: %w", mapError(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	donorID, err := reconcileDonor(ctx, tx, sub.DonorName, sub.DonorAddress)
	if err != nil {
		return 0, 0, err
	}

	if sub.Phone != "" {
		if _, err := tx.Exec(ctx, sqlinline.QUpsertDonorPhone, donorID, sub.Phone); err != nil {
			return 0, 0, mapError(err)
		}
	}
	if sub.Email != "" {
		if _, err := tx.Exec(ctx, sqlinline.QUpsertDonorEmail, donorID, sub.Email); err != nil {
			return 0, 0, mapError(err)
		}
	}

	var donationID int64
	row := tx.QueryRow(ctx, sqlinline.QInsertDonation, donorID, sub.NgoID, sub.Amount, sub.PaymentMethod)
	if err := row.Scan(&donationID); err != nil {
		return 0, 0, mapError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, mapError(err)
	}
	return donationID, donorID, nil
}
