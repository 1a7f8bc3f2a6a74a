package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ngoportal/internal/infra"
	"ngoportal/internal/sqlinline"
)

// DonorRepositoryPG reconciles donor rows by name.
type DonorRepositoryPG struct {
	db infra.DB
}

// NewDonorRepository creates a new donor repo.
func NewDonorRepository(db infra.DB) *DonorRepositoryPG {
	return &DonorRepositoryPG{db: db}
}

// Reconcile looks a donor up by exact name and overwrites the address
// (last write wins), or inserts a new donor row. Exactly one row is inserted
// or one updated. Name matching is not serialized: two concurrent first-time
// submissions for the same name may create two donor rows, an accepted
// limitation of name-based reconciliation.
func (r *DonorRepositoryPG) Reconcile(ctx context.Context, name, address string) (int64, error) {
	return reconcileDonor(ctx, r.db, name, address)
}

// reconcileDonor runs against either the pool-level runner or an open
// transaction, so the donation write can fold reconciliation into its own
// atomic unit.
func reconcileDonor(ctx context.Context, q infra.SQLExecutor, name, address string) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, sqlinline.QSelectDonorByName, name).Scan(&id)
	switch {
	case err == nil:
		if _, err := q.Exec(ctx, sqlinline.QUpdateDonorAddress, address, id); err != nil {
			return 0, mapError(err)
		}
		return id, nil
	case errors.Is(err, pgx.ErrNoRows):
		if err := q.QueryRow(ctx, sqlinline.QInsertDonor, name, address).Scan(&id); err != nil {
			return 0, mapError(err)
		}
		return id, nil
	default:
		return 0, mapError(err)
	}
}
