package repo

import (
	"context"
	"fmt"

	"ngoportal/internal/domain"
	"ngoportal/internal/infra"
	"ngoportal/internal/sqlinline"
)

// NGORepositoryPG implements NGORepository using PostgreSQL.
type NGORepositoryPG struct {
	db infra.DB
}

// NewNGORepository creates a new NGO repo.
func NewNGORepository(db infra.DB) *NGORepositoryPG {
	return &NGORepositoryPG{db: db}
}

// ListWithEfficiency lists every NGO annotated with the score the
// CalculateNgoEfficiency function computes per row. A failure inside the
// function fails the whole listing; no partial list is returned.
func (r *NGORepositoryPG) ListWithEfficiency(ctx context.Context) ([]domain.NGOWithScore, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectNgosWithEfficiency)
	if err != nil {
		return nil, mapDelegateError(err)
	}
	defer rows.Close()

	var items []domain.NGOWithScore
	for rows.Next() {
		var n domain.NGOWithScore
		if err := rows.Scan(&n.ID, &n.Name, &n.City, &n.Budget, &n.EfficiencyScore); err != nil {
			return nil, mapDelegateError(err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDelegateError(err)
	}
	return items, nil
}

// RedistributeFunds invokes the RedistributeExcessDonations procedure, which
// commits its own fund transfers, then reads back every redistribution record
// newest first. If the procedure fails nothing it would have written is
// visible and no report is produced.
func (r *NGORepositoryPG) RedistributeFunds(ctx context.Context) ([]domain.Redistribution, error) {
	if _, err := r.db.Exec(ctx, sqlinline.QCallRedistributeFunds); err != nil {
		return nil, fmt.Errorf("redistribute excess donations: %w", mapDelegateError(err))
	}

	rows, err := r.db.Query(ctx, sqlinline.QSelectRedistributions)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var items []domain.Redistribution
	for rows.Next() {
		var t domain.Redistribution
		if err := rows.Scan(&t.FromNgo, &t.ToNgo, &t.Amount, &t.Date); err != nil {
			return nil, mapError(err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}
