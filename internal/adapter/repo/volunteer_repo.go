package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"ngoportal/internal/domain"
	"ngoportal/internal/infra"
	"ngoportal/internal/sqlinline"
)

// VolunteerRepositoryPG implements VolunteerRepository using PostgreSQL.
type VolunteerRepositoryPG struct {
	db infra.DB
}

// NewVolunteerRepository creates a new volunteer repo.
func NewVolunteerRepository(db infra.DB) *VolunteerRepositoryPG {
	return &VolunteerRepositoryPG{db: db}
}

// Register rejects emails that already belong to a volunteer, then writes the
// volunteer row, one email association, one phone association and one row per
// distinct normalized skill in a single transaction. A uniqueness race on the
// email index rolls everything back and still surfaces as ErrDuplicateEntity.
func (r *VolunteerRepositoryPG) Register(ctx context.Context, reg domain.VolunteerRegistration) (int64, error) {
	var existing int64
	err := r.db.QueryRow(ctx, sqlinline.QSelectVolunteerByEmail, reg.Email).Scan(&existing)
	if err == nil {
		return 0, fmt.Errorf("volunteer email %q already registered: %w", reg.Email, domain.ErrDuplicateEntity)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, mapError(err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin volunteer tx: %w", mapError(err))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var volunteerID int64
	if err := tx.QueryRow(ctx, sqlinline.QInsertVolunteer, reg.Name).Scan(&volunteerID); err != nil {
		return 0, mapError(err)
	}
	if _, err := tx.Exec(ctx, sqlinline.QInsertVolunteerEmail, volunteerID, reg.Email); err != nil {
		return 0, mapError(err)
	}
	if _, err := tx.Exec(ctx, sqlinline.QInsertVolunteerPhone, volunteerID, reg.Phone); err != nil {
		return 0, mapError(err)
	}
	for _, skill := range reg.NormalizedSkills() {
		if _, err := tx.Exec(ctx, sqlinline.QInsertVolunteerSkill, volunteerID, skill); err != nil {
			return 0, mapError(err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, mapError(err)
	}
	return volunteerID, nil
}

// Roster returns one summary row per volunteer, ordered by total contributed
// hours descending. Order among equal totals is whatever the store returns.
func (r *VolunteerRepositoryPG) Roster(ctx context.Context) ([]domain.VolunteerSummary, error) {
	rows, err := r.db.Query(ctx, sqlinline.QSelectVolunteerRoster)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var items []domain.VolunteerSummary
	for rows.Next() {
		var v domain.VolunteerSummary
		if err := rows.Scan(&v.ID, &v.Name, &v.Skills, &v.Emails, &v.Phones, &v.EventsCount, &v.TotalHours); err != nil {
			return nil, mapError(err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return items, nil
}
