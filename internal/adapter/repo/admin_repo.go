package repo

import (
	"context"

	"ngoportal/internal/domain"
	"ngoportal/internal/infra"
	"ngoportal/internal/sqlinline"
)

// AdminRepositoryPG implements AdminRepository using PostgreSQL.
type AdminRepositoryPG struct {
	db infra.DB
}

// NewAdminRepository creates a new admin repo.
func NewAdminRepository(db infra.DB) *AdminRepositoryPG {
	return &AdminRepositoryPG{db: db}
}

// GetByUsername returns the admin account, or ErrNotFound.
func (r *AdminRepositoryPG) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	var u domain.AdminUser
	row := r.db.QueryRow(ctx, sqlinline.QSelectAdminByUsername, username)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}
