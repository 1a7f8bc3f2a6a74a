package repo

import (
	"context"
	"fmt"

	"ngoportal/internal/domain"
	"ngoportal/internal/infra"
	"ngoportal/internal/sqlinline"
)

// SettingsRepositoryPG implements SettingsRepository using PostgreSQL.
type SettingsRepositoryPG struct {
	db infra.DB
}

// NewSettingsRepository creates a new settings repo.
func NewSettingsRepository(db infra.DB) *SettingsRepositoryPG {
	return &SettingsRepositoryPG{db: db}
}

// HeroImage returns the landing image bytes, or ErrNotFound when the settings
// row is missing or the column is null.
func (r *SettingsRepositoryPG) HeroImage(ctx context.Context) ([]byte, error) {
	var img []byte
	if err := r.db.QueryRow(ctx, sqlinline.QSelectHeroImage).Scan(&img); err != nil {
		return nil, mapError(err)
	}
	if len(img) == 0 {
		return nil, domain.ErrNotFound
	}
	return img, nil
}

// SetHeroImage replaces the landing image. There is a single settings row;
// the first write creates it.
func (r *SettingsRepositoryPG) SetHeroImage(ctx context.Context, img []byte) error {
	if len(img) == 0 {
		return fmt.Errorf("hero image is empty")
	}
	if _, err := r.db.Exec(ctx, sqlinline.QUpsertHeroImage, img); err != nil {
		return mapError(err)
	}
	return nil
}
