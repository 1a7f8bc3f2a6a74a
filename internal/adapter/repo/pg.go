// Package repo implements the domain repositories against PostgreSQL.
package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ngoportal/internal/domain"
)

// mapError folds store errors into the domain taxonomy. Unique violations
// become ErrDuplicateEntity, other integrity violations ErrConstraint,
// connection-class failures ErrConnectivity. Anything else passes through.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return fmt.Errorf("%s: %w", pgErr.Message, domain.ErrDuplicateEntity)
		case strings.HasPrefix(pgErr.Code, "23"):
			return fmt.Errorf("%s: %w", pgErr.Message, domain.ErrConstraint)
		case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "57P"):
			return fmt.Errorf("%s: %w", pgErr.Message, domain.ErrConnectivity)
		}
		return err
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%v: %w", err, domain.ErrConnectivity)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

// mapDelegateError classifies failures of the opaque database routines.
// Connectivity keeps its own class; everything else the routine raised is a
// delegate failure, never shown as a partial result.
func mapDelegateError(err error) error {
	if err == nil {
		return nil
	}
	mapped := mapError(err)
	if errors.Is(mapped, domain.ErrConnectivity) {
		return mapped
	}
	return fmt.Errorf("%v: %w", err, domain.ErrDelegate)
}
