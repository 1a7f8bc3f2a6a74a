package domain

import "errors"

var (
	// ErrNotFound reports a missing row on a read path.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEntity reports a uniqueness rule violation, either caught by
	// the application pre-check or by a unique index in the store.
	ErrDuplicateEntity = errors.New("duplicate entity")
	// ErrConstraint reports any other store-rejected write after the enclosing
	// transaction has been rolled back.
	ErrConstraint = errors.New("constraint violation")
	// ErrConnectivity reports that the store could not be reached.
	ErrConnectivity = errors.New("store unavailable")
	// ErrDelegate reports a failure inside a database-side routine the
	// application invokes by name only.
	ErrDelegate = errors.New("delegate failure")
)
