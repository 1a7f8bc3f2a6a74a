package domain

import "time"

// AdminUser is a privileged account verified by bcrypt hash, never by
// plaintext compare.
type AdminUser struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        string
	CreatedAt    time.Time
}
