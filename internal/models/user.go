package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a row of the users table.
type User struct {
	UserID       uuid.UUID `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
