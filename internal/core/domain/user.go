package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the application.
type User struct {
	UserID       uuid.UUID `json:"userID"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
