package models

import (
	"time"

	"github.com/google/uuid"
)

// OwnedFields holds the owner and creation stamp columns shared by user-owned tables.
type OwnedFields struct {
	UserID    uuid.UUID `db:"user_id"`
	CreatedAt time.Time `db:"created_at"`
}
