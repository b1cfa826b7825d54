package domain

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated caller of a request. It is rebuilt from the
// bearer token on every request and never persisted.
type Principal struct {
	UserID uuid.UUID
}

// OwnedFields holds the ownership and creation stamp shared by every user-owned record.
type OwnedFields struct {
	UserID    uuid.UUID `json:"userID"` // immutable after creation
	CreatedAt time.Time `json:"createdAt"`
}
