package domain

import "github.com/google/uuid"

// Category groups orders and budgets, optionally nested under a parent.
type Category struct {
	CategoryID   uuid.UUID  `json:"categoryID"`
	Name         string     `json:"name"`
	ParentID     *uuid.UUID `json:"parentID,omitempty"`
	CategoryType string     `json:"categoryType"`
	OwnedFields
}
