package domain

import "time"

// PantryItem is one ingredient a user has at home. Name is unique per user.
type PantryItem struct {
	ID         string
	UserID     string
	Name       string
	Quantity   string
	ExpiryDate *time.Time
	AddedAt    time.Time
	CreatedAt  time.Time
}
