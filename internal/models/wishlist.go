package models

import (
	"time"
)

// Priority levels for wishlist items
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Categories is the fixed set of wishlist item categories.
var Categories = []string{
	"Electronics",
	"Fashion",
	"Travel",
	"Home",
	"Books",
	"Gaming",
	"Other",
}

// WishlistItem represents a savings goal. AllocatedAmount accumulates money
// assigned to the goal; it is only ever written by the allocator.
type WishlistItem struct {
	ID              string    `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	Icon            string    `json:"icon,omitempty" db:"icon"`
	TargetPrice     float64   `json:"targetPrice" db:"target_price"`
	Priority        string    `json:"priority,omitempty" db:"priority"`
	Category        string    `json:"category,omitempty" db:"category"`
	Notes           string    `json:"notes,omitempty" db:"notes"`
	Link            string    `json:"link,omitempty" db:"link"`
	AllocatedAmount float64   `json:"allocatedAmount" db:"allocated_amount"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
