package models

import (
	"time"
)

// Money type classifications for ledger entries
const (
	MoneyTypeLiquid    = "liquid"
	MoneyTypeNonLiquid = "non-liquid"
)

// Transaction represents a signed money movement in the ledger.
// Positive amounts are additions, negative amounts are deductions.
// Entries are immutable once created; the only write after creation is delete.
type Transaction struct {
	ID          string    `json:"id" db:"id"`
	Amount      float64   `json:"amount" db:"amount"`
	MoneyType   string    `json:"moneyType" db:"money_type"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
