package db_models

import "github.com/google/uuid"

// LedgerEntry is one expense of a group. Amounts are stored in minor units.
type LedgerEntry struct {
	BaseModel
	GroupID     uuid.UUID `gorm:"index"`
	AmountMinor int64
	Currency    string
	Category    string
	Note        string
	ReceiptURL  string
	SpentAt     int64
}
