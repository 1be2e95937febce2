package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckIn marks a traveler as currently accounted for. Presence, not a log:
// a traveler is checked in iff a row with their traveler_id exists, and
// checking out hard-deletes the row. The unique index keeps the
// at-most-one-row-per-traveler invariant even under racing toggles.
type CheckIn struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	TravelerID   uuid.UUID `gorm:"uniqueIndex;not null"`
	LocationName string
	CreatedAt    int64 `gorm:"autoCreateTime"`
}

func (c *CheckIn) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now().Unix()
	return nil
}

func (CheckIn) TableName() string {
	return "check_ins"
}
