package db_models

import "github.com/google/uuid"

const (
	GenderUnspecified = "未指定"
	DietaryNone       = "無"
)

type Traveler struct {
	BaseModel
	GroupID      *uuid.UUID `gorm:"index"`
	FullName     string     `gorm:"not null"`
	RoomNumber   string
	Gender       string
	DietaryNeeds string
	// LINE user id once the traveler has bound their account.
	MessagingIdentity *string
}
