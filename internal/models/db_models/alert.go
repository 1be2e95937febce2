package db_models

import "github.com/google/uuid"

type SOSAlert struct {
	BaseModel
	GroupID    uuid.UUID `gorm:"index"`
	TravelerID uuid.UUID
	Message    string
	Resolved   bool `gorm:"default:false"`
}
