package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	GroupID   uuid.UUID `gorm:"index"`
	Title     string
	StartDate int64

	Days []ItineraryDay `gorm:"foreignKey:ItineraryID"`
}

type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	Date        time.Time

	Activities []ItineraryActivity `gorm:"foreignKey:ItineraryDayID"`
}

type ItineraryActivity struct {
	BaseModel
	ItineraryDayID uuid.UUID `gorm:"index"`
	Time           time.Time
	EndTime        *time.Time
	Title          string
	Location       string
	Notes          string
	SpotID         *uuid.UUID

	Spot *Spot `gorm:"foreignKey:SpotID"`
}
