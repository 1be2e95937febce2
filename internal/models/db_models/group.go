package db_models

import "github.com/google/uuid"

// Group is one tour cohort. JoinCode is what travelers type in when binding
// their messaging identity; NotifyLineID receives SOS pushes when set.
type Group struct {
	BaseModel
	LeaderID     uuid.UUID
	Name         string
	JoinCode     string `gorm:"uniqueIndex"`
	StartDate    int64
	EndDate      int64
	Notes        string
	NotifyLineID *string

	Travelers   []Traveler  `gorm:"foreignKey:GroupID"`
	Itineraries []Itinerary `gorm:"foreignKey:GroupID"`
}
