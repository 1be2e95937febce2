package db_models

// Spot is a sightseeing location from the shared spot database.
type Spot struct {
	BaseModel
	Name        string `gorm:"not null"`
	Address     string
	Description string
	Phone       string
	ImageURL    string
}
