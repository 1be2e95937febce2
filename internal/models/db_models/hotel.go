package db_models

type Hotel struct {
	BaseModel
	Name     string `gorm:"not null"`
	Address  string
	Phone    string
	Notes    string
	ImageURL string
}
