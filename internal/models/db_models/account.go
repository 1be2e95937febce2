package db_models

// Account is a tour leader login.
type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string

	Groups []Group `gorm:"foreignKey:LeaderID"`
}
