package request_models

type UpsertHotelRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
	ImageURL string `json:"image_url"`
}

type UpsertSpotRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	ImageURL    string `json:"image_url"`
}
