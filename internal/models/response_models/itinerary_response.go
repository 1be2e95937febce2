package response_models

type ItineraryResponse struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	StartDate string                 `json:"start_date"`
	Days      []ItineraryDayResponse `json:"days"`
}

type ItineraryDayResponse struct {
	ID         string             `json:"id"`
	Date       string             `json:"date"`
	Activities []ActivityResponse `json:"activities"`
}

type ActivityResponse struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	EndTime  string `json:"end_time,omitempty"`
	Title    string `json:"title"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
	SpotID   string `json:"spot_id,omitempty"`
	SpotName string `json:"spot_name,omitempty"`
}
