package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type GroupResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	JoinCode  string `json:"join_code"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
