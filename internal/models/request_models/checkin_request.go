package request_models

type ToggleCheckInRequest struct {
	TravelerID   string `json:"traveler_id" binding:"required,uuid4"`
	LocationName string `json:"location_name"`
}

type SOSAlertRequest struct {
	GroupID    string `json:"group_id" binding:"required,uuid4"`
	TravelerID string `json:"traveler_id" binding:"required,uuid4"`
	Message    string `json:"message"`
}
