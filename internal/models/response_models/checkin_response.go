package response_models

type ToggleCheckInResponse struct {
	TravelerID string `json:"traveler_id"`
	CheckedIn  bool   `json:"checked_in"`
}

type CheckInResponse struct {
	TravelerID   string `json:"traveler_id"`
	LocationName string `json:"location_name,omitempty"`
	CheckedInAt  string `json:"checked_in_at"`
}

type MulticastResponse struct {
	Sent int `json:"sent"`
}
