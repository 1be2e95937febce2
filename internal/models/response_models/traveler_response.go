package response_models

type TravelerResponse struct {
	ID                string `json:"id"`
	GroupID           string `json:"group_id,omitempty"`
	FullName          string `json:"full_name"`
	RoomNumber        string `json:"room_number"`
	Gender            string `json:"gender"`
	DietaryNeeds      string `json:"dietary_needs"`
	MessagingIdentity string `json:"messaging_identity,omitempty"`
	CheckedIn         bool   `json:"checked_in"`
}

type BulkImportResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// SaveTravelerResponse distinguishes a full save from a degraded one, where
// only the stable core fields could be written.
type SaveTravelerResponse struct {
	ID       string `json:"id"`
	Degraded bool   `json:"degraded"`
}
