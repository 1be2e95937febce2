package request_models

type UpsertTravelerRequest struct {
	ID                string `json:"id"`
	GroupID           string `json:"group_id"`
	FullName          string `json:"full_name" binding:"required"`
	RoomNumber        string `json:"room_number" binding:"required"`
	Gender            string `json:"gender"`
	DietaryNeeds      string `json:"dietary_needs"`
	MessagingIdentity string `json:"messaging_identity"`
}

// BulkImportRequest carries spreadsheet rows as raw header->value maps; the
// roster service resolves the headers, whatever language they are in.
type BulkImportRequest struct {
	GroupID string              `json:"group_id" binding:"required,uuid4"`
	Rows    []map[string]string `json:"rows" binding:"required"`
}
