package request_models

type CreateGroupRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Notes     string `json:"notes"`
}

type UpdateGroupRequest struct {
	Name         string  `json:"name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Notes        string  `json:"notes"`
	NotifyLineID *string `json:"notify_line_id"`
}
