package request_models

type PushMessageRequest struct {
	To   string `json:"to" binding:"required"`
	Text string `json:"text" binding:"required"`
}

type MulticastRequest struct {
	To       []string       `json:"to" binding:"required"`
	Messages []MessageBlock `json:"messages" binding:"required"`
}

type MessageBlock struct {
	Type string `json:"type" binding:"required"`
	Text string `json:"text"`
}

type BroadcastRequest struct {
	GroupID string `json:"group_id" binding:"required,uuid4"`
	Text    string `json:"text" binding:"required"`
}

// BindIdentityRequest associates a LINE user id with a traveler by matching
// display name inside the group that owns the join code.
type BindIdentityRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	JoinCode    string `json:"join_code" binding:"required"`
	LineUserID  string `json:"line_user_id" binding:"required"`
}
