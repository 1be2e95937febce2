package request_models

type CreateLedgerEntryRequest struct {
	GroupID     string `json:"group_id" binding:"required,uuid4"`
	AmountMinor int64  `json:"amount_minor" binding:"required"`
	Currency    string `json:"currency" binding:"required,len=3"`
	Category    string `json:"category" binding:"required"`
	Note        string `json:"note"`
	ReceiptURL  string `json:"receipt_url"`
	SpentAt     int64  `json:"spent_at"`
}
