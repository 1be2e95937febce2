package response_models

type LedgerEntryResponse struct {
	ID          string `json:"id"`
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
	Category    string `json:"category"`
	Note        string `json:"note,omitempty"`
	ReceiptURL  string `json:"receipt_url,omitempty"`
	SpentAt     string `json:"spent_at"`
}

type LedgerSummaryResponse struct {
	Entries []LedgerEntryResponse `json:"entries"`
	Totals  map[string]int64      `json:"totals_by_category"`
}
