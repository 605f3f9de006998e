package llm

import "context"

// TransactionFields is one transaction row as the LLM reports it.
type TransactionFields struct {
	Owner            string `json:"owner,omitempty"` // SPOUSE | DEPENDENT_CHILD | JOINT
	AssetName        string `json:"asset_name"`
	AssetType        string `json:"asset_type,omitempty"` // ticker-style code, e.g. ST
	FilingStatus     string `json:"filing_status,omitempty"`
	TradeType        string `json:"trade_type"`                  // PURCHASE | SALE | EXCHANGE
	TradeDate        string `json:"trade_date"`                  // YYYY-MM-DD
	NotificationDate string `json:"notification_date,omitempty"` // YYYY-MM-DD
	MinAmount        int    `json:"min_amount"`
	MaxAmount        int    `json:"max_amount"`
}

// ReportFields is the normalized shape we want from the LLM.
type ReportFields struct {
	DocID        string              `json:"doc_id" validate:"required,numeric"`
	FilerName    string              `json:"filer_name" validate:"required"`
	FilerStatus  string              `json:"filer_status" validate:"required"` // MEMBER | OFFICER_OR_EMPLOYEE | CANDIDATE
	State        string              `json:"state" validate:"required,len=2"`  // two-letter code
	District     int                 `json:"district" validate:"min=0"`
	Transactions []TransactionFields `json:"transactions"`
}

type ExtractRequest struct {
	OCRText   string
	DocID     string
	SourceURL string
}

// ReportExtractor is the alternate extraction path the pipeline can swap in
// when the heuristic parser is not enough.
type ReportExtractor interface {
	ExtractReport(ctx context.Context, req ExtractRequest) (ReportFields, []byte /*rawJSON*/, error)
}
