package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mholloway/ptr-tracker/constants"
)

// FilerInfo is the parsed FILER INFORMATION header block.
type FilerInfo struct {
	FullName string                `json:"full_name"`
	Status   constants.FilerStatus `json:"status"`
	State    string                `json:"state"`
	District int                   `json:"district"`
}

// ParsedTransaction is one securities transaction extracted from a PTR.
type ParsedTransaction struct {
	Owner            *constants.Ownership   `json:"owner,omitempty"`
	AssetName        string                 `json:"asset_name"`
	AssetType        string                 `json:"asset_type"`
	FilingStatus     constants.FilingStatus `json:"filing_status"`
	TradeType        constants.TradeType    `json:"trade_type"`
	AmountRange      constants.AmountRange  `json:"amount_range"`
	TradeDate        time.Time              `json:"trade_date"`
	NotificationDate *time.Time             `json:"notification_date,omitempty"`
	SourceURL        string                 `json:"source_url"`
}

// ParsedReport is the structured form of one PTR document. Transactions keep
// document order.
type ParsedReport struct {
	DocID        string              `json:"doc_id"`
	Filer        FilerInfo           `json:"filer"`
	Transactions []ParsedTransaction `json:"transactions"`
	SourceURL    string              `json:"source_url"`
}

// Report is the persisted form of a ParsedReport.
type Report struct {
	ID        uuid.UUID `json:"id"`
	DocID     string    `json:"doc_id"`
	Filer     FilerInfo `json:"filer"`
	SourceURL string    `json:"source_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction is a persisted transaction row owned by a Report. Replacing a
// report deletes all of its prior transactions.
type Transaction struct {
	ID               uuid.UUID              `json:"id"`
	ReportID         uuid.UUID              `json:"report_id"`
	DocID            string                 `json:"doc_id"`
	Position         int                    `json:"position"`
	Owner            *constants.Ownership   `json:"owner,omitempty"`
	AssetName        string                 `json:"asset_name"`
	AssetType        string                 `json:"asset_type"`
	FilingStatus     constants.FilingStatus `json:"filing_status"`
	TradeType        constants.TradeType    `json:"trade_type"`
	AmountRange      constants.AmountRange  `json:"amount_range"`
	TradeDate        time.Time              `json:"trade_date"`
	NotificationDate *time.Time             `json:"notification_date,omitempty"`
	SourceURL        string                 `json:"source_url"`
	CreatedAt        time.Time              `json:"created_at"`
}
