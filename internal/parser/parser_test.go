package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

const sourceURL = "https://disclosures-clerk.house.gov/ptr-pdfs/2025/20032062.pdf"

// singleTradeDoc mirrors the text pdftotext produces for a one-transaction
// PTR. The filer header window and the transaction table layout match the
// clerk's current form.
const singleTradeDoc = `UNITED STATES HOUSE OF REPRESENTATIVES
PERIODIC TRANSACTION REPORT

Filing ID #20032062

FILER INFORMATION
Name:
Hon. Robert B. Aderholt
Status:
Member
AL04

TRANSACTIONS

ID Owner Asset Transaction Date Notification Amount
Type Date

GSK plc American Depositary Shares (GSK)
[ST]
S 07/28/2025 08/01/2025 $1,001 - $15,000
`

func TestNew_PartialConfigBackfillsDefaults(t *testing.T) {
	// Only the header window is set; the transaction windows must still get
	// their defaults or every anchor scan would see an empty context.
	p := New(Config{HeaderWindowLines: 8}, nil)

	result := p.ParseReport(singleTradeDoc, sourceURL)
	require.True(t, result.IsSuccess())

	report, ok := result.Data()
	require.True(t, ok)
	require.Len(t, report.Transactions, 1)
	assert.Equal(t, "GSK plc American Depositary Shares (GSK)", report.Transactions[0].AssetName)
}

func TestParseReport_SingleTransaction(t *testing.T) {
	p := New(DefaultConfig(), nil)

	result := p.ParseReport(singleTradeDoc, sourceURL)
	require.True(t, result.IsSuccess())
	assert.False(t, result.HasWarnings())

	report, ok := result.Data()
	require.True(t, ok)
	assert.Equal(t, "20032062", report.DocID)
	assert.Equal(t, sourceURL, report.SourceURL)

	assert.Equal(t, "Hon. Robert B. Aderholt", report.Filer.FullName)
	assert.Equal(t, constants.FilerStatusMember, report.Filer.Status)
	assert.Equal(t, "AL", report.Filer.State)
	assert.Equal(t, 4, report.Filer.District)

	require.Len(t, report.Transactions, 1)
	tx := report.Transactions[0]
	assert.Equal(t, "GSK plc American Depositary Shares (GSK)", tx.AssetName)
	assert.Equal(t, "ST", tx.AssetType)
	assert.Equal(t, constants.TradeSale, tx.TradeType)
	assert.Equal(t, constants.Amount1KTo15K, tx.AmountRange)
	assert.Equal(t, constants.FilingStatusNew, tx.FilingStatus)
	assert.Nil(t, tx.Owner)
	assert.Equal(t, time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC), tx.TradeDate)
	require.NotNil(t, tx.NotificationDate)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), *tx.NotificationDate)
}

func TestParseReport_CyrillicTradeType(t *testing.T) {
	// The OCR output renders purchase markers with the Cyrillic glyph Р.
	doc := strings.Replace(singleTradeDoc,
		"S 07/28/2025 08/01/2025", "Р 07/28/2025 08/01/2025", 1)
	p := New(DefaultConfig(), nil)

	result := p.ParseReport(doc, sourceURL)
	require.True(t, result.IsSuccess())

	report, _ := result.Data()
	require.Len(t, report.Transactions, 1)
	assert.Equal(t, constants.TradePurchase, report.Transactions[0].TradeType)
}

func TestParseReport_SpouseOwnership(t *testing.T) {
	doc := strings.Replace(singleTradeDoc,
		"GSK plc American Depositary Shares (GSK)\n[ST]",
		"SP\nGSK plc American Depositary Shares (GSK)\n[ST]", 1)
	p := New(DefaultConfig(), nil)

	result := p.ParseReport(doc, sourceURL)
	require.True(t, result.IsSuccess())

	report, _ := result.Data()
	require.Len(t, report.Transactions, 1)
	require.NotNil(t, report.Transactions[0].Owner)
	assert.Equal(t, constants.OwnerSpouse, *report.Transactions[0].Owner)
}

func TestParseReport_MissingFilingID(t *testing.T) {
	p := New(DefaultConfig(), nil)

	result := p.ParseReport("PERIODIC TRANSACTION REPORT\nno identity here\n", sourceURL)
	require.True(t, result.IsError())

	_, ok := result.Data()
	assert.False(t, ok)

	errs := result.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, entity.DocIDUnknown, errs[0].DocID)
	assert.Equal(t, constants.SeverityError, errs[0].Severity)
	assert.Equal(t, constants.IssueDocumentStructure, errs[0].Category)
}

func TestParseReport_MissingFilerBlock(t *testing.T) {
	p := New(DefaultConfig(), nil)

	result := p.ParseReport("Filing ID #20032062\nno header follows\n", sourceURL)
	require.True(t, result.IsError())

	errs := result.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "20032062", errs[0].DocID)
	assert.Equal(t, constants.IssueFilerInformation, errs[0].Category)
}

func TestParseReport_TruncatedFilerBlock(t *testing.T) {
	p := New(DefaultConfig(), nil)

	result := p.ParseReport("Filing ID #20032062\n\nFILER INFORMATION\nName:", sourceURL)
	require.True(t, result.IsError())

	errs := result.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, constants.IssueFilerInformation, errs[0].Category)
	assert.Contains(t, errs[0].Message, "enough lines")
}

func TestParseReport_IncompleteHeaderIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		drop    string
		message string
	}{
		{name: "no filer name", drop: "Hon. Robert B. Aderholt", message: "filer name"},
		{name: "no status keyword", drop: "Member", message: "filer status"},
		{name: "no state district", drop: "AL04", message: "state/district"},
	}

	p := New(DefaultConfig(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(singleTradeDoc, tt.drop, "", 1)
			result := p.ParseReport(doc, sourceURL)
			require.True(t, result.IsError())

			errs := result.Errors()
			require.Len(t, errs, 1)
			assert.Contains(t, errs[0].Message, tt.message)
			assert.Equal(t, "FILER INFORMATION block", errs[0].Location)
		})
	}
}

func TestParseReport_BrokenAnchorIsWarning(t *testing.T) {
	// A second anchor with nothing but blank lines above it cannot yield an
	// asset name. The report still carries the transaction that did parse.
	doc := singleTradeDoc + strings.Repeat("\n", 12) +
		"[ST]\nS 03/14/2025 03/20/2025 $15,001 - $50,000\n"
	p := New(DefaultConfig(), nil)

	result := p.ParseReport(doc, sourceURL)
	require.True(t, result.IsSuccess())
	require.True(t, result.HasWarnings())

	report, ok := result.Data()
	require.True(t, ok)
	require.Len(t, report.Transactions, 1)
	assert.Equal(t, "GSK plc American Depositary Shares (GSK)", report.Transactions[0].AssetName)

	warns := result.Warnings()
	require.Len(t, warns, 1)
	assert.Equal(t, "20032062", warns[0].DocID)
	assert.Equal(t, constants.SeverityWarning, warns[0].Severity)
	assert.Equal(t, constants.IssueTransaction, warns[0].Category)
	assert.Equal(t, "transaction #2", warns[0].Location)
	assert.Contains(t, warns[0].Details, "asset name")
}

func TestParseReport_UnknownAmountPairDropsTransaction(t *testing.T) {
	doc := strings.Replace(singleTradeDoc, "$1,001 - $15,000", "$1,001 - $20,000", 1)
	p := New(DefaultConfig(), nil)

	result := p.ParseReport(doc, sourceURL)
	require.True(t, result.IsSuccess())
	require.True(t, result.HasWarnings())

	report, _ := result.Data()
	assert.Empty(t, report.Transactions)

	warns := result.Warnings()
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Details, "unknown amount range")
}

func TestReconstructAssetName(t *testing.T) {
	p := New(DefaultConfig(), nil)

	tests := []struct {
		name   string
		before string
		want   string
	}{
		{
			name:   "single line",
			before: "TRANSACTIONS\n\nApple Inc. Common Stock (AAPL)\n",
			want:   "Apple Inc. Common Stock (AAPL)",
		},
		{
			name:   "wrapped over two lines",
			before: "TRANSACTIONS\n\nVanguard Total Stock Market\nIndex Fund (VTI)\n",
			want:   "Vanguard Total Stock Market Index Fund (VTI)",
		},
		{
			name:   "owner code and date rows skipped",
			before: "SP\n01/15/2025\nMicrosoft Corporation (MSFT)\n",
			want:   "Microsoft Corporation (MSFT)",
		},
		{
			name:   "trailing trade type letter stripped",
			before: "Tesla Motors (TSLA) S\n",
			want:   "Tesla Motors (TSLA)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.reconstructAssetName(tt.before)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReconstructAssetName_AllNoise(t *testing.T) {
	p := New(DefaultConfig(), nil)

	_, err := p.reconstructAssetName("SP\n01/15/2025\n$1,001 - $15,000\n\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "asset name")
}

func TestFindAmountRange_TopBucketWarning(t *testing.T) {
	bucket, warns, err := findAmountRange("$50,000,001 - $100")
	require.NoError(t, err)
	assert.Equal(t, constants.AmountOver50M, bucket)
	require.Len(t, warns, 1)
	assert.Equal(t, constants.SeverityWarning, warns[0].Severity)
	assert.Contains(t, warns[0].Message, "open top bucket")
}

func TestFindDates_CorruptNotificationDateDropped(t *testing.T) {
	trade, notification, err := findDates("07/28/2025 13/45/2025 $1,001 - $15,000")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC), trade)
	assert.Nil(t, notification)
}
