package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/constants"
)

const mapperSourceURL = "https://disclosures-clerk.house.gov/ptr-pdfs/2025/20032062.pdf"

func validReportFields() ReportFields {
	return ReportFields{
		DocID:       "20032062",
		FilerName:   "Hon. Robert B. Aderholt",
		FilerStatus: "MEMBER",
		State:       "AL",
		District:    4,
		Transactions: []TransactionFields{
			{
				Owner:            "SPOUSE",
				AssetName:        "GSK plc American Depositary Shares (GSK)",
				AssetType:        "ST",
				TradeType:        "SALE",
				TradeDate:        "2025-07-28",
				NotificationDate: "2025-08-01",
				MinAmount:        1_001,
				MaxAmount:        15_000,
			},
		},
	}
}

func TestMapReport(t *testing.T) {
	result := MapReport(validReportFields(), mapperSourceURL)
	require.True(t, result.IsSuccess())
	assert.False(t, result.HasWarnings())

	report, ok := result.Data()
	require.True(t, ok)
	assert.Equal(t, "20032062", report.DocID)
	assert.Equal(t, constants.FilerStatusMember, report.Filer.Status)
	assert.Equal(t, "AL", report.Filer.State)
	assert.Equal(t, 4, report.Filer.District)
	assert.Equal(t, mapperSourceURL, report.SourceURL)

	require.Len(t, report.Transactions, 1)
	tx := report.Transactions[0]
	assert.Equal(t, constants.TradeSale, tx.TradeType)
	assert.Equal(t, constants.Amount1KTo15K, tx.AmountRange)
	assert.Equal(t, time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC), tx.TradeDate)
	require.NotNil(t, tx.Owner)
	assert.Equal(t, constants.OwnerSpouse, *tx.Owner)
	require.NotNil(t, tx.NotificationDate)
	assert.Equal(t, time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC), *tx.NotificationDate)
}

func TestMapReport_FieldValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ReportFields)
	}{
		{name: "missing doc id", mutate: func(f *ReportFields) { f.DocID = "" }},
		{name: "non numeric doc id", mutate: func(f *ReportFields) { f.DocID = "abc123" }},
		{name: "missing filer name", mutate: func(f *ReportFields) { f.FilerName = "" }},
		{name: "bad state length", mutate: func(f *ReportFields) { f.State = "ALA" }},
		{name: "negative district", mutate: func(f *ReportFields) { f.District = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validReportFields()
			tt.mutate(&fields)

			result := MapReport(fields, mapperSourceURL)
			require.True(t, result.IsError())

			errs := result.Errors()
			require.Len(t, errs, 1)
			assert.Equal(t, constants.IssueDataValidation, errs[0].Category)
		})
	}
}

func TestMapReport_UnknownFilerStatusIsFatal(t *testing.T) {
	fields := validReportFields()
	fields.FilerStatus = "SENATOR"

	result := MapReport(fields, mapperSourceURL)
	require.True(t, result.IsError())

	errs := result.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, "20032062", errs[0].DocID)
	assert.Equal(t, constants.IssueFilerInformation, errs[0].Category)
	assert.Equal(t, "SENATOR", errs[0].Details)
}

func TestMapReport_BadTransactionsBecomeWarnings(t *testing.T) {
	fields := validReportFields()
	fields.Transactions = append(fields.Transactions,
		TransactionFields{
			AssetName: "Mystery Fund",
			TradeType: "PURCHASE",
			TradeDate: "2025-07-28",
			MinAmount: 1_001,
			MaxAmount: 20_000, // no such bucket
		},
		TransactionFields{
			AssetName: "Apple Inc. (AAPL)",
			TradeType: "PURCHASE",
			TradeDate: "July 28th", // not ISO
			MinAmount: 1_001,
			MaxAmount: 15_000,
		},
	)

	result := MapReport(fields, mapperSourceURL)
	require.True(t, result.IsSuccess())
	require.True(t, result.HasWarnings())

	report, _ := result.Data()
	require.Len(t, report.Transactions, 1)
	assert.Equal(t, "GSK plc American Depositary Shares (GSK)", report.Transactions[0].AssetName)

	warns := result.Warnings()
	require.Len(t, warns, 2)
	assert.Equal(t, "transaction #2", warns[0].Location)
	assert.Contains(t, warns[0].Message, "disclosure bucket")
	assert.Equal(t, "transaction #3", warns[1].Location)
	assert.Contains(t, warns[1].Message, "trade date")
	for _, w := range warns {
		assert.Equal(t, "20032062", w.DocID)
		assert.Equal(t, constants.SeverityWarning, w.Severity)
	}
}

func TestMapReport_OptionalFieldsDefault(t *testing.T) {
	fields := validReportFields()
	fields.Transactions[0].Owner = ""
	fields.Transactions[0].FilingStatus = ""
	fields.Transactions[0].NotificationDate = ""

	result := MapReport(fields, mapperSourceURL)
	require.True(t, result.IsSuccess())

	report, _ := result.Data()
	require.Len(t, report.Transactions, 1)
	tx := report.Transactions[0]
	assert.Nil(t, tx.Owner)
	assert.Nil(t, tx.NotificationDate)
	assert.Equal(t, constants.FilingStatusNew, tx.FilingStatus)
}
