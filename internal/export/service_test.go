package export

import (
	"bytes"
	"context"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/repository"
)

type fakeReportRepo struct {
	txs        []*entity.Transaction
	lastFilter repository.TransactionFilter
}

func (f *fakeReportRepo) GetByDocID(ctx context.Context, docID string) (*entity.Report, []*entity.Transaction, error) {
	return nil, nil, common.ErrNotFound
}

func (f *fakeReportRepo) ListTransactions(ctx context.Context, filter repository.TransactionFilter) ([]*entity.Transaction, error) {
	f.lastFilter = filter
	return f.txs, nil
}

func (f *fakeReportRepo) Replace(ctx context.Context, parsed *entity.ParsedReport) (*entity.Report, error) {
	return nil, nil
}

type fakeFilingRepo struct {
	byDocID map[string]*entity.Filing
}

func (f *fakeFilingRepo) GetByDocID(ctx context.Context, docID string) (*entity.Filing, error) {
	filing, ok := f.byDocID[docID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return filing, nil
}

func (f *fakeFilingRepo) List(ctx context.Context, filter repository.FilingFilter) ([]*entity.Filing, error) {
	return nil, nil
}

func (f *fakeFilingRepo) UpsertBatch(ctx context.Context, filings []entity.Filing) (int, error) {
	return 0, nil
}

func TestExportTransactionsXLSX(t *testing.T) {
	owner := constants.OwnerSpouse
	reports := &fakeReportRepo{txs: []*entity.Transaction{
		{
			DocID:        "20032062",
			AssetName:    "GSK plc American Depositary Shares (GSK)",
			AssetType:    "ST",
			FilingStatus: constants.FilingStatusNew,
			TradeType:    constants.TradeSale,
			AmountRange:  constants.Amount1KTo15K,
			TradeDate:    time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
			SourceURL:    "https://disclosures-clerk.house.gov/ptr-pdfs/2025/20032062.pdf",
		},
		{
			DocID:        "10063241",
			Owner:        &owner,
			AssetName:    "Apple Inc. (AAPL)",
			AssetType:    "ST",
			FilingStatus: constants.FilingStatusNew,
			TradeType:    constants.TradePurchase,
			AmountRange:  constants.Amount15KTo50K,
			TradeDate:    time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC),
		},
	}}
	filings := &fakeFilingRepo{byDocID: map[string]*entity.Filing{
		"20032062": {
			DocID:    "20032062",
			Prefix:   "Hon.",
			Last:     "Aderholt",
			First:    "Robert B.",
			StateDst: "AL04",
		},
	}}

	svc := NewService(reports, filings, nil)
	data, err := svc.ExportTransactionsXLSX(context.Background(), nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() {
		_ = wb.Close()
	}()

	assert.Equal(t, []string{"Transactions"}, wb.GetSheetList())

	rows, err := wb.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Trade Date", rows[0][0])
	assert.Equal(t, "Source", rows[0][10])

	first := rows[1]
	assert.Equal(t, "2025-07-28", first[0])
	assert.Equal(t, "Hon. Robert B. Aderholt", first[1])
	assert.Equal(t, "AL04", first[2])
	assert.Equal(t, "GSK plc American Depositary Shares (GSK)", first[3])
	assert.Equal(t, "SALE", first[5])
	assert.Equal(t, "1001-15000", first[7])
	assert.Equal(t, "20032062", first[9])

	// No filing row resolved: the representative columns stay blank.
	second := rows[2]
	assert.Equal(t, "2025-08-02", second[0])
	assert.Equal(t, "", second[1])
	assert.Equal(t, "SPOUSE", second[6])
}

func TestExportTransactionsXLSX_DateWindowNormalized(t *testing.T) {
	reports := &fakeReportRepo{}
	svc := NewService(reports, &fakeFilingRepo{}, nil)

	loc := time.FixedZone("CST", -6*60*60)
	from := time.Date(2025, 1, 15, 23, 45, 0, 0, loc)
	to := time.Date(2025, 8, 4, 8, 30, 0, 0, loc)

	_, err := svc.ExportTransactionsXLSX(context.Background(), &from, &to)
	require.NoError(t, err)

	require.NotNil(t, reports.lastFilter.FromDate)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), *reports.lastFilter.FromDate)
	require.NotNil(t, reports.lastFilter.ToDate)
	assert.Equal(t, time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC), *reports.lastFilter.ToDate)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "short string untouched", in: "GSK plc", n: 140, want: "GSK plc"},
		{name: "ascii truncated", in: "abcdef", n: 4, want: "abc…"},
		{name: "multibyte near the cut survives", in: "Société Générale SA", n: 8, want: "Société…"},
		{name: "zero limit means no limit", in: "abcdef", n: 0, want: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
