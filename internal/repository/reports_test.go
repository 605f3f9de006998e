package repository

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/gen/ent"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	client, err := OpenSQLite(filepath.Join(t.TempDir(), "ptr.db"), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, Migrate(context.Background(), client, slog.Default()))
	return client
}

func sampleParsedReport(n int) *entity.ParsedReport {
	src := "https://disclosures-clerk.house.gov/ptr-pdfs/2025/20032062.pdf"
	report := &entity.ParsedReport{
		DocID: "20032062",
		Filer: entity.FilerInfo{
			FullName: "Hon. Robert B. Aderholt",
			Status:   constants.FilerStatusMember,
			State:    "AL",
			District: 4,
		},
		SourceURL: src,
	}
	for i := 0; i < n; i++ {
		report.Transactions = append(report.Transactions, entity.ParsedTransaction{
			AssetName:    fmt.Sprintf("Asset %d", i+1),
			AssetType:    "ST",
			FilingStatus: constants.FilingStatusNew,
			TradeType:    constants.TradeSale,
			AmountRange:  constants.Amount1KTo15K,
			TradeDate:    time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
			SourceURL:    src,
		})
	}
	return report
}

func TestReplace_ReprocessLeavesOneReport(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	reports := NewReportRepository(client, slog.Default())

	parsed := sampleParsedReport(3)
	_, err := reports.Replace(ctx, parsed)
	require.NoError(t, err)
	_, err = reports.Replace(ctx, parsed)
	require.NoError(t, err)

	count, err := client.Report.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, txs, err := reports.GetByDocID(ctx, "20032062")
	require.NoError(t, err)
	assert.Len(t, txs, 3)
}

func TestReplace_KeepsDocumentOrder(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	reports := NewReportRepository(client, slog.Default())

	parsed := sampleParsedReport(4)
	_, err := reports.Replace(ctx, parsed)
	require.NoError(t, err)

	_, txs, err := reports.GetByDocID(ctx, "20032062")
	require.NoError(t, err)
	require.Len(t, txs, 4)
	for i, tx := range txs {
		assert.Equal(t, i, tx.Position)
		assert.Equal(t, fmt.Sprintf("Asset %d", i+1), tx.AssetName)
	}
}

func TestSaveAll_IssuesAccumulateAcrossReprocessing(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	reports := NewReportRepository(client, slog.Default())
	issues := NewIssueRepository(client, slog.Default())

	issue := func(msg string) entity.ParseIssue {
		return entity.ParseIssue{
			DocID:    "20032062",
			Severity: constants.SeverityWarning,
			Category: constants.IssueDataValidation,
			Message:  msg,
			Location: "transaction #1",
		}
	}

	parsed := sampleParsedReport(2)
	_, err := reports.Replace(ctx, parsed)
	require.NoError(t, err)
	require.NoError(t, issues.SaveAll(ctx, []entity.ParseIssue{issue("first run")}))

	_, err = reports.Replace(ctx, parsed)
	require.NoError(t, err)
	require.NoError(t, issues.SaveAll(ctx, []entity.ParseIssue{issue("second run"), issue("second run again")}))

	saved, err := issues.ListByDocID(ctx, "20032062")
	require.NoError(t, err)
	assert.Len(t, saved, 3)

	count, err := client.Transaction.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
