package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/gen/ent"
	"github.com/mholloway/ptr-tracker/gen/ent/download"
	"github.com/mholloway/ptr-tracker/gen/ent/filing"
	"github.com/mholloway/ptr-tracker/gen/ent/ocrresult"
	"github.com/mholloway/ptr-tracker/gen/ent/parseissue"
	"github.com/mholloway/ptr-tracker/gen/ent/report"
	"github.com/mholloway/ptr-tracker/gen/ent/transaction"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

type StatsRepository interface {
	// Snapshot counts pipeline progress. A year of 0 covers everything;
	// otherwise counts are scoped to that year's filings.
	Snapshot(ctx context.Context, year int) (*entity.StatsSnapshot, error)
}

type statsRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewStatsRepository(client *ent.Client, logger *slog.Logger) StatsRepository {
	return &statsRepository{client: client, logger: logger}
}

func (r *statsRepository) Snapshot(ctx context.Context, year int) (*entity.StatsSnapshot, error) {
	snap := &entity.StatsSnapshot{Year: year}

	filingQuery := func() *ent.FilingQuery {
		q := r.client.Filing.Query()
		if year > 0 {
			q = q.Where(filing.Year(year))
		}
		return q
	}

	// Downstream tables carry no year column; they are scoped through the
	// year's doc IDs.
	var docIDs []string
	if year > 0 {
		ids, err := filingQuery().Select(filing.FieldDocID).Strings(ctx)
		if err != nil {
			return nil, fmt.Errorf("list doc ids for %d: %w", year, err)
		}
		docIDs = ids
	}

	counts := []struct {
		name string
		dst  *int
		run  func(context.Context) (int, error)
	}{
		{"filings", &snap.Filings, filingQuery().Count},
		{"ptr_filings", &snap.PtrFilings, filingQuery().Where(filing.FilingType(constants.FilingTypePtr)).Count},
		{"downloads", &snap.Downloads, func(ctx context.Context) (int, error) {
			q := r.client.Download.Query()
			if year > 0 {
				q = q.Where(download.DocIDIn(docIDs...))
			}
			return q.Count(ctx)
		}},
		{"ocr_results", &snap.OcrResults, func(ctx context.Context) (int, error) {
			q := r.client.OcrResult.Query()
			if year > 0 {
				q = q.Where(ocrresult.DocIDIn(docIDs...))
			}
			return q.Count(ctx)
		}},
		{"reports", &snap.Reports, func(ctx context.Context) (int, error) {
			q := r.client.Report.Query()
			if year > 0 {
				q = q.Where(report.DocIDIn(docIDs...))
			}
			return q.Count(ctx)
		}},
		{"transactions", &snap.Transactions, func(ctx context.Context) (int, error) {
			q := r.client.Transaction.Query()
			if year > 0 {
				q = q.Where(transaction.DocIDIn(docIDs...))
			}
			return q.Count(ctx)
		}},
		{"warnings", &snap.Warnings, func(ctx context.Context) (int, error) {
			q := r.client.ParseIssue.Query().Where(parseissue.Severity(string(constants.SeverityWarning)))
			if year > 0 {
				q = q.Where(parseissue.DocIDIn(docIDs...))
			}
			return q.Count(ctx)
		}},
		{"errors", &snap.Errors, func(ctx context.Context) (int, error) {
			q := r.client.ParseIssue.Query().Where(parseissue.Severity(string(constants.SeverityError)))
			if year > 0 {
				q = q.Where(parseissue.DocIDIn(docIDs...))
			}
			return q.Count(ctx)
		}},
	}
	for _, c := range counts {
		n, err := c.run(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dst = n
	}
	return snap, nil
}
