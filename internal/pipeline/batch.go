package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/filinglist"
	"github.com/mholloway/ptr-tracker/internal/repository"
)

// Stats accumulates what one batch run did.
type Stats struct {
	Year         int
	Attempted    int
	Unchanged    int
	Downloaded   int
	OCRd         int
	Parsed       int
	Transactions int
	Failures     int
}

// FilingSource lists the filings a batch run should process.
type FilingSource interface {
	List(ctx context.Context, filter repository.FilingFilter) ([]*entity.Filing, error)
}

// Batch drives a whole disclosure year: refresh the filing list, then run
// every PTR document through the processor sequentially. One document's
// failure never stops the rest of the batch.
type Batch struct {
	lists     *filinglist.Service
	filings   FilingSource
	processor *Processor
	logger    *slog.Logger
}

func NewBatch(lists *filinglist.Service, filings FilingSource, processor *Processor, logger *slog.Logger) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	return &Batch{lists: lists, filings: filings, processor: processor, logger: logger}
}

// ProcessYear refreshes the year's filing list and processes its PTR
// documents. The returned error covers setup only; per-document failures
// are counted in Stats.Failures.
func (b *Batch) ProcessYear(ctx context.Context, year int, force bool) (*Stats, error) {
	if _, err := b.lists.Ingest(ctx, year, force); err != nil {
		return nil, fmt.Errorf("ingest filing list for %d: %w", year, err)
	}

	ptrs, err := b.filings.List(ctx, repository.FilingFilter{
		Year:       year,
		FilingType: constants.FilingTypePtr,
	})
	if err != nil {
		return nil, fmt.Errorf("list PTR filings for %d: %w", year, err)
	}

	stats := &Stats{Year: year}
	for _, filing := range ptrs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		stats.Attempted++
		b.processOne(ctx, filing, force, stats)
	}

	b.logger.Info("pipeline.batch.done",
		"year", year,
		"attempted", stats.Attempted,
		"unchanged", stats.Unchanged,
		"downloaded", stats.Downloaded,
		"parsed", stats.Parsed,
		"transactions", stats.Transactions,
		"failures", stats.Failures)
	return stats, nil
}

func (b *Batch) processOne(ctx context.Context, filing *entity.Filing, force bool, stats *Stats) {
	outcome, err := b.processor.Process(ctx, filing, force)
	if err != nil {
		stats.Failures++
		b.logger.Error("pipeline.batch.document_failed", "doc_id", filing.DocID, "error", err)
		return
	}

	if outcome.Unchanged {
		stats.Unchanged++
		return
	}
	if outcome.Fetched {
		stats.Downloaded++
	}
	if outcome.OCRd {
		stats.OCRd++
	}
	if outcome.Parsed {
		stats.Parsed++
		stats.Transactions += outcome.Transactions
	} else {
		stats.Failures++
	}
}
