package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	reports repository.ReportRepository
	filings repository.FilingRepository
	logger  *slog.Logger
}

func NewService(reports repository.ReportRepository, filings repository.FilingRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{reports: reports, filings: filings, logger: logger}
}

// ExportTransactionsXLSX returns an XLSX workbook (as bytes) of transactions
// in the given trade-date window. A nil bound leaves that side open.
func (s *Service) ExportTransactionsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	txs, err := s.reports.ListTransactions(ctx, repository.TransactionFilter{
		FromDate: fromDate,
		ToDate:   toDate,
	})
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{
		"Trade Date",
		"Representative",
		"State/District",
		"Asset",
		"Type",
		"Trade",
		"Owner",
		"Amount Range",
		"Filing Status",
		"Doc ID",
		"Source",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	// Filing rows are looked up once per document, not once per transaction.
	filingCache := map[string]*entity.Filing{}

	row := 2
	for _, t := range txs {
		filing := filingCache[t.DocID]
		if filing == nil {
			filing, err = s.filings.GetByDocID(ctx, t.DocID)
			if err != nil && !errors.Is(err, common.ErrNotFound) {
				return nil, fmt.Errorf("resolve filing %s: %w", t.DocID, err)
			}
			filingCache[t.DocID] = filing
		}

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, t.TradeDate.Format("2006-01-02"))
		if filing != nil {
			write(2, filing.RepresentativeName())
			write(3, filing.StateDst)
		}
		write(4, truncate(t.AssetName, 140))
		write(5, t.AssetType)
		write(6, string(t.TradeType))
		if t.Owner != nil {
			write(7, string(*t.Owner))
		}
		write(8, string(t.AmountRange))
		write(9, string(t.FilingStatus))
		write(10, t.DocID)
		write(11, t.SourceURL)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 26) // representative
	_ = f.SetColWidth(sheet, "C", "C", 12)
	_ = f.SetColWidth(sheet, "D", "D", 48) // asset
	_ = f.SetColWidth(sheet, "E", "G", 12)
	_ = f.SetColWidth(sheet, "H", "H", 20)
	_ = f.SetColWidth(sheet, "J", "K", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(txs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return string(runes[:1])
	}
	return string(runes[:n-1]) + "…"
}
