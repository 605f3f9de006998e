package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mholloway/ptr-tracker/gen/ent"
	"github.com/mholloway/ptr-tracker/gen/ent/report"
	"github.com/mholloway/ptr-tracker/gen/ent/transaction"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

type TransactionFilter struct {
	DocID     string
	TradeType string
	AssetName string
	FromDate  *time.Time
	ToDate    *time.Time
	Limit     int
}

type ReportRepository interface {
	GetByDocID(ctx context.Context, docID string) (*entity.Report, []*entity.Transaction, error)
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
	// Replace atomically swaps the stored report for a document: the old
	// report and its transactions are deleted and the new rows inserted in
	// one transaction. Reprocessing is idempotent.
	Replace(ctx context.Context, parsed *entity.ParsedReport) (*entity.Report, error)
}

type reportRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReportRepository(client *ent.Client, logger *slog.Logger) ReportRepository {
	return &reportRepository{client: client, logger: logger}
}

func (r *reportRepository) GetByDocID(ctx context.Context, docID string) (*entity.Report, []*entity.Transaction, error) {
	rec, err := r.client.Report.Query().Where(report.DocID(docID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, common.ErrNotFound
		}
		return nil, nil, fmt.Errorf("query report %s: %w", docID, err)
	}

	txs, err := r.client.Transaction.Query().
		Where(transaction.ReportID(rec.ID)).
		Order(ent.Asc(transaction.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("query transactions for %s: %w", docID, err)
	}

	result := make([]*entity.Transaction, len(txs))
	for i, tx := range txs {
		result[i] = toTransaction(tx)
	}
	return toReport(rec), result, nil
}

func (r *reportRepository) ListTransactions(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error) {
	q := r.client.Transaction.Query()
	if filter.DocID != "" {
		q = q.Where(transaction.DocID(filter.DocID))
	}
	if filter.TradeType != "" {
		q = q.Where(transaction.TradeType(filter.TradeType))
	}
	if filter.AssetName != "" {
		q = q.Where(transaction.AssetNameContainsFold(filter.AssetName))
	}
	if filter.FromDate != nil {
		q = q.Where(transaction.TradeDateGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(transaction.TradeDateLTE(*filter.ToDate))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	txs, err := q.Order(transaction.ByTradeDate()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	result := make([]*entity.Transaction, len(txs))
	for i, tx := range txs {
		result[i] = toTransaction(tx)
	}
	return result, nil
}

func (r *reportRepository) Replace(ctx context.Context, parsed *entity.ParsedReport) (*entity.Report, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin replace for %s: %w", parsed.DocID, err)
	}

	rec, err := r.replaceInTx(ctx, tx, parsed)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.logger.Error("rollback failed", "doc_id", parsed.DocID, "error", rbErr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit replace for %s: %w", parsed.DocID, err)
	}

	r.logger.Info("repository.reports.replaced", "doc_id", parsed.DocID, "transactions", len(parsed.Transactions))
	return rec, nil
}

func (r *reportRepository) replaceInTx(ctx context.Context, tx *ent.Tx, parsed *entity.ParsedReport) (*entity.Report, error) {
	if _, err := tx.Transaction.Delete().
		Where(transaction.DocID(parsed.DocID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("delete transactions for %s: %w", parsed.DocID, err)
	}
	if _, err := tx.Report.Delete().
		Where(report.DocID(parsed.DocID)).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("delete report for %s: %w", parsed.DocID, err)
	}

	rec, err := tx.Report.Create().
		SetDocID(parsed.DocID).
		SetFilerName(parsed.Filer.FullName).
		SetFilerStatus(string(parsed.Filer.Status)).
		SetState(parsed.Filer.State).
		SetDistrict(parsed.Filer.District).
		SetSourceURL(parsed.SourceURL).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create report for %s: %w", parsed.DocID, err)
	}

	for i := range parsed.Transactions {
		t := &parsed.Transactions[i]
		builder := tx.Transaction.Create().
			SetReportID(rec.ID).
			SetDocID(parsed.DocID).
			SetPosition(i).
			SetAssetName(t.AssetName).
			SetAssetType(t.AssetType).
			SetFilingStatus(string(t.FilingStatus)).
			SetTradeType(string(t.TradeType)).
			SetAmountRange(string(t.AmountRange)).
			SetTradeDate(t.TradeDate).
			SetNillableNotificationDate(t.NotificationDate).
			SetSourceURL(t.SourceURL)
		if t.Owner != nil {
			builder = builder.SetOwner(string(*t.Owner))
		}
		if _, err := builder.Save(ctx); err != nil {
			return nil, fmt.Errorf("create transaction %d for %s: %w", i+1, parsed.DocID, err)
		}
	}

	return toReport(rec), nil
}
