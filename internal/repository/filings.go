package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mholloway/ptr-tracker/gen/ent"
	"github.com/mholloway/ptr-tracker/gen/ent/filing"
	"github.com/mholloway/ptr-tracker/gen/ent/filinglist"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

type FilingListRepository interface {
	GetByYear(ctx context.Context, year int) (*entity.FilingList, error)
	Upsert(ctx context.Context, list *entity.FilingList) (*entity.FilingList, error)
}

type filingListRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFilingListRepository(client *ent.Client, logger *slog.Logger) FilingListRepository {
	return &filingListRepository{client: client, logger: logger}
}

func (r *filingListRepository) GetByYear(ctx context.Context, year int) (*entity.FilingList, error) {
	rec, err := r.client.FilingList.Query().Where(filinglist.Year(year)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query filing list for %d: %w", year, err)
	}
	return toFilingList(rec), nil
}

func (r *filingListRepository) Upsert(ctx context.Context, list *entity.FilingList) (*entity.FilingList, error) {
	existing, err := r.client.FilingList.Query().Where(filinglist.Year(list.Year)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query filing list for %d: %w", list.Year, err)
	}

	if existing == nil {
		rec, err := r.client.FilingList.Create().
			SetYear(list.Year).
			SetNillableEtag(list.ETag).
			SetStorageURI(list.StorageURI).
			SetParsed(list.Parsed).
			SetNillableParsedAt(list.ParsedAt).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create filing list for %d: %w", list.Year, err)
		}
		return toFilingList(rec), nil
	}

	rec, err := existing.Update().
		SetNillableEtag(list.ETag).
		SetStorageURI(list.StorageURI).
		SetParsed(list.Parsed).
		SetNillableParsedAt(list.ParsedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update filing list for %d: %w", list.Year, err)
	}
	return toFilingList(rec), nil
}

type FilingFilter struct {
	Year       int
	FilingType string
	Last       string
}

type FilingRepository interface {
	GetByDocID(ctx context.Context, docID string) (*entity.Filing, error)
	List(ctx context.Context, filter FilingFilter) ([]*entity.Filing, error)
	UpsertBatch(ctx context.Context, filings []entity.Filing) (int, error)
}

type filingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFilingRepository(client *ent.Client, logger *slog.Logger) FilingRepository {
	return &filingRepository{client: client, logger: logger}
}

func (r *filingRepository) GetByDocID(ctx context.Context, docID string) (*entity.Filing, error) {
	rec, err := r.client.Filing.Query().Where(filing.DocID(docID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query filing %s: %w", docID, err)
	}
	return toFiling(rec), nil
}

func (r *filingRepository) List(ctx context.Context, filter FilingFilter) ([]*entity.Filing, error) {
	q := r.client.Filing.Query()
	if filter.Year > 0 {
		q = q.Where(filing.Year(filter.Year))
	}
	if filter.FilingType != "" {
		q = q.Where(filing.FilingType(filter.FilingType))
	}
	if filter.Last != "" {
		q = q.Where(filing.LastEqualFold(filter.Last))
	}
	recs, err := q.Order(filing.ByFilingDate()).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list filings: %w", err)
	}

	result := make([]*entity.Filing, len(recs))
	for i, rec := range recs {
		result[i] = toFiling(rec)
	}
	return result, nil
}

// UpsertBatch inserts new rows and refreshes changed ones, keyed by DocID.
// Rows whose RawRow is unchanged are left untouched.
func (r *filingRepository) UpsertBatch(ctx context.Context, filings []entity.Filing) (int, error) {
	start := time.Now()
	var written int
	for i := range filings {
		f := &filings[i]
		existing, err := r.client.Filing.Query().Where(filing.DocID(f.DocID)).Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return written, fmt.Errorf("query filing %s: %w", f.DocID, err)
		}

		if existing == nil {
			_, err = r.client.Filing.Create().
				SetDocID(f.DocID).
				SetPrefix(f.Prefix).
				SetLast(f.Last).
				SetFirst(f.First).
				SetSuffix(f.Suffix).
				SetFilingType(f.FilingType).
				SetStateDst(f.StateDst).
				SetYear(f.Year).
				SetFilingDate(f.FilingDate).
				SetRawRow(f.RawRow).
				Save(ctx)
			if err != nil {
				return written, fmt.Errorf("create filing %s: %w", f.DocID, err)
			}
			written++
			continue
		}

		if existing.RawRow == f.RawRow {
			continue
		}
		_, err = existing.Update().
			SetPrefix(f.Prefix).
			SetLast(f.Last).
			SetFirst(f.First).
			SetSuffix(f.Suffix).
			SetFilingType(f.FilingType).
			SetStateDst(f.StateDst).
			SetYear(f.Year).
			SetFilingDate(f.FilingDate).
			SetRawRow(f.RawRow).
			Save(ctx)
		if err != nil {
			return written, fmt.Errorf("update filing %s: %w", f.DocID, err)
		}
		written++
	}
	r.logger.Debug("repository.filings.upsert_batch", "rows", len(filings), "written", written, "elapsed", time.Since(start))
	return written, nil
}
