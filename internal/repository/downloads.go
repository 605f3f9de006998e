package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mholloway/ptr-tracker/gen/ent"
	"github.com/mholloway/ptr-tracker/gen/ent/download"
	"github.com/mholloway/ptr-tracker/gen/ent/ocrresult"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

type DownloadRepository interface {
	GetByDocID(ctx context.Context, docID string) (*entity.Download, error)
	// Upsert records a fetch. The ETag is overwritten, never merged: the
	// row always reflects the last bytes actually stored.
	Upsert(ctx context.Context, d *entity.Download) (*entity.Download, error)
}

type downloadRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDownloadRepository(client *ent.Client, logger *slog.Logger) DownloadRepository {
	return &downloadRepository{client: client, logger: logger}
}

func (r *downloadRepository) GetByDocID(ctx context.Context, docID string) (*entity.Download, error) {
	rec, err := r.client.Download.Query().Where(download.DocID(docID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query download %s: %w", docID, err)
	}
	return toDownload(rec), nil
}

func (r *downloadRepository) Upsert(ctx context.Context, d *entity.Download) (*entity.Download, error) {
	existing, err := r.client.Download.Query().Where(download.DocID(d.DocID)).Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query download %s: %w", d.DocID, err)
	}

	if existing == nil {
		rec, err := r.client.Download.Create().
			SetDocID(d.DocID).
			SetEtag(d.ETag).
			SetStorageURI(d.StorageURI).
			SetFetchedAt(d.FetchedAt).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create download %s: %w", d.DocID, err)
		}
		return toDownload(rec), nil
	}

	rec, err := existing.Update().
		SetEtag(d.ETag).
		SetStorageURI(d.StorageURI).
		SetFetchedAt(d.FetchedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update download %s: %w", d.DocID, err)
	}
	return toDownload(rec), nil
}

type OcrResultRepository interface {
	// GetLatestByDocID returns the newest extracted text record for a
	// document, or common.ErrNotFound.
	GetLatestByDocID(ctx context.Context, docID string) (*entity.OcrResult, error)
	Create(ctx context.Context, o *entity.OcrResult) (*entity.OcrResult, error)
}

type ocrResultRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOcrResultRepository(client *ent.Client, logger *slog.Logger) OcrResultRepository {
	return &ocrResultRepository{client: client, logger: logger}
}

func (r *ocrResultRepository) GetLatestByDocID(ctx context.Context, docID string) (*entity.OcrResult, error) {
	rec, err := r.client.OcrResult.Query().
		Where(ocrresult.DocID(docID)).
		Order(ent.Desc(ocrresult.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query ocr result %s: %w", docID, err)
	}
	return toOcrResult(rec), nil
}

func (r *ocrResultRepository) Create(ctx context.Context, o *entity.OcrResult) (*entity.OcrResult, error) {
	created := o.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	rec, err := r.client.OcrResult.Create().
		SetDocID(o.DocID).
		SetDownloadID(int(o.DownloadID)).
		SetStorageURI(o.StorageURI).
		SetCreatedAt(created).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create ocr result %s: %w", o.DocID, err)
	}
	return toOcrResult(rec), nil
}
