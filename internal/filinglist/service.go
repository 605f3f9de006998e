package filinglist

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/house"
	"github.com/mholloway/ptr-tracker/internal/store"
)

// ListRepository persists per-year filing-list records.
type ListRepository interface {
	GetByYear(ctx context.Context, year int) (*entity.FilingList, error)
	Upsert(ctx context.Context, list *entity.FilingList) (*entity.FilingList, error)
}

// FilingRepository persists filing-list rows keyed by DocID.
type FilingRepository interface {
	UpsertBatch(ctx context.Context, filings []entity.Filing) (int, error)
}

// Fetcher is the subset of the clerk client the ingest service needs.
type Fetcher interface {
	ProbeFilingListETag(ctx context.Context, year int) (string, error)
	FetchFilingList(ctx context.Context, year int) (*house.StoredResponse, error)
}

// IngestResult summarizes one year's filing-list refresh.
type IngestResult struct {
	Year    int
	Skipped bool
	Rows    int
	Upserts int
	Invalid int
}

// Service refreshes the yearly filing list: download the ZIP, extract the
// TSV, parse its rows and upsert them by DocID.
type Service struct {
	fetcher       Fetcher
	blobs         store.BlobStore
	lists         ListRepository
	filings       FilingRepository
	storagePrefix string
	logger        *slog.Logger
	now           func() time.Time
}

func NewService(fetcher Fetcher, blobs store.BlobStore, lists ListRepository, filings FilingRepository, storagePrefix string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		fetcher:       fetcher,
		blobs:         blobs,
		lists:         lists,
		filings:       filings,
		storagePrefix: strings.TrimRight(storagePrefix, "/"),
		logger:        logger,
		now:           time.Now,
	}
}

// Ingest refreshes one year's filing list. When force is false and the
// clerk's ETag matches the stored one, the download and re-parse are
// skipped entirely.
func (s *Service) Ingest(ctx context.Context, year int, force bool) (*IngestResult, error) {
	if year < constants.MinimumDisclosureYear {
		return nil, common.NewAppError("INVALID_YEAR",
			fmt.Sprintf("disclosure lists start in %d", constants.MinimumDisclosureYear), common.ErrInvalidInput)
	}

	existing, err := s.lists.GetByYear(ctx, year)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("load filing list record for %d: %w", year, err)
	}

	etag, probeErr := s.fetcher.ProbeFilingListETag(ctx, year)
	if probeErr != nil {
		return nil, fmt.Errorf("probe filing list for %d: %w", year, probeErr)
	}

	if !force && existing != nil && existing.Parsed && existing.ETag != nil && etag != "" && *existing.ETag == etag {
		s.logger.Info("filinglist.ingest.unchanged", "year", year, "etag", etag)
		return &IngestResult{Year: year, Skipped: true}, nil
	}

	stored, err := s.fetcher.FetchFilingList(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("fetch filing list for %d: %w", year, err)
	}

	tsv, err := s.extractTSV(ctx, stored.URI, year)
	if err != nil {
		return nil, err
	}

	filings, skipped, err := ParseTSV(bytes.NewReader(tsv))
	if err != nil {
		return nil, fmt.Errorf("parse filing list for %d: %w", year, err)
	}
	if skipped > 0 {
		s.logger.Warn("filinglist.ingest.rows_skipped", "year", year, "skipped", skipped)
	}

	upserts, err := s.filings.UpsertBatch(ctx, filings)
	if err != nil {
		return nil, fmt.Errorf("upsert filings for %d: %w", year, err)
	}

	now := s.now()
	record := &entity.FilingList{
		Year:       year,
		StorageURI: stored.URI,
		Parsed:     true,
		ParsedAt:   &now,
	}
	if e := firstNonEmpty(stored.ETag, etag); e != "" {
		record.ETag = &e
	}
	if _, err := s.lists.Upsert(ctx, record); err != nil {
		return nil, fmt.Errorf("record filing list for %d: %w", year, err)
	}

	s.logger.Info("filinglist.ingest.ok", "year", year, "rows", len(filings), "upserts", upserts, "invalid", skipped)
	return &IngestResult{Year: year, Rows: len(filings), Upserts: upserts, Invalid: skipped}, nil
}

// extractTSV pulls the yearly TSV entry out of the stored ZIP and writes
// it back to blob storage alongside the archive.
func (s *Service) extractTSV(ctx context.Context, zipURI string, year int) ([]byte, error) {
	raw, err := store.ReadAll(ctx, s.blobs, zipURI)
	if err != nil {
		return nil, fmt.Errorf("read filing list zip: %w", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, fmt.Errorf("open filing list zip: %w", err)
	}

	want := constants.FilingListFileName(year)
	var tsv []byte
	for _, f := range zr.File {
		if f.Name != want {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s in zip: %w", want, err)
		}
		tsv, err = readAndClose(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s from zip: %w", want, err)
		}
		break
	}
	if tsv == nil {
		return nil, fmt.Errorf("filing list zip is missing %s", want)
	}

	tsvURI := s.storagePrefix + "/" + constants.FilingListTsvStorageKey(year)
	if err := s.blobs.Put(ctx, tsvURI, bytes.NewReader(tsv), int64(len(tsv)), "text/tab-separated-values"); err != nil {
		return nil, fmt.Errorf("store filing list tsv: %w", err)
	}
	return tsv, nil
}

func readAndClose(rc io.ReadCloser) ([]byte, error) {
	defer func() {
		_ = rc.Close()
	}()
	return io.ReadAll(rc)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
