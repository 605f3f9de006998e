package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/filinglist"
	"github.com/mholloway/ptr-tracker/internal/house"
	"github.com/mholloway/ptr-tracker/internal/parser"
	"github.com/mholloway/ptr-tracker/internal/repository"
)

type fakeFilingSource struct {
	filings    []*entity.Filing
	lastFilter repository.FilingFilter
}

func (f *fakeFilingSource) List(ctx context.Context, filter repository.FilingFilter) ([]*entity.Filing, error) {
	f.lastFilter = filter
	return f.filings, nil
}

type batchListRepo struct {
	list *entity.FilingList
}

func (r *batchListRepo) GetByYear(ctx context.Context, year int) (*entity.FilingList, error) {
	if r.list == nil {
		return nil, common.ErrNotFound
	}
	return r.list, nil
}

func (r *batchListRepo) Upsert(ctx context.Context, list *entity.FilingList) (*entity.FilingList, error) {
	r.list = list
	return list, nil
}

type batchListFetcher struct {
	etag string
}

func (f *batchListFetcher) ProbeFilingListETag(ctx context.Context, year int) (string, error) {
	return f.etag, nil
}

func (f *batchListFetcher) FetchFilingList(ctx context.Context, year int) (*house.StoredResponse, error) {
	return nil, errors.New("unexpected fetch")
}

type batchFilingsRepo struct{}

func (batchFilingsRepo) UpsertBatch(ctx context.Context, filings []entity.Filing) (int, error) {
	return len(filings), nil
}

// selectiveFetcher fails specific documents to exercise per-document
// failure isolation.
type selectiveFetcher struct {
	fail map[string]bool
}

func (f *selectiveFetcher) FetchPtr(ctx context.Context, docID string, year int) (*house.StoredResponse, error) {
	if f.fail[docID] {
		return nil, errors.New("404 not found")
	}
	return &house.StoredResponse{URI: "file:///blobs/" + docID + ".pdf", ETag: "v1"}, nil
}

// ingestedList returns a list service whose stored record already matches
// the remote fingerprint, so ProcessYear's refresh is a no-op.
func ingestedList(year int) *filinglist.Service {
	etag := "z1"
	lists := &batchListRepo{list: &entity.FilingList{Year: year, ETag: &etag, Parsed: true}}
	return filinglist.NewService(&batchListFetcher{etag: etag}, newMemBlobs(), lists, batchFilingsRepo{}, "file:///blobs", nil)
}

func TestProcessYear(t *testing.T) {
	good := testFiling()
	bad := &entity.Filing{DocID: "10063241", FilingType: constants.FilingTypePtr, Year: 2025}
	source := &fakeFilingSource{filings: []*entity.Filing{good, bad}}

	issues := &fakeIssues{}
	reports := &fakeReports{}
	processor := NewProcessor(ProcessorDeps{
		Cache:         NewFingerprintCache(&fakeProber{etag: "v1"}, newFakeDownloads(), time.Minute, nil),
		Fetcher:       &selectiveFetcher{fail: map[string]bool{"10063241": true}},
		Extractor:     &fakeExtractor{text: "extracted text"},
		Parser:        &fakeParser{result: parser.Ok(parsedReport("20032062", 3))},
		Blobs:         newMemBlobs(),
		Downloads:     newFakeDownloads(),
		OcrResults:    &fakeOcrResults{},
		Reports:       reports,
		Issues:        issues,
		StoragePrefix: "file:///blobs",
	}, nil)

	batch := NewBatch(ingestedList(2025), source, processor, nil)
	stats, err := batch.ProcessYear(context.Background(), 2025, false)
	require.NoError(t, err)

	assert.Equal(t, 2025, source.lastFilter.Year)
	assert.Equal(t, constants.FilingTypePtr, source.lastFilter.FilingType)

	assert.Equal(t, 2025, stats.Year)
	assert.Equal(t, 2, stats.Attempted)
	assert.Equal(t, 1, stats.Downloaded)
	assert.Equal(t, 1, stats.Parsed)
	assert.Equal(t, 3, stats.Transactions)
	assert.Equal(t, 1, stats.Failures)
	assert.Zero(t, stats.Unchanged)

	// The failed document left no report behind.
	require.Len(t, reports.replaced, 1)
	assert.Equal(t, "20032062", reports.replaced[0].DocID)
}

func TestProcessYear_ParseFailureCountsAsFailure(t *testing.T) {
	source := &fakeFilingSource{filings: []*entity.Filing{testFiling()}}
	issues := &fakeIssues{}
	processor := NewProcessor(ProcessorDeps{
		Cache:     NewFingerprintCache(&fakeProber{etag: "v1"}, newFakeDownloads(), time.Minute, nil),
		Fetcher:   &selectiveFetcher{},
		Extractor: &fakeExtractor{text: "garbled"},
		Parser: &fakeParser{result: parser.Fail[*entity.ParsedReport](entity.ParseIssue{
			DocID:    entity.DocIDUnknown,
			Severity: constants.SeverityError,
			Category: constants.IssueDocumentStructure,
			Message:  "could not extract document ID",
		})},
		Blobs:         newMemBlobs(),
		Downloads:     newFakeDownloads(),
		OcrResults:    &fakeOcrResults{},
		Reports:       &fakeReports{},
		Issues:        issues,
		StoragePrefix: "file:///blobs",
	}, nil)

	batch := NewBatch(ingestedList(2025), source, processor, nil)
	stats, err := batch.ProcessYear(context.Background(), 2025, false)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Attempted)
	assert.Equal(t, 1, stats.Failures)
	assert.Zero(t, stats.Parsed)

	// Diagnostics were still recorded for the failed parse.
	require.Len(t, issues.saved, 1)
	assert.Equal(t, "20032062", issues.saved[0].DocID)
}

func TestProcessYear_CancelledContextStopsBatch(t *testing.T) {
	source := &fakeFilingSource{filings: []*entity.Filing{testFiling(), testFiling()}}
	processor := NewProcessor(ProcessorDeps{
		Cache:         NewFingerprintCache(&fakeProber{etag: "v1"}, newFakeDownloads(), time.Minute, nil),
		Fetcher:       &selectiveFetcher{},
		Extractor:     &fakeExtractor{text: "extracted text"},
		Parser:        &fakeParser{result: parser.Ok(parsedReport("20032062", 1))},
		Blobs:         newMemBlobs(),
		Downloads:     newFakeDownloads(),
		OcrResults:    &fakeOcrResults{},
		Reports:       &fakeReports{},
		Issues:        &fakeIssues{},
		StoragePrefix: "file:///blobs",
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch := NewBatch(ingestedList(2025), source, processor, nil)
	stats, err := batch.ProcessYear(ctx, 2025, false)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Attempted)
}
