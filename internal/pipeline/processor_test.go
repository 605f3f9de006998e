package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/house"
	"github.com/mholloway/ptr-tracker/internal/parser"
)

type fakeProber struct {
	etag  string
	err   error
	calls int
}

func (f *fakeProber) ProbePtrETag(ctx context.Context, docID string, year int) (string, error) {
	f.calls++
	return f.etag, f.err
}

type fakeDownloads struct {
	byDocID map[string]*entity.Download
	upserts int
}

func newFakeDownloads(existing ...*entity.Download) *fakeDownloads {
	f := &fakeDownloads{byDocID: make(map[string]*entity.Download)}
	for _, d := range existing {
		f.byDocID[d.DocID] = d
	}
	return f
}

func (f *fakeDownloads) GetByDocID(ctx context.Context, docID string) (*entity.Download, error) {
	d, ok := f.byDocID[docID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (f *fakeDownloads) Upsert(ctx context.Context, d *entity.Download) (*entity.Download, error) {
	f.upserts++
	d.ID = int64(f.upserts)
	f.byDocID[d.DocID] = d
	return d, nil
}

type fakeFetcher struct {
	resp  *house.StoredResponse
	err   error
	calls int
}

func (f *fakeFetcher) FetchPtr(ctx context.Context, docID string, year int) (*house.StoredResponse, error) {
	f.calls++
	return f.resp, f.err
}

type fakeExtractor struct {
	text  string
	err   error
	calls int
}

func (f *fakeExtractor) ExtractText(ctx context.Context, storageURI string) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeParser struct {
	result parser.Result[*entity.ParsedReport]
	calls  int
}

func (f *fakeParser) ParseReport(ocrText, sourceURL string) parser.Result[*entity.ParsedReport] {
	f.calls++
	return f.result
}

type memBlobs struct {
	objects map[string][]byte
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: make(map[string][]byte)}
}

func (m *memBlobs) Get(ctx context.Context, uri string) (io.ReadCloser, error) {
	data, ok := m.objects[uri]
	if !ok {
		return nil, common.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memBlobs) Put(ctx context.Context, uri string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[uri] = data
	return nil
}

type fakeOcrResults struct {
	latest  *entity.OcrResult
	created []*entity.OcrResult
}

func (f *fakeOcrResults) GetLatestByDocID(ctx context.Context, docID string) (*entity.OcrResult, error) {
	if f.latest == nil || f.latest.DocID != docID {
		return nil, common.ErrNotFound
	}
	return f.latest, nil
}

func (f *fakeOcrResults) Create(ctx context.Context, o *entity.OcrResult) (*entity.OcrResult, error) {
	o.ID = int64(len(f.created) + 1)
	f.created = append(f.created, o)
	return o, nil
}

type fakeReports struct {
	existing *entity.Report
	replaced []*entity.ParsedReport
}

func (f *fakeReports) GetByDocID(ctx context.Context, docID string) (*entity.Report, []*entity.Transaction, error) {
	if f.existing == nil || f.existing.DocID != docID {
		return nil, nil, common.ErrNotFound
	}
	return f.existing, nil, nil
}

func (f *fakeReports) Replace(ctx context.Context, parsed *entity.ParsedReport) (*entity.Report, error) {
	f.replaced = append(f.replaced, parsed)
	return &entity.Report{DocID: parsed.DocID}, nil
}

type fakeIssues struct {
	saved []entity.ParseIssue
	calls int
}

func (f *fakeIssues) SaveAll(ctx context.Context, issues []entity.ParseIssue) error {
	f.calls++
	f.saved = append(f.saved, issues...)
	return nil
}

type processorFixture struct {
	prober     *fakeProber
	downloads  *fakeDownloads
	fetcher    *fakeFetcher
	extractor  *fakeExtractor
	parser     *fakeParser
	blobs      *memBlobs
	ocrResults *fakeOcrResults
	reports    *fakeReports
	issues     *fakeIssues
	processor  *Processor
}

func newProcessorFixture(t *testing.T) *processorFixture {
	t.Helper()
	f := &processorFixture{
		prober:     &fakeProber{etag: "v1"},
		downloads:  newFakeDownloads(),
		fetcher:    &fakeFetcher{resp: &house.StoredResponse{URI: "file:///blobs/ptr.pdf", ETag: "v1"}},
		extractor:  &fakeExtractor{text: "extracted text"},
		parser:     &fakeParser{},
		blobs:      newMemBlobs(),
		ocrResults: &fakeOcrResults{},
		reports:    &fakeReports{},
		issues:     &fakeIssues{},
	}
	f.processor = NewProcessor(ProcessorDeps{
		Cache:         NewFingerprintCache(f.prober, f.downloads, time.Minute, nil),
		Fetcher:       f.fetcher,
		Extractor:     f.extractor,
		Parser:        f.parser,
		Blobs:         f.blobs,
		Downloads:     f.downloads,
		OcrResults:    f.ocrResults,
		Reports:       f.reports,
		Issues:        f.issues,
		StoragePrefix: "file:///blobs",
	}, nil)
	return f
}

func testFiling() *entity.Filing {
	return &entity.Filing{
		DocID:      "20032062",
		Last:       "Aderholt",
		First:      "Robert B.",
		FilingType: constants.FilingTypePtr,
		Year:       2025,
	}
}

func parsedReport(docID string, transactions int) *entity.ParsedReport {
	report := &entity.ParsedReport{
		DocID: docID,
		Filer: entity.FilerInfo{
			FullName: "Hon. Robert B. Aderholt",
			Status:   constants.FilerStatusMember,
			State:    "AL",
			District: 4,
		},
		SourceURL: constants.PtrDocURL(docID, 2025),
	}
	for i := 0; i < transactions; i++ {
		report.Transactions = append(report.Transactions, entity.ParsedTransaction{
			AssetName:    "GSK plc American Depositary Shares (GSK)",
			AssetType:    "ST",
			FilingStatus: constants.FilingStatusNew,
			TradeType:    constants.TradeSale,
			AmountRange:  constants.Amount1KTo15K,
			TradeDate:    time.Date(2025, 7, 28, 0, 0, 0, 0, time.UTC),
			SourceURL:    report.SourceURL,
		})
	}
	return report
}

func TestProcess_NewDocument(t *testing.T) {
	f := newProcessorFixture(t)
	f.parser.result = parser.Ok(parsedReport("20032062", 2))

	outcome, err := f.processor.Process(context.Background(), testFiling(), false)
	require.NoError(t, err)

	assert.True(t, outcome.Fetched)
	assert.True(t, outcome.OCRd)
	assert.True(t, outcome.Parsed)
	assert.False(t, outcome.Unchanged)
	assert.Equal(t, 2, outcome.Transactions)
	assert.Zero(t, outcome.Warnings)
	assert.Zero(t, outcome.Errors)

	// Download recorded under the probed fingerprint.
	d, err := f.downloads.GetByDocID(context.Background(), "20032062")
	require.NoError(t, err)
	assert.Equal(t, "v1", d.ETag)

	// Extracted text stored and referenced by an OCR record.
	require.Len(t, f.ocrResults.created, 1)
	stored, ok := f.blobs.objects[f.ocrResults.created[0].StorageURI]
	require.True(t, ok)
	assert.Equal(t, "extracted text", string(stored))

	require.Len(t, f.reports.replaced, 1)
	assert.Equal(t, "20032062", f.reports.replaced[0].DocID)
	assert.Equal(t, 1, f.issues.calls)
	assert.Empty(t, f.issues.saved)
}

func TestProcess_UnchangedDocumentSkipsAllStages(t *testing.T) {
	f := newProcessorFixture(t)
	f.downloads = newFakeDownloads(&entity.Download{
		ID: 1, DocID: "20032062", ETag: "v1", StorageURI: "file:///blobs/ptr.pdf",
	})
	f.ocrResults.latest = &entity.OcrResult{
		ID: 1, DocID: "20032062", DownloadID: 1, StorageURI: "file:///blobs/ptr.txt",
	}
	f.blobs.objects["file:///blobs/ptr.txt"] = []byte("stored text")
	f.reports.existing = &entity.Report{DocID: "20032062"}
	f.processor = NewProcessor(ProcessorDeps{
		Cache:         NewFingerprintCache(f.prober, f.downloads, time.Minute, nil),
		Fetcher:       f.fetcher,
		Extractor:     f.extractor,
		Parser:        f.parser,
		Blobs:         f.blobs,
		Downloads:     f.downloads,
		OcrResults:    f.ocrResults,
		Reports:       f.reports,
		Issues:        f.issues,
		StoragePrefix: "file:///blobs",
	}, nil)

	outcome, err := f.processor.Process(context.Background(), testFiling(), false)
	require.NoError(t, err)

	assert.True(t, outcome.Unchanged)
	assert.False(t, outcome.Fetched)
	assert.False(t, outcome.OCRd)
	assert.Zero(t, f.fetcher.calls)
	assert.Zero(t, f.extractor.calls)
	assert.Zero(t, f.parser.calls)
	assert.Empty(t, f.reports.replaced)
	assert.Zero(t, f.issues.calls)
}

func TestProcess_ChangedFingerprintRefetches(t *testing.T) {
	f := newProcessorFixture(t)
	f.prober.etag = "v2"
	f.fetcher.resp = &house.StoredResponse{URI: "file:///blobs/ptr.pdf", ETag: "v2"}
	f.downloads.byDocID["20032062"] = &entity.Download{
		ID: 1, DocID: "20032062", ETag: "v1", StorageURI: "file:///blobs/ptr.pdf",
	}
	f.reports.existing = &entity.Report{DocID: "20032062"}
	f.parser.result = parser.Ok(parsedReport("20032062", 1))

	outcome, err := f.processor.Process(context.Background(), testFiling(), false)
	require.NoError(t, err)

	assert.True(t, outcome.Fetched)
	assert.True(t, outcome.OCRd)
	assert.True(t, outcome.Parsed)
	assert.Equal(t, 1, f.fetcher.calls)
	assert.Equal(t, "v2", f.downloads.byDocID["20032062"].ETag)
	require.Len(t, f.reports.replaced, 1)
}

func TestProcess_ParseFailureRecordsIssues(t *testing.T) {
	f := newProcessorFixture(t)
	f.parser.result = parser.Fail[*entity.ParsedReport](entity.ParseIssue{
		DocID:    entity.DocIDUnknown,
		Severity: constants.SeverityError,
		Category: constants.IssueDocumentStructure,
		Message:  "could not extract document ID",
	})

	outcome, err := f.processor.Process(context.Background(), testFiling(), false)
	require.NoError(t, err)

	assert.False(t, outcome.Parsed)
	assert.Equal(t, 1, outcome.Errors)
	assert.Zero(t, outcome.Warnings)
	assert.Empty(t, f.reports.replaced)

	// Sentinel DocIDs are restamped with the filing's identity.
	require.Len(t, f.issues.saved, 1)
	assert.Equal(t, "20032062", f.issues.saved[0].DocID)
}

func TestProcess_DocIDMismatchTrustsFilingList(t *testing.T) {
	f := newProcessorFixture(t)
	report := parsedReport("99999999", 1)
	report.Transactions[0].SourceURL = constants.PtrDocURL("99999999", 2025)
	f.parser.result = parser.Ok(report)

	outcome, err := f.processor.Process(context.Background(), testFiling(), false)
	require.NoError(t, err)
	assert.True(t, outcome.Parsed)

	require.Len(t, f.reports.replaced, 1)
	persisted := f.reports.replaced[0]
	assert.Equal(t, "20032062", persisted.DocID)
	wantURL := constants.PtrDocURL("20032062", 2025)
	for _, tx := range persisted.Transactions {
		assert.Equal(t, wantURL, tx.SourceURL)
	}
}

func TestProcess_ProbeFailureIsFatal(t *testing.T) {
	f := newProcessorFixture(t)
	f.prober.err = errors.New("connection refused")

	_, err := f.processor.Process(context.Background(), testFiling(), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "probe etag")

	assert.Zero(t, f.fetcher.calls)
	assert.Zero(t, f.issues.calls)
	assert.Empty(t, f.reports.replaced)
}

func TestProcess_WarningsCountedSeparately(t *testing.T) {
	f := newProcessorFixture(t)
	report := parsedReport("20032062", 1)
	f.parser.result = parser.OkWarn(report, []entity.ParseIssue{
		{
			DocID:    "20032062",
			Severity: constants.SeverityWarning,
			Category: constants.IssueTransaction,
			Message:  "could not parse transaction for asset [ST]",
			Location: "transaction #2",
		},
	})

	outcome, err := f.processor.Process(context.Background(), testFiling(), false)
	require.NoError(t, err)

	assert.True(t, outcome.Parsed)
	assert.Equal(t, 1, outcome.Warnings)
	assert.Zero(t, outcome.Errors)
	assert.Len(t, f.issues.saved, 1)
	require.Len(t, f.reports.replaced, 1)
}
