package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/house"
	"github.com/mholloway/ptr-tracker/internal/ocr"
	"github.com/mholloway/ptr-tracker/internal/parser"
	"github.com/mholloway/ptr-tracker/internal/store"
)

// Fetcher is the download side of the clerk client.
type Fetcher interface {
	FetchPtr(ctx context.Context, docID string, year int) (*house.StoredResponse, error)
}

// ReportParser turns OCR text into a structured report.
type ReportParser interface {
	ParseReport(ocrText, sourceURL string) parser.Result[*entity.ParsedReport]
}

// OcrResultStore is the OCR-artifact persistence the pipeline needs.
type OcrResultStore interface {
	GetLatestByDocID(ctx context.Context, docID string) (*entity.OcrResult, error)
	Create(ctx context.Context, o *entity.OcrResult) (*entity.OcrResult, error)
}

// ReportStore persists parsed reports.
type ReportStore interface {
	GetByDocID(ctx context.Context, docID string) (*entity.Report, []*entity.Transaction, error)
	Replace(ctx context.Context, parsed *entity.ParsedReport) (*entity.Report, error)
}

// IssueStore records parse diagnostics.
type IssueStore interface {
	SaveAll(ctx context.Context, issues []entity.ParseIssue) error
}

// Outcome summarizes one document's trip through the pipeline.
type Outcome struct {
	DocID        string
	Fetched      bool
	OCRd         bool
	Parsed       bool
	Transactions int
	Warnings     int
	Errors       int
	// Unchanged is set when the remote ETag matched and every artifact
	// already existed, so nothing was done.
	Unchanged bool
}

// Processor runs one PTR document through fetch, OCR, parse and persist.
// Stages are skipped when their output already exists and the source bytes
// have not changed.
type Processor struct {
	cache      *FingerprintCache
	fetcher    Fetcher
	extractor  ocr.TextExtractor
	parser     ReportParser
	blobs      store.BlobStore
	downloads  DownloadStore
	ocrResults OcrResultStore
	reports    ReportStore
	issues     IssueStore
	prefix     string
	logger     *slog.Logger
	now        func() time.Time
}

type ProcessorDeps struct {
	Cache      *FingerprintCache
	Fetcher    Fetcher
	Extractor  ocr.TextExtractor
	Parser     ReportParser
	Blobs      store.BlobStore
	Downloads  DownloadStore
	OcrResults OcrResultStore
	Reports    ReportStore
	Issues     IssueStore
	// StoragePrefix forms blob URIs for extracted text.
	StoragePrefix string
}

func NewProcessor(deps ProcessorDeps, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		cache:      deps.Cache,
		fetcher:    deps.Fetcher,
		extractor:  deps.Extractor,
		parser:     deps.Parser,
		blobs:      deps.Blobs,
		downloads:  deps.Downloads,
		ocrResults: deps.OcrResults,
		reports:    deps.Reports,
		issues:     deps.Issues,
		prefix:     strings.TrimRight(deps.StoragePrefix, "/"),
		logger:     logger,
		now:        time.Now,
	}
}

// Process runs one filing's document through the pipeline. Parse failures
// are recorded as issues and reported in the Outcome, not as an error;
// the returned error means an infrastructure stage failed and nothing
// meaningful was recorded.
func (p *Processor) Process(ctx context.Context, filing *entity.Filing, force bool) (*Outcome, error) {
	docID := filing.DocID
	ctx = common.WithDocID(ctx, docID)
	outcome := &Outcome{DocID: docID}

	download, fetched, err := p.ensureDownload(ctx, filing, force)
	if err != nil {
		return nil, err
	}
	outcome.Fetched = fetched

	text, ocrd, err := p.ensureText(ctx, filing, download, fetched || force)
	if err != nil {
		return nil, err
	}
	outcome.OCRd = ocrd

	if !fetched && !ocrd && !force {
		if _, _, err := p.reports.GetByDocID(ctx, docID); err == nil {
			p.logger.Info("pipeline.process.unchanged", "doc_id", docID)
			outcome.Unchanged = true
			return outcome, nil
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}

	sourceURL := constants.PtrDocURL(docID, filing.Year)
	result := p.parser.ParseReport(text, sourceURL)

	issues := restampIssues(result.AllIssues(), docID)
	if err := p.issues.SaveAll(ctx, issues); err != nil {
		return nil, err
	}
	outcome.Errors = result.ErrorCount()
	outcome.Warnings = len(issues) - outcome.Errors

	report, ok := result.Data()
	if !ok {
		p.logger.Warn("pipeline.process.parse_failed", "doc_id", docID, "errors", outcome.Errors)
		return outcome, nil
	}

	if report.DocID != docID {
		p.logger.Warn("pipeline.process.doc_id_mismatch", "doc_id", docID, "document_doc_id", report.DocID)
		report.DocID = docID
		for i := range report.Transactions {
			report.Transactions[i].SourceURL = sourceURL
		}
	}

	if _, err := p.reports.Replace(ctx, report); err != nil {
		return nil, err
	}
	outcome.Parsed = true
	outcome.Transactions = len(report.Transactions)

	p.logger.Info("pipeline.process.ok",
		"doc_id", docID,
		"fetched", fetched,
		"ocrd", ocrd,
		"transactions", outcome.Transactions,
		"warnings", outcome.Warnings)
	return outcome, nil
}

// ParseOnly runs the parser on already-extracted text without touching
// storage, for inspection and dry runs.
func (p *Processor) ParseOnly(text, sourceURL string) parser.Result[*entity.ParsedReport] {
	return p.parser.ParseReport(text, sourceURL)
}

// ensureDownload fetches the PDF when the fingerprint says it changed, and
// returns the current download record.
func (p *Processor) ensureDownload(ctx context.Context, filing *entity.Filing, force bool) (*entity.Download, bool, error) {
	docID := filing.DocID
	decision, err := p.cache.Decide(ctx, docID, filing.Year, force)
	if err != nil {
		return nil, false, err
	}

	if !decision.Fetch {
		return decision.Stored, false, nil
	}

	stored, err := p.fetcher.FetchPtr(ctx, docID, filing.Year)
	if err != nil {
		return nil, false, fmt.Errorf("fetch document %s: %w", docID, err)
	}

	etag := stored.ETag
	if etag == "" {
		etag = decision.RemoteETag
	}
	download, err := p.downloads.Upsert(ctx, &entity.Download{
		DocID:      docID,
		ETag:       etag,
		StorageURI: stored.URI,
		FetchedAt:  p.now(),
	})
	if err != nil {
		return nil, false, err
	}
	return download, true, nil
}

// ensureText extracts the document text unless a prior extraction exists
// and the PDF bytes did not change.
func (p *Processor) ensureText(ctx context.Context, filing *entity.Filing, download *entity.Download, refresh bool) (string, bool, error) {
	docID := filing.DocID

	if !refresh {
		existing, err := p.ocrResults.GetLatestByDocID(ctx, docID)
		if err == nil {
			raw, err := store.ReadAll(ctx, p.blobs, existing.StorageURI)
			if err != nil {
				return "", false, fmt.Errorf("read stored text for %s: %w", docID, err)
			}
			return string(raw), false, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return "", false, err
		}
	}

	text, err := p.extractor.ExtractText(ctx, download.StorageURI)
	if err != nil {
		return "", false, fmt.Errorf("extract text for %s: %w", docID, err)
	}

	textURI := p.prefix + "/" + constants.PtrTextStorageKey(docID, filing.Year)
	if err := p.blobs.Put(ctx, textURI, strings.NewReader(text), int64(len(text)), "text/plain; charset=utf-8"); err != nil {
		return "", false, fmt.Errorf("store text for %s: %w", docID, err)
	}

	if _, err := p.ocrResults.Create(ctx, &entity.OcrResult{
		DocID:      docID,
		DownloadID: download.ID,
		StorageURI: textURI,
	}); err != nil {
		return "", false, err
	}
	return text, true, nil
}

// restampIssues rewrites placeholder document IDs with the real one before
// persisting.
func restampIssues(issues []entity.ParseIssue, docID string) []entity.ParseIssue {
	out := make([]entity.ParseIssue, len(issues))
	copy(out, issues)
	for i := range out {
		if out[i].DocID == "" || out[i].DocID == entity.DocIDUnknown {
			out[i].DocID = docID
		}
	}
	return out
}
