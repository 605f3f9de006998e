package parser

import (
	"log/slog"
	"time"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

// Config holds the window sizes the heuristic scanner works with. The
// defaults are tuned to the clerk's current PTR layout; other years may need
// different values.
type Config struct {
	// HeaderWindowLines bounds the filer header block after its marker.
	HeaderWindowLines int
	// AssetLookbackLines bounds the backward walk when reconstructing an
	// asset name from the lines above its anchor.
	AssetLookbackLines int
	// OwnershipLookback is the number of characters before an anchor scanned
	// for a co-owner code.
	OwnershipLookback int
	// ContextBefore/ContextAfter bound the per-transaction search window
	// around an anchor.
	ContextBefore int
	ContextAfter  int
}

// DefaultConfig returns the window sizes the current House layout needs.
func DefaultConfig() Config {
	return Config{
		HeaderWindowLines:  6,
		AssetLookbackLines: 10,
		OwnershipLookback:  100,
		ContextBefore:      200,
		ContextAfter:       1000,
	}
}

// Parser turns raw OCR text for one PTR document into a structured report
// plus a diagnostic trail. Transaction-level failures are warnings; a missing
// document identity or filer header is fatal.
type Parser struct {
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

func New(cfg Config, logger *slog.Logger) *Parser {
	def := DefaultConfig()
	if cfg.HeaderWindowLines <= 0 {
		cfg.HeaderWindowLines = def.HeaderWindowLines
	}
	if cfg.AssetLookbackLines <= 0 {
		cfg.AssetLookbackLines = def.AssetLookbackLines
	}
	if cfg.OwnershipLookback <= 0 {
		cfg.OwnershipLookback = def.OwnershipLookback
	}
	if cfg.ContextBefore <= 0 {
		cfg.ContextBefore = def.ContextBefore
	}
	if cfg.ContextAfter <= 0 {
		cfg.ContextAfter = def.ContextAfter
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{cfg: cfg, logger: logger, now: time.Now}
}

// ParseReport extracts a structured filing report from OCR text. The report
// always includes every transaction that did parse, even when some anchors
// failed.
func (p *Parser) ParseReport(ocrText, sourceURL string) Result[*entity.ParsedReport] {
	m := reFilingID.FindStringSubmatch(ocrText)
	if m == nil {
		p.logger.Warn("parser.doc_id.missing", "source_url", sourceURL)
		return Fail[*entity.ParsedReport](entity.ParseIssue{
			DocID:     entity.DocIDUnknown,
			Severity:  constants.SeverityError,
			Category:  constants.IssueDocumentStructure,
			Message:   "could not extract document ID",
			Details:   "no Filing ID pattern found in OCR text",
			Location:  "document header",
			CreatedAt: p.now(),
		})
	}
	docID := m[1]

	filerRes := p.parseFilerInfo(ocrText, docID)
	if filerRes.IsError() {
		return Fail[*entity.ParsedReport](filerRes.Errors()...)
	}
	issues := append([]entity.ParseIssue(nil), filerRes.Warnings()...)

	txRes := p.parseTransactions(ocrText, sourceURL, docID)
	issues = append(issues, txRes.AllIssues()...)
	transactions, _ := txRes.Data()

	filer, _ := filerRes.Data()
	report := &entity.ParsedReport{
		DocID:        docID,
		Filer:        filer,
		Transactions: transactions,
		SourceURL:    sourceURL,
	}

	p.logger.Debug("parser.report.done",
		"doc_id", docID,
		"transactions", len(transactions),
		"issues", len(issues),
	)
	return FromIssues(report, issues)
}

func (p *Parser) issue(docID string, sev constants.IssueSeverity, cat constants.IssueCategory, msg, details, location string) entity.ParseIssue {
	return entity.ParseIssue{
		DocID:     docID,
		Severity:  sev,
		Category:  cat,
		Message:   msg,
		Details:   details,
		Location:  location,
		CreatedAt: p.now(),
	}
}
