package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mholloway/ptr-tracker/internal/store"
)

// TextExtractor is the extraction port the pipeline depends on: given the
// storage location of a fetched document, return its plain text. The engine
// behind it is interchangeable; failures propagate to the OCR stage as fatal
// for that document.
type TextExtractor interface {
	ExtractText(ctx context.Context, storageURI string) (string, error)
}

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit

	// MinEmbeddedTextLen decides when a PDF's embedded text layer is too thin
	// to trust and the rasterize+OCR path runs instead. PTR PDFs are scanned,
	// so this path is the common one.
	MinEmbeddedTextLen int
}

// Extractor implements TextExtractor by pulling the document from the blob
// store and shelling out to poppler/tesseract.
type Extractor struct {
	cfg    Config
	runner Runner
	blobs  store.BlobStore
	logger *slog.Logger
}

func NewExtractor(cfg Config, blobs store.BlobStore, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.MinEmbeddedTextLen <= 0 {
		cfg.MinEmbeddedTextLen = 200
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, blobs: blobs, logger: logger}
}

// ExtractText downloads the stored PDF, extracts its text layer, and falls
// back to rasterize+OCR when the layer is missing or too thin. The returned
// text is normalized (whitespace and confusable canonicalization).
func (e *Extractor) ExtractText(ctx context.Context, storageURI string) (string, error) {
	data, err := store.ReadAll(ctx, e.blobs, storageURI)
	if err != nil {
		return "", fmt.Errorf("fetch document %s: %w", storageURI, err)
	}

	tmp, err := os.CreateTemp("", "ptr-*.pdf")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write temp pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	text, pages, err := e.pdfToText(ctx, tmp.Name())
	if err == nil && len(strings.TrimSpace(text)) >= e.cfg.MinEmbeddedTextLen {
		e.logger.Debug("ocr.text_layer.ok", "uri", storageURI, "pages", pages, "bytes", len(text))
		return Normalize(text), nil
	}

	text, pages, err = e.pdfToOCR(ctx, tmp.Name())
	if err != nil {
		return "", fmt.Errorf("ocr %s: %w", storageURI, err)
	}
	e.logger.Debug("ocr.rasterized.ok", "uri", storageURI, "pages", pages, "bytes", len(text))
	return Normalize(text), nil
}
