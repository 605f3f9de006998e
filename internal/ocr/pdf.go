package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, err error) {
	out, _, err := e.runner.Run(ctx, e.cfg.Pdftotext, e.logger,
		"-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, err
	}
	text = string(out)
	// pdftotext separates pages with a form feed
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) (text string, pages int, err error) {
	tmpDir, err := os.MkdirTemp("", "ptr-pp-*")
	if err != nil {
		return "", 0, err
	}
	defer func() {
		_ = os.RemoveAll(tmpDir)
	}()

	prefix := filepath.Join(tmpDir, "page")
	_, _, err = e.runner.Run(ctx, e.cfg.Pdftoppm, e.logger,
		"-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return "", 0, err
	}

	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return "", 0, fmt.Errorf("pdftoppm produced no pages")
	}

	var b strings.Builder
	for _, img := range matches {
		pageText, err := e.tesseract(ctx, img)
		if err != nil {
			e.logger.Warn("ocr.page.failed", "image", img, "error", err)
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.WriteString(pageText)
	}
	return b.String(), len(matches), nil
}

func (e *Extractor) tesseract(ctx context.Context, imagePath string) (string, error) {
	out, _, err := e.runner.Run(ctx, e.cfg.Tesseract, e.logger,
		imagePath, "stdout", "-l", e.cfg.TesseractLang)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
