package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr",
	Short: "Extract text from a downloaded PTR document",
	Long:  "Extract text from the stored PDF, preferring the embedded text layer and falling back to page-by-page OCR. The text is written to blob storage and recorded.",
	RunE:  runOcr,
}

var (
	ocrDocID string
	ocrPrint bool
)

func init() {
	ocrCmd.Flags().StringVarP(&ocrDocID, "doc-id", "d", "", "clerk document ID (required)")
	ocrCmd.Flags().BoolVar(&ocrPrint, "print", false, "print the extracted text to stdout")

	_ = ocrCmd.MarkFlagRequired("doc-id")

	rootCmd.AddCommand(ocrCmd)
}

func runOcr(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	download, err := a.downloads.GetByDocID(ctx, ocrDocID)
	if err != nil {
		return fmt.Errorf("no download for %s; run download-pdf first: %w", ocrDocID, err)
	}
	filing, err := a.filings.GetByDocID(ctx, ocrDocID)
	if err != nil {
		return err
	}

	text, err := a.extractor.ExtractText(ctx, download.StorageURI)
	if err != nil {
		return err
	}

	textURI := a.prefix + "/" + constants.PtrTextStorageKey(ocrDocID, filing.Year)
	if err := a.blobs.Put(ctx, textURI, strings.NewReader(text), int64(len(text)), "text/plain; charset=utf-8"); err != nil {
		return err
	}
	if _, err := a.ocrResults.Create(ctx, &entity.OcrResult{
		DocID:      ocrDocID,
		DownloadID: download.ID,
		StorageURI: textURI,
	}); err != nil {
		return err
	}

	if ocrPrint {
		fmt.Println(text)
	} else {
		fmt.Printf("%s: %d characters -> %s\n", ocrDocID, len(text), textURI)
	}
	return nil
}
