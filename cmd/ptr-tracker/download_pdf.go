package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mholloway/ptr-tracker/internal/entity"
)

var downloadPdfCmd = &cobra.Command{
	Use:   "download-pdf",
	Short: "Download one PTR document into blob storage",
	RunE:  runDownloadPdf,
}

var pdfDocID string

func init() {
	downloadPdfCmd.Flags().StringVarP(&pdfDocID, "doc-id", "d", "", "clerk document ID (required)")

	_ = downloadPdfCmd.MarkFlagRequired("doc-id")

	rootCmd.AddCommand(downloadPdfCmd)
}

func runDownloadPdf(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	filing, err := a.filings.GetByDocID(ctx, pdfDocID)
	if err != nil {
		return fmt.Errorf("look up filing %s (run download-list for its year first): %w", pdfDocID, err)
	}

	stored, err := a.clerk.FetchPtr(ctx, filing.DocID, filing.Year)
	if err != nil {
		return err
	}
	if _, err := a.downloads.Upsert(ctx, &entity.Download{
		DocID:      filing.DocID,
		ETag:       stored.ETag,
		StorageURI: stored.URI,
		FetchedAt:  time.Now(),
	}); err != nil {
		return err
	}

	fmt.Printf("%s -> %s\n", filing.DocID, stored.URI)
	return nil
}
