package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var processFilingCmd = &cobra.Command{
	Use:   "process-filing",
	Short: "Run one PTR document through the full pipeline",
	RunE:  runProcessFiling,
}

var (
	filingDocID string
	filingForce bool
)

func init() {
	processFilingCmd.Flags().StringVarP(&filingDocID, "doc-id", "d", "", "clerk document ID (required)")
	processFilingCmd.Flags().BoolVar(&filingForce, "force", false, "reprocess even when the remote content is unchanged")

	_ = processFilingCmd.MarkFlagRequired("doc-id")

	rootCmd.AddCommand(processFilingCmd)
}

func runProcessFiling(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	filing, err := a.filings.GetByDocID(ctx, filingDocID)
	if err != nil {
		return fmt.Errorf("look up filing %s (run download-list for its year first): %w", filingDocID, err)
	}

	outcome, err := a.processor.Process(ctx, filing, filingForce)
	if err != nil {
		return err
	}

	switch {
	case outcome.Unchanged:
		fmt.Printf("%s: unchanged, nothing to do\n", outcome.DocID)
	case outcome.Parsed:
		fmt.Printf("%s: parsed %d transactions (%d warnings)\n", outcome.DocID, outcome.Transactions, outcome.Warnings)
	default:
		fmt.Printf("%s: parse failed with %d errors, issues recorded\n", outcome.DocID, outcome.Errors)
	}
	return nil
}
