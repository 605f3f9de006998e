package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsYear int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show counts of stored filings, documents and transactions",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsYear, "year", 0, "limit counts to one disclosure year (0 = all)")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	snap, err := a.stats.Snapshot(ctx, statsYear)
	if err != nil {
		return err
	}

	if snap.Year > 0 {
		fmt.Printf("year:          %d\n", snap.Year)
	}
	fmt.Printf("filings:       %d (%d PTRs)\n", snap.Filings, snap.PtrFilings)
	fmt.Printf("downloads:     %d\n", snap.Downloads)
	fmt.Printf("ocr results:   %d\n", snap.OcrResults)
	fmt.Printf("reports:       %d\n", snap.Reports)
	fmt.Printf("transactions:  %d\n", snap.Transactions)
	fmt.Printf("issues:        %d warnings, %d errors\n", snap.Warnings, snap.Errors)
	return nil
}
