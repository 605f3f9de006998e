package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored transactions to an XLSX workbook",
	RunE:  runExport,
}

var (
	exportFrom string
	exportTo   string
	exportOut  string
)

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "earliest trade date, YYYY-MM-DD")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "latest trade date, YYYY-MM-DD")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "transactions.xlsx", "output file path")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	parseDate := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return &t, nil
	}
	from, err := parseDate(exportFrom)
	if err != nil {
		return err
	}
	to, err := parseDate(exportTo)
	if err != nil {
		return err
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	xlsx, err := a.exporter.ExportTransactionsXLSX(ctx, from, to)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOut, xlsx, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}

	fmt.Printf("wrote %s (%d bytes)\n", exportOut, len(xlsx))
	return nil
}
