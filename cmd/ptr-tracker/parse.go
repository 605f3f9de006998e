package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/llm"
	"github.com/mholloway/ptr-tracker/internal/parser"
	"github.com/mholloway/ptr-tracker/internal/store"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a document's extracted text into structured transactions",
	Long:  "Parse the stored OCR text for a document and print the structured report and any diagnostics as JSON. With --save the report replaces the stored one and the issues are appended.",
	RunE:  runParse,
}

var (
	parseDocID  string
	parseSave   bool
	parseUseLLM bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseDocID, "doc-id", "d", "", "clerk document ID (required)")
	parseCmd.Flags().BoolVar(&parseSave, "save", false, "persist the parsed report and issues")
	parseCmd.Flags().BoolVar(&parseUseLLM, "use-llm", false, "extract with the LLM instead of the heuristic parser")

	_ = parseCmd.MarkFlagRequired("doc-id")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	ocrResult, err := a.ocrResults.GetLatestByDocID(ctx, parseDocID)
	if err != nil {
		return fmt.Errorf("no extracted text for %s; run ocr first: %w", parseDocID, err)
	}
	filing, err := a.filings.GetByDocID(ctx, parseDocID)
	if err != nil {
		return err
	}

	raw, err := store.ReadAll(ctx, a.blobs, ocrResult.StorageURI)
	if err != nil {
		return err
	}

	sourceURL := constants.PtrDocURL(parseDocID, filing.Year)

	var result parser.Result[*entity.ParsedReport]
	if parseUseLLM {
		fields, _, err := a.llm.ExtractReport(ctx, llm.ExtractRequest{
			OCRText:   string(raw),
			DocID:     parseDocID,
			SourceURL: sourceURL,
		})
		if err != nil {
			return err
		}
		result = llm.MapReport(fields, sourceURL)
	} else {
		result = a.processor.ParseOnly(string(raw), sourceURL)
	}

	report, _ := result.Data()
	out := struct {
		Success bool        `json:"success"`
		Report  interface{} `json:"report,omitempty"`
		Issues  interface{} `json:"issues,omitempty"`
	}{
		Success: result.IsSuccess(),
		Report:  report,
		Issues:  result.AllIssues(),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	if !parseSave {
		return nil
	}
	issues := result.AllIssues()
	for i := range issues {
		if issues[i].DocID == "" || issues[i].DocID == entity.DocIDUnknown {
			issues[i].DocID = parseDocID
		}
	}
	if err := a.issues.SaveAll(ctx, issues); err != nil {
		return err
	}
	if report != nil {
		report.DocID = parseDocID
		if _, err := a.reports.Replace(ctx, report); err != nil {
			return err
		}
	}
	return nil
}
