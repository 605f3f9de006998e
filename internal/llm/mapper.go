package llm

import (
	"fmt"
	"time"

	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/parser"
)

const isoDateLayout = "2006-01-02"

// MapReport converts schema-validated LLM output into a parsed report.
// Transactions that fail domain checks are dropped with a warning; the
// report itself only fails when the filer block is unusable.
func MapReport(fields ReportFields, sourceURL string) parser.Result[*entity.ParsedReport] {
	var issues []entity.ParseIssue
	now := time.Now()

	if err := common.ValidateStruct(fields); err != nil {
		return parser.Fail[*entity.ParsedReport](entity.ParseIssue{
			DocID:     entity.DocIDUnknown,
			Severity:  constants.SeverityError,
			Category:  constants.IssueDataValidation,
			Message:   "model output failed validation",
			Details:   err.Error(),
			CreatedAt: now,
		})
	}

	status, ok := filerStatus(fields.FilerStatus)
	if !ok {
		return parser.Fail[*entity.ParsedReport](entity.ParseIssue{
			DocID:     fields.DocID,
			Severity:  constants.SeverityError,
			Category:  constants.IssueFilerInformation,
			Message:   "unrecognized filer status",
			Details:   fields.FilerStatus,
			CreatedAt: now,
		})
	}

	report := &entity.ParsedReport{
		DocID: fields.DocID,
		Filer: entity.FilerInfo{
			FullName: fields.FilerName,
			Status:   status,
			State:    fields.State,
			District: fields.District,
		},
		SourceURL: sourceURL,
	}

	for i, tf := range fields.Transactions {
		location := fmt.Sprintf("transaction #%d", i+1)

		tx, issue := mapTransaction(tf, sourceURL)
		if issue != nil {
			issue.DocID = fields.DocID
			issue.Location = location
			issue.CreatedAt = now
			issues = append(issues, *issue)
			continue
		}
		report.Transactions = append(report.Transactions, *tx)
	}

	return parser.FromIssues(report, issues)
}

func mapTransaction(tf TransactionFields, sourceURL string) (*entity.ParsedTransaction, *entity.ParseIssue) {
	amount, ok := constants.AmountRangeFor(tf.MinAmount, tf.MaxAmount)
	if !ok {
		return nil, &entity.ParseIssue{
			Severity: constants.SeverityWarning,
			Category: constants.IssueDataValidation,
			Message:  "amount pair does not match a disclosure bucket",
			Details:  fmt.Sprintf("min=%d max=%d", tf.MinAmount, tf.MaxAmount),
		}
	}

	tradeDate, err := time.Parse(isoDateLayout, tf.TradeDate)
	if err != nil {
		return nil, &entity.ParseIssue{
			Severity: constants.SeverityWarning,
			Category: constants.IssueTransaction,
			Message:  "unparseable trade date",
			Details:  tf.TradeDate,
		}
	}

	tx := &entity.ParsedTransaction{
		AssetName:    tf.AssetName,
		AssetType:    tf.AssetType,
		FilingStatus: constants.FilingStatusNew,
		TradeType:    constants.TradeType(tf.TradeType),
		AmountRange:  amount,
		TradeDate:    tradeDate,
		SourceURL:    sourceURL,
	}
	if tf.FilingStatus != "" {
		tx.FilingStatus = constants.FilingStatus(tf.FilingStatus)
	}
	if tf.Owner != "" {
		owner := constants.Ownership(tf.Owner)
		tx.Owner = &owner
	}
	if tf.NotificationDate != "" {
		if nd, err := time.Parse(isoDateLayout, tf.NotificationDate); err == nil {
			tx.NotificationDate = &nd
		}
	}
	return tx, nil
}

func filerStatus(s string) (constants.FilerStatus, bool) {
	switch constants.FilerStatus(s) {
	case constants.FilerStatusMember, constants.FilerStatusOfficerOrEmployee, constants.FilerStatusCandidate:
		return constants.FilerStatus(s), true
	}
	return "", false
}
