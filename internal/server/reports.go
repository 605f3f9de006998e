package server

import (
	"context"
	"errors"
	"strings"
	"time"

	v1 "github.com/mholloway/ptr-tracker/gen/proto/ptr/v1"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/entity"
	"github.com/mholloway/ptr-tracker/internal/repository"
)

const dateLayout = "2006-01-02"

func (s *Service) GetReport(ctx context.Context, req *v1.GetReportRequest) (*v1.GetReportResponse, error) {
	v := common.NewValidator()
	v.Field("doc_id", req.GetDocId(), common.Required, common.DocID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	report, txs, err := s.reports.GetByDocID(ctx, req.GetDocId())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("no report for that doc_id")
		}
		s.logger.Error("server.get_report.failed", "doc_id", req.GetDocId(), "error", err)
		return nil, common.InternalErrorf("get report: %v", err)
	}

	issues, err := s.issues.ListByDocID(ctx, req.GetDocId())
	if err != nil {
		s.logger.Error("server.get_report.issues_failed", "doc_id", req.GetDocId(), "error", err)
		return nil, common.InternalErrorf("list issues: %v", err)
	}

	resp := &v1.GetReportResponse{
		Report: &v1.Report{
			Id:          report.ID.String(),
			DocId:       report.DocID,
			FilerName:   report.Filer.FullName,
			FilerStatus: string(report.Filer.Status),
			State:       report.Filer.State,
			District:    int32(report.Filer.District),
			SourceUrl:   report.SourceURL,
			CreatedAt:   report.CreatedAt.Format(time.RFC3339Nano),
		},
	}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, toTransactionPB(tx))
	}
	for _, issue := range issues {
		resp.Issues = append(resp.Issues, &v1.ParseIssue{
			Severity:  string(issue.Severity),
			Category:  string(issue.Category),
			Message:   issue.Message,
			Details:   issue.Details,
			Location:  issue.Location,
			CreatedAt: issue.CreatedAt.Format(time.RFC3339Nano),
		})
	}
	return resp, nil
}

func (s *Service) ListTransactions(ctx context.Context, req *v1.ListTransactionsRequest) (*v1.ListTransactionsResponse, error) {
	filter := repository.TransactionFilter{
		DocID:     strings.TrimSpace(req.GetDocId()),
		TradeType: strings.TrimSpace(req.GetTradeType()),
		AssetName: strings.TrimSpace(req.GetAssetName()),
		Limit:     int(req.GetLimit()),
	}

	var err error
	if filter.FromDate, err = parseDate(req.GetFromDate()); err != nil {
		return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
	}
	if filter.ToDate, err = parseDate(req.GetToDate()); err != nil {
		return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
	}

	txs, err := s.reports.ListTransactions(ctx, filter)
	if err != nil {
		s.logger.Error("server.list_transactions.failed", "error", err)
		return nil, common.InternalErrorf("list transactions: %v", err)
	}

	resp := &v1.ListTransactionsResponse{}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, toTransactionPB(tx))
	}
	return resp, nil
}

func (s *Service) GetStats(ctx context.Context, req *v1.GetStatsRequest) (*v1.GetStatsResponse, error) {
	year := int(req.GetYear())
	if year != 0 {
		v := common.NewValidator().Field("year", year, common.DisclosureYear(2008, time.Now().Year()))
		if err := common.ValidateAndReturnError(v); err != nil {
			return nil, err
		}
	}

	snap, err := s.stats.Snapshot(ctx, year)
	if err != nil {
		s.logger.Error("server.get_stats.failed", "error", err)
		return nil, common.InternalErrorf("get stats: %v", err)
	}
	return &v1.GetStatsResponse{
		Year:         req.GetYear(),
		Filings:      int32(snap.Filings),
		PtrFilings:   int32(snap.PtrFilings),
		Downloads:    int32(snap.Downloads),
		OcrResults:   int32(snap.OcrResults),
		Reports:      int32(snap.Reports),
		Transactions: int32(snap.Transactions),
		Warnings:     int32(snap.Warnings),
		Errors:       int32(snap.Errors),
	}, nil
}

func toTransactionPB(tx *entity.Transaction) *v1.Transaction {
	out := &v1.Transaction{
		Id:           tx.ID.String(),
		DocId:        tx.DocID,
		AssetName:    tx.AssetName,
		AssetType:    tx.AssetType,
		FilingStatus: string(tx.FilingStatus),
		TradeType:    string(tx.TradeType),
		AmountRange:  string(tx.AmountRange),
		TradeDate:    tx.TradeDate.Format(dateLayout),
		SourceUrl:    tx.SourceURL,
	}
	if tx.Owner != nil {
		out.Owner = string(*tx.Owner)
	}
	if tx.NotificationDate != nil {
		out.NotificationDate = tx.NotificationDate.Format(dateLayout)
	}
	return out
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
