package server

import (
	"context"
	"errors"
	"time"

	"github.com/mholloway/ptr-tracker/constants"
	v1 "github.com/mholloway/ptr-tracker/gen/proto/ptr/v1"
	"github.com/mholloway/ptr-tracker/internal/common"
)

func (s *Service) ProcessYear(ctx context.Context, req *v1.ProcessYearRequest) (*v1.ProcessYearResponse, error) {
	year := int(req.GetYear())
	v := common.NewValidator()
	v.Field("year", year, common.DisclosureYear(constants.MinimumDisclosureYear, time.Now().Year()))
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	stats, err := s.batch.ProcessYear(ctx, year, req.GetForce())
	if err != nil {
		s.logger.Error("server.process_year.failed", "year", year, "error", err)
		return nil, common.InternalErrorf("process year %d: %v", year, err)
	}

	return &v1.ProcessYearResponse{
		Attempted:    int32(stats.Attempted),
		Unchanged:    int32(stats.Unchanged),
		Downloaded:   int32(stats.Downloaded),
		Parsed:       int32(stats.Parsed),
		Transactions: int32(stats.Transactions),
		Failures:     int32(stats.Failures),
	}, nil
}

func (s *Service) ProcessFiling(ctx context.Context, req *v1.ProcessFilingRequest) (*v1.ProcessFilingResponse, error) {
	v := common.NewValidator()
	v.Field("doc_id", req.GetDocId(), common.Required, common.DocID)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	filing, err := s.filings.GetByDocID(ctx, req.GetDocId())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("no filing with that doc_id; ingest its year's filing list first")
		}
		return nil, common.InternalErrorf("load filing: %v", err)
	}

	outcome, err := s.processor.Process(ctx, filing, req.GetForce())
	if err != nil {
		s.logger.Error("server.process_filing.failed", "doc_id", filing.DocID, "error", err)
		return nil, common.InternalErrorf("process filing %s: %v", filing.DocID, err)
	}

	return &v1.ProcessFilingResponse{
		Fetched:      outcome.Fetched,
		Ocrd:         outcome.OCRd,
		Parsed:       outcome.Parsed,
		Unchanged:    outcome.Unchanged,
		Transactions: int32(outcome.Transactions),
		Warnings:     int32(outcome.Warnings),
		Errors:       int32(outcome.Errors),
	}, nil
}
