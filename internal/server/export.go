package server

import (
	"context"

	v1 "github.com/mholloway/ptr-tracker/gen/proto/ptr/v1"
	"github.com/mholloway/ptr-tracker/internal/common"
)

func (s *Service) ExportTransactions(ctx context.Context, req *v1.ExportTransactionsRequest) (*v1.ExportTransactionsResponse, error) {
	from, err := parseDate(req.GetFromDate())
	if err != nil {
		return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
	}
	to, err := parseDate(req.GetToDate())
	if err != nil {
		return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
	}

	xlsx, err := s.exporter.ExportTransactionsXLSX(ctx, from, to)
	if err != nil {
		s.logger.Error("server.export.failed", "error", err)
		return nil, common.InternalErrorf("export transactions: %v", err)
	}
	return &v1.ExportTransactionsResponse{Xlsx: xlsx}, nil
}
