package server

import (
	"log/slog"

	v1 "github.com/mholloway/ptr-tracker/gen/proto/ptr/v1"
	"github.com/mholloway/ptr-tracker/internal/export"
	"github.com/mholloway/ptr-tracker/internal/pipeline"
	"github.com/mholloway/ptr-tracker/internal/repository"
)

// Service implements the PtrService gRPC surface.
type Service struct {
	v1.UnimplementedPtrServiceServer
	batch     *pipeline.Batch
	processor *pipeline.Processor
	filings   repository.FilingRepository
	reports   repository.ReportRepository
	issues    repository.IssueRepository
	stats     repository.StatsRepository
	exporter  *export.Service
	logger    *slog.Logger
}

type Deps struct {
	Batch     *pipeline.Batch
	Processor *pipeline.Processor
	Filings   repository.FilingRepository
	Reports   repository.ReportRepository
	Issues    repository.IssueRepository
	Stats     repository.StatsRepository
	Exporter  *export.Service
}

func NewService(deps Deps, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		batch:     deps.Batch,
		processor: deps.Processor,
		filings:   deps.Filings,
		reports:   deps.Reports,
		issues:    deps.Issues,
		stats:     deps.Stats,
		exporter:  deps.Exporter,
		logger:    logger,
	}
}
