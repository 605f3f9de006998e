package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mholloway/ptr-tracker/gen/ent"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/export"
	"github.com/mholloway/ptr-tracker/internal/filinglist"
	"github.com/mholloway/ptr-tracker/internal/house"
	"github.com/mholloway/ptr-tracker/internal/llm"
	"github.com/mholloway/ptr-tracker/internal/llm/openai"
	"github.com/mholloway/ptr-tracker/internal/ocr"
	"github.com/mholloway/ptr-tracker/internal/parser"
	"github.com/mholloway/ptr-tracker/internal/pipeline"
	"github.com/mholloway/ptr-tracker/internal/repository"
	"github.com/mholloway/ptr-tracker/internal/store"
)

// app wires configuration, storage and services for the CLI commands.
type app struct {
	cfg    *common.Config
	logger *slog.Logger

	client *ent.Client
	pool   *pgxpool.Pool

	blobs  store.BlobStore
	prefix string

	filingLists repository.FilingListRepository
	filings     repository.FilingRepository
	downloads   repository.DownloadRepository
	ocrResults  repository.OcrResultRepository
	reports     repository.ReportRepository
	issues      repository.IssueRepository
	stats       repository.StatsRepository

	clerk     *house.Client
	extractor ocr.TextExtractor
	llm       llm.ReportExtractor
	lists     *filinglist.Service
	processor *pipeline.Processor
	batch     *pipeline.Batch
	exporter  *export.Service
}

// sqlitePath is set by the --sqlite flag; empty with no DB_URL means an
// in-memory database.
var sqlitePath string

func newApp(ctx context.Context) (*app, error) {
	logger := slog.Default()
	cfg := common.LoadConfig()

	a := &app{cfg: cfg, logger: logger}

	var err error
	if sqlitePath != "" || cfg.Database.DSN == "" {
		a.client, err = repository.OpenSQLite(sqlitePath, logger)
		if err != nil {
			return nil, err
		}
		if err := repository.Migrate(ctx, a.client, logger); err != nil {
			return nil, err
		}
	} else {
		a.client, a.pool, err = repository.Open(ctx, repository.Config(cfg.Database), logger)
		if err != nil {
			return nil, err
		}
	}

	if err := a.initBlobs(ctx); err != nil {
		return nil, err
	}

	a.filingLists = repository.NewFilingListRepository(a.client, logger)
	a.filings = repository.NewFilingRepository(a.client, logger)
	a.downloads = repository.NewDownloadRepository(a.client, logger)
	a.ocrResults = repository.NewOcrResultRepository(a.client, logger)
	a.reports = repository.NewReportRepository(a.client, logger)
	a.issues = repository.NewIssueRepository(a.client, logger)
	a.stats = repository.NewStatsRepository(a.client, logger)

	a.clerk = house.NewClient(house.Config{
		UserAgent:     cfg.House.UserAgent,
		Timeout:       cfg.House.HTTPTimeout,
		StoragePrefix: a.prefix,
	}, a.blobs, logger)

	a.extractor = ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, a.blobs, logger)

	a.llm = openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	a.lists = filinglist.NewService(a.clerk, a.blobs, a.filingLists, a.filings, a.prefix, logger)

	cache := pipeline.NewFingerprintCache(a.clerk, a.downloads, cfg.House.ProbeTTL, logger)
	a.processor = pipeline.NewProcessor(pipeline.ProcessorDeps{
		Cache:         cache,
		Fetcher:       a.clerk,
		Extractor:     a.extractor,
		Parser:        parser.New(parser.DefaultConfig(), logger),
		Blobs:         a.blobs,
		Downloads:     a.downloads,
		OcrResults:    a.ocrResults,
		Reports:       a.reports,
		Issues:        a.issues,
		StoragePrefix: a.prefix,
	}, logger)
	a.batch = pipeline.NewBatch(a.lists, a.filings, a.processor, logger)
	a.exporter = export.NewService(a.reports, a.filings, logger)

	return a, nil
}

func (a *app) initBlobs(ctx context.Context) error {
	switch a.cfg.Blob.Backend {
	case "s3":
		ms, err := store.NewMinioStore(store.MinioConfig{
			Endpoint:  a.cfg.Blob.Endpoint,
			AccessKey: a.cfg.Blob.AccessKey,
			SecretKey: a.cfg.Blob.SecretKey,
			UseSSL:    a.cfg.Blob.UseSSL,
			Bucket:    a.cfg.Blob.Bucket,
		}, a.logger)
		if err != nil {
			return err
		}
		if err := ms.EnsureBucket(ctx, a.cfg.Blob.Bucket); err != nil {
			return err
		}
		a.blobs = ms
		a.prefix = "s3://" + a.cfg.Blob.Bucket
	case "fs":
		root, err := filepath.Abs(a.cfg.Blob.FSRoot)
		if err != nil {
			return fmt.Errorf("resolve blob root: %w", err)
		}
		a.blobs = store.NewFSStore()
		a.prefix = "file://" + root
	default:
		return fmt.Errorf("unknown blob backend %q", a.cfg.Blob.Backend)
	}
	return nil
}

func (a *app) Close() {
	repository.Close(a.client, a.pool, a.logger)
}
