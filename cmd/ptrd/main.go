// Package main runs the ptr-tracker gRPC daemon.
package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/mholloway/ptr-tracker/gen/proto/ptr/v1"
	"github.com/mholloway/ptr-tracker/internal/common"
	"github.com/mholloway/ptr-tracker/internal/export"
	"github.com/mholloway/ptr-tracker/internal/filinglist"
	"github.com/mholloway/ptr-tracker/internal/house"
	"github.com/mholloway/ptr-tracker/internal/ocr"
	"github.com/mholloway/ptr-tracker/internal/parser"
	"github.com/mholloway/ptr-tracker/internal/pipeline"
	"github.com/mholloway/ptr-tracker/internal/repository"
	"github.com/mholloway/ptr-tracker/internal/server"
	"github.com/mholloway/ptr-tracker/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, pool, err := repository.Open(ctx, repository.Config(cfg.Database), logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(client, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	blobs, prefix, err := buildBlobStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("blob store setup failed", "error", err)
		os.Exit(1)
	}

	filingLists := repository.NewFilingListRepository(client, logger)
	filings := repository.NewFilingRepository(client, logger)
	downloads := repository.NewDownloadRepository(client, logger)
	ocrResults := repository.NewOcrResultRepository(client, logger)
	reports := repository.NewReportRepository(client, logger)
	issues := repository.NewIssueRepository(client, logger)
	stats := repository.NewStatsRepository(client, logger)

	clerk := house.NewClient(house.Config{
		UserAgent:     cfg.House.UserAgent,
		Timeout:       cfg.House.HTTPTimeout,
		StoragePrefix: prefix,
	}, blobs, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Pdftotext:     cfg.OCR.Pdftotext,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
	}, blobs, logger)

	lists := filinglist.NewService(clerk, blobs, filingLists, filings, prefix, logger)
	cache := pipeline.NewFingerprintCache(clerk, downloads, cfg.House.ProbeTTL, logger)
	processor := pipeline.NewProcessor(pipeline.ProcessorDeps{
		Cache:         cache,
		Fetcher:       clerk,
		Extractor:     extractor,
		Parser:        parser.New(parser.DefaultConfig(), logger),
		Blobs:         blobs,
		Downloads:     downloads,
		OcrResults:    ocrResults,
		Reports:       reports,
		Issues:        issues,
		StoragePrefix: prefix,
	}, logger)
	batch := pipeline.NewBatch(lists, filings, processor, logger)
	exporter := export.NewService(reports, filings, logger)

	grpcServer := grpc.NewServer()

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewService(server.Deps{
		Batch:     batch,
		Processor: processor,
		Filings:   filings,
		Reports:   reports,
		Issues:    issues,
		Stats:     stats,
		Exporter:  exporter,
	}, logger)
	v1.RegisterPtrServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		grpcServer.GracefulStop()
	}()

	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
	if err := grpcServer.Serve(lis); err != nil {
		logger.Error("serve failed", "error", err)
		os.Exit(1)
	}
}

func buildBlobStore(ctx context.Context, cfg *common.Config, logger *slog.Logger) (store.BlobStore, string, error) {
	switch cfg.Blob.Backend {
	case "s3":
		ms, err := store.NewMinioStore(store.MinioConfig{
			Endpoint:  cfg.Blob.Endpoint,
			AccessKey: cfg.Blob.AccessKey,
			SecretKey: cfg.Blob.SecretKey,
			UseSSL:    cfg.Blob.UseSSL,
			Bucket:    cfg.Blob.Bucket,
		}, logger)
		if err != nil {
			return nil, "", err
		}
		if err := ms.EnsureBucket(ctx, cfg.Blob.Bucket); err != nil {
			return nil, "", err
		}
		return ms, "s3://" + cfg.Blob.Bucket, nil
	default:
		root, err := filepath.Abs(cfg.Blob.FSRoot)
		if err != nil {
			return nil, "", err
		}
		return store.NewFSStore(), "file://" + root, nil
	}
}
