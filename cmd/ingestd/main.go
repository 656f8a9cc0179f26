package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
	"github.com/notesos/ingest/internal/chunker"
	"github.com/notesos/ingest/internal/common"
	"github.com/notesos/ingest/internal/embedding"
	"github.com/notesos/ingest/internal/extract"
	"github.com/notesos/ingest/internal/index"
	"github.com/notesos/ingest/internal/ocr"
	"github.com/notesos/ingest/internal/repository"
	"github.com/notesos/ingest/internal/worker"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	rb, err := broker.NewRedisBroker(ctx, cfg.Redis.URL, cfg.Redis.JobTTL, logger)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer rb.Close()

	// Hybrid OCR: tesseract primary, cloud vision fallback when configured.
	tess := ocr.NewTesseract(ocr.TesseractConfig{
		Binary:      cfg.OCR.Tesseract,
		Lang:        cfg.OCR.TesseractLang,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
	}, logger)
	var fallback ocr.Provider
	if cfg.OCR.VisionEnabled && cfg.OCR.VisionAPIKey != "" {
		fallback = ocr.NewVision(ocr.VisionConfig{
			Endpoint: cfg.OCR.VisionEndpoint,
			APIKey:   cfg.OCR.VisionAPIKey,
		}, logger)
	}
	engine := ocr.NewEngine(tess, fallback, ocr.EngineConfig{
		FallbackThreshold:      cfg.OCR.FallbackThreshold,
		LowConfidenceThreshold: cfg.OCR.LowConfidenceThreshold,
		FallbackEnabled:        fallback != nil,
	}, logger)

	extractor := extract.NewExtractor(engine, logger)
	ch := chunker.New(chunker.Config{
		ChunkSize:    cfg.Chunking.ChunkSize,
		ChunkOverlap: cfg.Chunking.ChunkOverlap,
		MinChunkSize: cfg.Chunking.MinChunkSize,
	})
	embedder := embedding.NewCachedEmbedder(
		embedding.NewOpenAIEmbedder(embedding.OpenAIConfig{
			APIKey:     cfg.Embed.APIKey,
			Model:      cfg.Embed.Model,
			Dimensions: cfg.Embed.Dimensions,
			Timeout:    cfg.Embed.Timeout,
		}, logger),
		rb, cfg.Embed.CacheTTL, logger)
	store := index.NewStore(pool, logger)
	docs := repository.NewDocumentRepository(entc, logger)

	chunkHandler := worker.NewChunkingHandler(docs, extractor, ch, embedder, store, rb, logger)

	handlers := map[string]worker.Handler{
		constants.QueueChunking: chunkHandler,
	}
	// Fact-check and grading run only when their collaborator is configured.
	if base := os.Getenv("COLLABORATOR_URL"); base != "" {
		collab := worker.NewHTTPCollaborator(worker.CollaboratorConfig{
			BaseURL: base,
			APIKey:  os.Getenv("COLLABORATOR_API_KEY"),
		}, logger)
		handlers[constants.QueueFactCheck] = worker.NewFactCheckHandler(docs, collab, rb, logger)
		handlers[constants.QueueGrading] = worker.NewGradingHandler(collab, rb, logger)
	}

	var wg sync.WaitGroup
	for queue, handler := range handlers {
		for i := 0; i < cfg.Worker.Concurrency; i++ {
			w, err := worker.New(worker.Config{
				Queue:        queue,
				PollTimeout:  cfg.Worker.DequeueWait,
				ErrorBackoff: cfg.Worker.FailureBackoff,
				JobTimeout:   cfg.Worker.JobTimeout,
			}, rb, handler, logger)
			if err != nil {
				logger.Error("failed to build worker", "queue", queue, "error", err)
				os.Exit(1)
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = w.Run(ctx)
			}()
		}
	}

	logger.Info("ingestd running",
		"queues", len(handlers),
		"concurrency", cfg.Worker.Concurrency)

	<-ctx.Done()
	wg.Wait()
	logger.Info("ingestd stopped")
}
