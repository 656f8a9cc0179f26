package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ingestpb "github.com/notesos/ingest/gen/proto/ingest/v1"
	"github.com/notesos/ingest/internal/broker"
	"github.com/notesos/ingest/internal/common"
	"github.com/notesos/ingest/internal/embedding"
	"github.com/notesos/ingest/internal/index"
	"github.com/notesos/ingest/internal/repository"
	"github.com/notesos/ingest/internal/server"
)

func main() {
	_ = godotenv.Load()

	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	logger := slog.Default()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		zlog.Fatal("invalid configuration", zap.Error(err))
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
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		zlog.Fatal("database health check failed", zap.Error(err))
	}

	rb, err := broker.NewRedisBroker(ctx, cfg.Redis.URL, cfg.Redis.JobTTL, logger)
	if err != nil {
		zlog.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rb.Close()

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
	topics := repository.NewTopicRepository(entc, logger)

	grpcServer := grpc.NewServer()
	svc := server.NewIngestService(docs, topics, rb, embedder, store, zlog)
	ingestpb.RegisterIngestServiceServer(grpcServer, svc)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		zlog.Fatal("failed to listen", zap.String("addr", cfg.Server.GRPCAddr), zap.Error(err))
	}

	zlog.Info("apid serving", zap.String("addr", cfg.Server.GRPCAddr))
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			zlog.Fatal("grpc serve error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("shutting down")
	grpcServer.GracefulStop()
}
