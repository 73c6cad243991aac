package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	cardspb "github.com/lbeckmann/cardvault/gen/proto/cards/v1"
	"github.com/lbeckmann/cardvault/internal/async"
	"github.com/lbeckmann/cardvault/internal/common"
	"github.com/lbeckmann/cardvault/internal/credits"
	"github.com/lbeckmann/cardvault/internal/export"
	"github.com/lbeckmann/cardvault/internal/extract"
	"github.com/lbeckmann/cardvault/internal/llm"
	"github.com/lbeckmann/cardvault/internal/llm/openai"
	"github.com/lbeckmann/cardvault/internal/pipeline"
	"github.com/lbeckmann/cardvault/internal/profiles"
	repo "github.com/lbeckmann/cardvault/internal/repository"
	svc "github.com/lbeckmann/cardvault/internal/server"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(svc.RequestIDInterceptor(logger)),
	)

	profilesRepo := repo.NewProfileRepository(entc, logger)
	contactsRepo := repo.NewContactRepository(entc, logger)
	scansRepo := repo.NewCardScanRepository(entc, logger)
	jobsRepo := repo.NewExtractJobRepository(entc, logger)
	creditsRepo := repo.NewCreditRepository(entc, logger)

	creditsSvc := credits.NewService(creditsRepo, cfg.Credits, logger)
	parser := extract.NewParser(extract.DefaultVocabulary())
	processor := pipeline.NewProcessor(logger, parser, scansRepo, jobsRepo, contactsRepo, creditsSvc)

	// LLM assist is optional; without it scans stop at the heuristic result.
	var drafter llm.EmailDrafter
	var assistQueue async.Queue
	if cfg.LLM.Enabled {
		openaiClient := openai.NewClient(openai.Config{
			Model:       cfg.LLM.Model,
			APIKey:      cfg.LLM.APIKey,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		assistant := pipeline.NewAssistant(logger, openaiClient, scansRepo, jobsRepo, contactsRepo, profilesRepo, cfg.LLM.Model)
		assistQueue = async.NewAssistQueue(assistant, logger,
			async.WithWorkers(4),
			async.WithQueueSize(512),
			async.WithProcessTimeout(3*time.Minute),
		)
		drafter = openaiClient
	}

	exportSvc := export.NewService(contactsRepo, logger)

	profilesService := svc.NewProfileServer(profiles.NewService(profilesRepo, creditsSvc, logger), logger)
	cardspb.RegisterProfilesServiceServer(grpcServer, profilesService)
	cardsService := svc.NewCardServer(processor, contactsRepo, profilesRepo, exportSvc, drafter, assistQueue, logger)
	cardspb.RegisterCardsServiceServer(grpcServer, cardsService)
	creditsService := svc.NewCreditServer(creditsSvc, creditsRepo, logger)
	cardspb.RegisterCreditsServiceServer(grpcServer, creditsService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("cardvaultd listening", "addr", cfg.Server.GRPCAddr, "llm_assist", cfg.LLM.Enabled)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	if assistQueue != nil {
		assistQueue.Shutdown(context.Background())
	}
	grpcServer.GracefulStop()
}
