package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/inclusive-jobs/server/internal/api/http/router"
	httpServer "github.com/inclusive-jobs/server/internal/api/http/server"
	"github.com/inclusive-jobs/server/internal/config"
	"github.com/inclusive-jobs/server/internal/generation"
	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
	"github.com/inclusive-jobs/server/internal/repository/memory"
	"github.com/inclusive-jobs/server/internal/seed"
	"github.com/inclusive-jobs/server/internal/service"
	storageMemory "github.com/inclusive-jobs/server/internal/storage/memory"
	storageMinio "github.com/inclusive-jobs/server/internal/storage/minio"
	"github.com/inclusive-jobs/server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	userRepo := memory.NewUserRepository()
	sessionRepo := memory.NewSessionRepository()
	catalogRepo := memory.NewCatalogRepository()
	resumeRepo := memory.NewResumeRepository()
	applicationRepo := memory.NewApplicationRepository()
	chatRepo := memory.NewChatRepository()
	forumRepo := memory.NewForumRepository()
	supportRepo := memory.NewSupportRepository()

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	storageClient := newStorage(ctx, cfg, logger)
	generator := newGenerator(ctx, cfg, logger)

	authService := service.NewAuth(userRepo, sessionRepo, storageClient, tokenManager, logger)
	subscriptionService := service.NewSubscription(userRepo, sessionRepo, cfg.Subscription.EnforceExpiry, logger)
	catalogService := service.NewCatalog(catalogRepo, userRepo, generator, subscriptionService, logger)
	resumeService := service.NewResume(resumeRepo, userRepo, storageClient, generator, subscriptionService, logger)
	applicationService := service.NewApplications(applicationRepo, catalogRepo, resumeRepo, logger)
	assistantService := service.NewAssistant(chatRepo, userRepo, generator, logger)
	forumService := service.NewForum(forumRepo, userRepo, logger)
	supportService := service.NewSupport(supportRepo, logger)

	if cfg.SeedDemoJobs {
		if err := seed.Demo(userRepo, catalogRepo, logger); err != nil {
			logger.Fatal("failed to seed demo catalog", "error", err)
		}
	}

	r := router.New(
		authService,
		catalogService,
		resumeService,
		applicationService,
		subscriptionService,
		assistantService,
		forumService,
		supportService,
		tokenManager,
		logger,
	)
	server := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", server.Address())
		if err := server.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", server.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newStorage(ctx context.Context, cfg *config.Config, logger *logger.Logger) model.DocumentStorage {
	if cfg.Storage.UseMemory {
		logger.Info("using in-memory document storage")
		return storageMemory.NewStorage()
	}

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}

	storageClient, err := storageMinio.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	return storageClient
}

func newGenerator(ctx context.Context, cfg *config.Config, logger *logger.Logger) model.Generator {
	if cfg.Generator.APIKey == "" {
		logger.Info("generation API key not set, AI features disabled")
		return generation.NewDisabled()
	}

	client, err := generation.NewClient(ctx, cfg.Generator.APIKey, cfg.Generator.Model)
	if err != nil {
		logger.Fatal("failed to create generation client", "error", err)
	}

	return client
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
