package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/mentorhub/internal/config"
	logpkg "github.com/kailas-cloud/mentorhub/internal/logger"
	"github.com/kailas-cloud/mentorhub/internal/metrics"
	"github.com/kailas-cloud/mentorhub/internal/repository/application"
	chiTransport "github.com/kailas-cloud/mentorhub/internal/transport/chi"
	dashboarduc "github.com/kailas-cloud/mentorhub/internal/usecase/dashboard"
	directoryuc "github.com/kailas-cloud/mentorhub/internal/usecase/directory"
	healthuc "github.com/kailas-cloud/mentorhub/internal/usecase/health"
	mentorshipuc "github.com/kailas-cloud/mentorhub/internal/usecase/mentorship"
	profileuc "github.com/kailas-cloud/mentorhub/internal/usecase/profile"
	workspaceuc "github.com/kailas-cloud/mentorhub/internal/usecase/workspace"
	"github.com/kailas-cloud/mentorhub/internal/version"
)

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Starts the HTTP API. Configuration is read from config/<ENV>.yaml
(ENV defaults to local) unless --config is given. The seed file is loaded
at startup according to seed.mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file")
	return cmd
}

func runServe(ctx context.Context, configPath string) error {
	env := config.GetEnv()

	var (
		cfg config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting mentorhub API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("seed_mode", cfg.Seed.Mode),
	)

	store, err := openStore(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, readiness); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database")

	repos := newRepositories(store)
	if _, err := bootstrap(ctx, cfg.Seed, repos.targets(), logger); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	metrics.RegisterHTTPMetrics()
	metrics.RegisterFilterMetrics()

	directorySvc := directoryuc.New(repos.mentors, repos.projects, application.New(store)).
		WithMemo(cfg.Filter.MemoCapacity, metrics.MemoLookups)
	mentorshipSvc := mentorshipuc.New(repos.requests, repos.mentors)
	dashboardSvc := dashboarduc.New(repos.students)
	workspaceSvc := workspaceuc.New(repos.workspaces, repos.projects)
	profileSvc := profileuc.New(repos.profiles)
	healthSvc := healthuc.New(store, map[string]healthuc.CatalogChecker{
		"mentors":  repos.mentors,
		"projects": repos.projects,
	})

	server := chiTransport.NewServer(
		directorySvc, mentorshipSvc, dashboardSvc, workspaceSvc, profileSvc, healthSvc, logger,
	)
	handler := server.Router(chiTransport.RouterConfig{
		APIKeys:        cfg.Auth.APIKeys,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		CORSMaxAgeSec:  cfg.CORS.MaxAgeSec,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	return nil
}
