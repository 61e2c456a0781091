package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Code-Monger/ToBeBot/pkg/config"
	"github.com/Code-Monger/ToBeBot/pkg/serverinfo"
	"github.com/Code-Monger/ToBeBot/pkg/stats"
	"github.com/Code-Monger/ToBeBot/pkg/validator"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over SSE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg, logger)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "Port to listen on (overrides the config file)")
	return cmd
}

// newMCPServer builds the MCP server with every tool and resource registered.
func newMCPServer(cfg *config.Config, logger *zap.Logger) (*server.MCPServer, *stats.Tracker, error) {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	v, err := buildValidator(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	tracker, err := stats.NewTracker(cfg.StatsFile(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize stats tracker: %w", err)
	}

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		cfg.Server.Version,
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithInstructions(cfg.Server.Instructions),
	)

	// Register tools and resources
	validator.NewHandler(v, tracker, logger).Register(mcpServer)
	serverinfo.NewProvider(cfg.Server.Name, cfg.Server.Version, v.Lexicon()).Register(mcpServer)
	tracker.Register(mcpServer)

	return mcpServer, tracker, nil
}

// runServer serves until ctx is cancelled, then shuts down gracefully.
func runServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("server")

	mcpServer, tracker, err := newMCPServer(cfg, logger)
	if err != nil {
		return err
	}

	baseURL := cfg.ResolvedBaseURL()
	sseServer := server.NewSSEServer(
		mcpServer,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/"),
		server.WithMessageEndpoint("/messages"),
	)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: sseServer,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting MCP server", zap.Int("port", cfg.Server.Port), zap.String("base_url", baseURL))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	log.Info("Shutting down server")
	log.Info("Final server statistics\n" + stats.FormatStats(tracker.GetSessionStats(), tracker.GetPersistentStats()))

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("Server stopped")
	return nil
}
