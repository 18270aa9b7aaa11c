package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/orthorun/orthorun/internal/config"
	httpserver "github.com/orthorun/orthorun/internal/interfaces/http"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  "Start the orthonormal basis HTTP server with the configured address, CORS policy, and rate limits",
		RunE:  runServe,
	}

	cmd.Flags().String("config", "", "Path to YAML server config (defaults apply when omitted)")
	cmd.Flags().String("host", "", "Listen host (overrides config)")
	cmd.Flags().Int("port", 0, "Listen port (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultServerConfig()

	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		loaded, err := config.LoadServerConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Info().Str("path", configPath).Msg("loaded server config")
	}

	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}

	server, err := httpserver.NewServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
			return err
		}
	}

	log.Info().Msg("server stopped")
	return nil
}
