package commands

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/tsawler/outline/internal/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve outline extraction over HTTP",
	Long: `Start an HTTP server. POST a PDF to /v1/outline, either as the raw request
body or as the "file" field of a multipart form, to receive its JSON outline.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := current.cfg.Server
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	logger := current.logger

	router := httpapi.NewRouter(httpapi.Options{
		MaxUploadBytes: cfg.MaxUploadBytes,
		DocTimeout:     current.cfg.Batch.DocTimeout,
		Extract:        current.extractFunc(),
	}, logger)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, cancel := signalContext()
	defer cancel()

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		logger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.GracefulShutdown)
	defer stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		return srv.Close()
	}

	logger.Info().Msg("server stopped")
	return nil
}
