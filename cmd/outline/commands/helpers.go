package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/batch"
	"github.com/tsawler/outline/model"
)

// extractFunc builds the configured extraction used by every subcommand
func (a *app) extractFunc() batch.ExtractFunc {
	return func(ctx context.Context, path string) (*model.Result, error) {
		ext := outline.Open(path).
			WithStopWords(a.words.Get()).
			WithLogger(a.logger)
		if a.cfg.Batch.Validate {
			ext = ext.WithValidation()
		}
		return ext.Analyze(ctx)
	}
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
