// Package commands implements the outline command line.
package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tsawler/outline/internal/config"
	"github.com/tsawler/outline/internal/observability"
	"github.com/tsawler/outline/lexicon"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	stopWords string
	validate  bool
	version   = "dev"
)

// app holds state shared by every subcommand once the root has run
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	words  *lexicon.Loader
}

var current app

var rootCmd = &cobra.Command{
	Use:   "outline",
	Short: "Infer the title and heading outline of PDF documents",
	Long: `outline reads PDF files and infers each document's title and its H1/H2
heading outline from font sizes, weights and numbering patterns. Results are
written as JSON.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Observability.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Observability.LogFormat = strings.ToLower(logFormat)
		}
		if cmd.Flags().Changed("stopwords") {
			cfg.Lexicon.StopWordsPath = stopWords
		}
		if cmd.Flags().Changed("validate") {
			cfg.Batch.Validate = validate
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("validate config: %w", err)
		}

		current = app{
			cfg: cfg,
			logger: observability.NewLogger(observability.LogConfig{
				Level:       cfg.Observability.LogLevel,
				Format:      cfg.Observability.LogFormat,
				ServiceName: "outline",
			}),
			words: lexicon.NewLoader(cfg.Lexicon.StopWordsPath),
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringVar(&stopWords, "stopwords", "", "optional stop-word list, one word per line")
	rootCmd.PersistentFlags().BoolVar(&validate, "validate", false, "validate PDF structure before decoding")
}

// SetVersion records the build version reported by the version command
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
