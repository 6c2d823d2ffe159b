package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/outline/batch"
	"github.com/tsawler/outline/model"
)

var (
	fileOutput string
	fileStrict bool
)

var fileCmd = &cobra.Command{
	Use:   "file <pdf>",
	Short: "Extract the outline of a single PDF",
	Long: `Extract the title and outline of one PDF and print the JSON result to stdout,
or write it to --output. Failures produce the "Error extracting title" result
unless --strict is set.`,
	Args: cobra.ExactArgs(1),
	RunE: runFile,
}

func init() {
	fileCmd.Flags().StringVarP(&fileOutput, "output", "o", "", "write the JSON result to this file")
	fileCmd.Flags().BoolVar(&fileStrict, "strict", false, "exit with an error instead of writing the error result")
	rootCmd.AddCommand(fileCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	if current.cfg.Batch.DocTimeout > 0 {
		var stop context.CancelFunc
		ctx, stop = context.WithTimeout(ctx, current.cfg.Batch.DocTimeout)
		defer stop()
	}

	result, err := current.extractFunc()(ctx, args[0])
	if err != nil {
		if fileStrict {
			return err
		}
		current.logger.Warn().Err(err).Str("file", args[0]).Msg("error processing document")
		result = model.ErrorResult()
	}

	if fileOutput != "" {
		if err := os.MkdirAll(filepath.Dir(fileOutput), 0o755); err != nil {
			return err
		}
		return batch.WriteResult(fileOutput, result)
	}
	return batch.Encode(cmd.OutOrStdout(), result)
}
