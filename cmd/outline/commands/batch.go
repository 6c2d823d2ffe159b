package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsawler/outline/batch"
)

var (
	batchInput   string
	batchOutput  string
	batchWorkers int
	batchTimeout time.Duration
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process every PDF in a directory",
	Long: `Process every *.pdf file directly inside the input directory and write one
<name>.json per document to the output directory. Documents that fail are
written with the "Error extracting title" result.`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchInput, "input", "i", "", "input directory (default from config)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "output directory (default from config)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "documents processed concurrently (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 0, "per-document timeout (default from config)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := current.cfg.Batch
	if batchInput != "" {
		cfg.InputDir = batchInput
	}
	if batchOutput != "" {
		cfg.OutputDir = batchOutput
	}
	if batchWorkers > 0 {
		cfg.Workers = batchWorkers
	}
	if batchTimeout > 0 {
		cfg.DocTimeout = batchTimeout
	}

	ctx, cancel := signalContext()
	defer cancel()

	runner := batch.NewRunner(batch.Options{
		InputDir:   cfg.InputDir,
		OutputDir:  cfg.OutputDir,
		Workers:    cfg.Workers,
		DocTimeout: cfg.DocTimeout,
		Extract:    current.extractFunc(),
	}, current.logger)

	summary, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Processed %d PDF files (%d failed) in %s\n",
		len(summary.Documents), summary.Failed(), summary.Elapsed.Round(time.Millisecond))
	return nil
}
