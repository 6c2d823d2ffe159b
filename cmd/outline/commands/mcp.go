package commands

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/outline/internal/mcptool"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as an MCP server over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the
outline_extract tool. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	srv := mcptool.NewServer(version, mcptool.Options{
		DocTimeout: current.cfg.Batch.DocTimeout,
		Extract:    current.extractFunc(),
	}, current.logger)

	current.logger.Info().Str("tool", mcptool.ToolName).Msg("MCP server running on stdio")
	return mcptool.Serve(ctx, srv)
}
