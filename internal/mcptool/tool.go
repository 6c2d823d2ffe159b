// Package mcptool exposes outline extraction as an MCP tool.
package mcptool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/batch"
	"github.com/tsawler/outline/model"
)

// ToolName is the name the extraction tool is registered under
const ToolName = "outline_extract"

// Options configures the tool.
type Options struct {
	// DocTimeout bounds a single extraction; zero means no limit
	DocTimeout time.Duration

	// Extract defaults to outline.Open(path).Analyze
	Extract batch.ExtractFunc
}

// Tool extracts the title and outline of a PDF on the server's file system.
type Tool struct {
	opts   Options
	logger zerolog.Logger
}

type extractReq struct {
	Path string `json:"path"`
}

// New creates the tool, filling unset options with defaults.
func New(opts Options, logger zerolog.Logger) *Tool {
	if opts.Extract == nil {
		opts.Extract = func(ctx context.Context, path string) (*model.Result, error) {
			return outline.Open(path).Analyze(ctx)
		}
	}
	return &Tool{opts: opts, logger: logger}
}

// NewServer creates an MCP server with the tool registered.
func NewServer(version string, opts Options, logger zerolog.Logger) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "outline", Version: version}, nil)
	New(opts, logger).Register(srv)
	return srv
}

// Serve runs the server over stdin/stdout until the client disconnects or
// ctx is cancelled.
func Serve(ctx context.Context, srv *mcp.Server) error {
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// Register adds the tool to srv.
func (t *Tool) Register(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        ToolName,
		Description: "Infer the title and H1/H2 heading outline of a PDF file. Returns {\"title\", \"outline\": [{\"level\", \"text\", \"page\"}]}.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"path": map[string]any{"type": "string", "description": "Path of the PDF file"},
			},
			"required": []string{"path"},
		},
	}
	srv.AddTool(tool, t.handle)
}

// handle serves one tool call. Bad arguments are tool errors; extraction
// failures return the sentinel result flagged as an error so clients still
// receive the usual JSON shape.
func (t *Tool) handle(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args extractReq
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
		}
	}
	args.Path = strings.TrimSpace(args.Path)
	if args.Path == "" {
		return toolError(errors.New("invalid arguments: path is required")), nil
	}

	start := time.Now()
	result, err := t.extract(ctx, args.Path)
	if err != nil {
		t.logger.Warn().Err(err).Str("file", args.Path).Msg("mcp extraction failed")
		res, encErr := textResult(model.ErrorResult())
		if encErr != nil {
			return toolError(encErr), nil
		}
		res.IsError = true
		return res, nil
	}

	t.logger.Info().
		Str("file", args.Path).
		Int("headings", len(result.Outline)).
		Dur("elapsed", time.Since(start)).
		Msg("mcp extraction complete")

	res, err := textResult(result)
	if err != nil {
		return toolError(err), nil
	}
	return res, nil
}

func (t *Tool) extract(ctx context.Context, path string) (result *model.Result, err error) {
	if t.opts.DocTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.opts.DocTimeout)
		defer cancel()
	}

	defer func() {
		if rec := recover(); rec != nil {
			result, err = nil, fmt.Errorf("%w: %v", outline.ErrInternal, rec)
		}
	}()

	result, err = t.opts.Extract(ctx, path)
	if err == nil && result == nil {
		err = outline.ErrInternal
	}
	return result, err
}

func textResult(result *model.Result) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}

func toolError(err error) *mcp.CallToolResult {
	var res mcp.CallToolResult
	res.SetError(err)
	return &res
}
