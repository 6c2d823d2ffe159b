// Package httpapi exposes outline extraction over HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/tsawler/outline"
	"github.com/tsawler/outline/batch"
	"github.com/tsawler/outline/model"
)

// DefaultMaxUploadBytes bounds request bodies when Options leaves it unset
const DefaultMaxUploadBytes int64 = 50 << 20

// multipart parts above this size spill to disk
const multipartMemory = 8 << 20

// Options configures the HTTP surface.
type Options struct {
	// MaxUploadBytes limits the request body; larger uploads get 413
	MaxUploadBytes int64

	// DocTimeout bounds a single extraction; zero means no limit
	DocTimeout time.Duration

	// Extract defaults to outline.Open(path).Analyze
	Extract batch.ExtractFunc
}

// Handler serves the outline endpoints.
type Handler struct {
	opts   Options
	logger zerolog.Logger
}

// NewHandler creates a handler, filling unset options with defaults.
func NewHandler(opts Options, logger zerolog.Logger) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if opts.Extract == nil {
		opts.Extract = func(ctx context.Context, path string) (*model.Result, error) {
			return outline.Open(path).Analyze(ctx)
		}
	}
	return &Handler{opts: opts, logger: logger}
}

// NewRouter creates the router with all routes configured.
func NewRouter(opts Options, logger zerolog.Logger) http.Handler {
	h := NewHandler(opts, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/outline", h.Outline)
	})

	return r
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// Outline handles POST /v1/outline. The PDF is either the "file" part of a
// multipart form or the raw request body. The response body is always an
// outline result; failures carry the sentinel result and a non-2xx status.
func (h *Handler) Outline(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)
	logger := h.logger.With().Str("request_id", chimiddleware.GetReqID(r.Context())).Logger()

	body, closeBody, err := uploadReader(r)
	if err != nil {
		h.writeError(w, logger, uploadStatus(err), err)
		return
	}
	defer closeBody()

	path, size, err := spool(body)
	if path != "" {
		defer os.Remove(path)
	}
	if err != nil {
		h.writeError(w, logger, uploadStatus(err), err)
		return
	}
	if size == 0 {
		h.writeError(w, logger, http.StatusBadRequest, errors.New("empty upload"))
		return
	}

	ctx := r.Context()
	if h.opts.DocTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.DocTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := h.extract(ctx, path)
	if err != nil {
		h.writeError(w, logger, extractStatus(err), err)
		return
	}

	logger.Info().
		Int64("bytes", size).
		Str("title", result.Title).
		Int("headings", len(result.Outline)).
		Dur("elapsed", time.Since(start)).
		Msg("outline extracted")

	writeResult(w, logger, http.StatusOK, result)
}

// extract runs the configured extract function, converting panics and nil
// results into ErrInternal.
func (h *Handler) extract(ctx context.Context, path string) (result *model.Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			result, err = nil, fmt.Errorf("%w: %v", outline.ErrInternal, rec)
		}
	}()

	result, err = h.opts.Extract(ctx, path)
	if err == nil && result == nil {
		err = outline.ErrInternal
	}
	return result, err
}

// uploadReader returns the PDF stream of the request.
func uploadReader(r *http.Request) (io.Reader, func(), error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, func() {}, nil
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, nil, fmt.Errorf("parse multipart form: %w", err)
	}
	cleanup := func() {
		if r.MultipartForm != nil {
			r.MultipartForm.RemoveAll()
		}
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("form field \"file\": %w", err)
	}
	return file, func() {
		file.Close()
		cleanup()
	}, nil
}

// spool copies the upload to a temporary file the decoder can seek in. The
// file carries no .pdf extension so only the %PDF- magic identifies it.
func spool(body io.Reader) (string, int64, error) {
	f, err := os.CreateTemp("", "outline-*.upload")
	if err != nil {
		return "", 0, fmt.Errorf("create temp file: %w", err)
	}

	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return f.Name(), n, fmt.Errorf("read upload: %w", err)
	}
	return f.Name(), n, nil
}

func uploadStatus(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func extractStatus(err error) int {
	switch {
	case errors.Is(err, outline.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, outline.ErrDecode), errors.Is(err, outline.ErrNoPages):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, logger zerolog.Logger, status int, err error) {
	logger.Warn().Err(err).Int("status", status).Msg("outline request failed")
	w.Header().Set("X-Outline-Error", err.Error())
	writeResult(w, logger, status, model.ErrorResult())
}

func writeResult(w http.ResponseWriter, logger zerolog.Logger, status int, result *model.Result) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := batch.Encode(w, result); err != nil {
		logger.Error().Err(err).Int("status", status).Msg("failed to write response")
	}
}

// requestLogger logs one line per request with the chi request id.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				logger.Debug().
					Str("request_id", chimiddleware.GetReqID(r.Context())).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", ww.Status()).
					Int("bytes", ww.BytesWritten()).
					Dur("elapsed", time.Since(start)).
					Msg("http request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
