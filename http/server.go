package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/webclip"
	"github.com/fwojciec/webclip/clip"
	"github.com/rs/cors"
)

// maxRequestSize bounds request bodies. Clip requests carry a whole page.
const maxRequestSize = 20 << 20

// ShutdownTimeout is how long in-flight requests get to finish.
const ShutdownTimeout = 5 * time.Second

// Server exposes the clipping operations to the browser userscript.
type Server struct {
	Capturer *clip.Capturer
	Options  webclip.OptionsService
	Logger   *slog.Logger

	// AllowedOrigins lists the origins allowed to call the API.
	// Defaults to any origin.
	AllowedOrigins []string

	server *http.Server
}

// NewServer creates a new Server.
func NewServer(capturer *clip.Capturer, options webclip.OptionsService, logger *slog.Logger) *Server {
	return &Server{
		Capturer: capturer,
		Options:  options,
		Logger:   logger,
	}
}

// Handler returns the API routes wrapped with CORS handling.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/clip", s.handleClip)
	mux.HandleFunc("POST /api/selection", s.handleSelection)
	mux.HandleFunc("GET /api/options", s.handleGetOptions)
	mux.HandleFunc("PUT /api/options/{key}", s.handleSetOption)
	mux.HandleFunc("DELETE /api/options/{key}", s.handleUnsetOption)

	origins := s.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	}).Handler(mux)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(ln)
	}()

	s.logger().Info("server started", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger().Info("server stopped")
	return nil
}

// ClipRequest is the body of POST /api/clip.
type ClipRequest struct {
	URL  string   `json:"url"`
	HTML string   `json:"html,omitempty"`
	Tags []string `json:"tags,omitempty"`

	// Deliver sends the result to the enabled destinations after
	// checking their settings.
	Deliver bool `json:"deliver,omitempty"`
}

// SelectionRequest is the body of POST /api/selection.
type SelectionRequest struct {
	HTML     string `json:"html,omitempty"`
	URL      string `json:"url,omitempty"`
	Selector string `json:"selector,omitempty"`
}

// SelectionResponse is the body returned by POST /api/selection.
type SelectionResponse struct {
	Markdown string `json:"markdown"`
}

// SetOptionRequest is the body of PUT /api/options/{key}.
type SetOptionRequest struct {
	Value string `json:"value"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleClip(w http.ResponseWriter, r *http.Request) {
	var req ClipRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := s.Options.Options(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	pageReq := clip.PageRequest{URL: req.URL, HTML: req.HTML, Tags: req.Tags}
	var result *webclip.Result
	if req.Deliver {
		result, err = s.Capturer.Capture(r.Context(), pageReq, opts)
	} else {
		result, err = s.Capturer.Convert(r.Context(), pageReq, opts)
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	md, err := s.Capturer.Select(r.Context(), clip.SelectionRequest{
		HTML:     req.HTML,
		URL:      req.URL,
		Selector: req.Selector,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, SelectionResponse{Markdown: md})
}

func (s *Server) handleGetOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.Options.Options(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, opts)
}

func (s *Server) handleSetOption(w http.ResponseWriter, r *http.Request) {
	var req SetOptionRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.Options.Set(r.Context(), r.PathValue("key"), req.Value); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.handleGetOptions(w, r)
}

func (s *Server) handleUnsetOption(w http.ResponseWriter, r *http.Request) {
	if err := s.Options.Unset(r.Context(), r.PathValue("key")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.handleGetOptions(w, r)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return webclip.Errorf(webclip.EINVALID, "invalid request body: %v", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger().Error("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := webclip.ErrorCode(err)
	status := ErrorStatusCode(code)
	if status == http.StatusInternalServerError {
		s.logger().Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	s.writeJSON(w, status, ErrorResponse{Error: webclip.ErrorMessage(err), Code: code})
}

// ErrorStatusCode returns the HTTP status for an application error code.
func ErrorStatusCode(code string) int {
	switch code {
	case webclip.EINVALID, webclip.ENOSELECTION, webclip.ECONFIG:
		return http.StatusBadRequest
	case webclip.ENOTFOUND:
		return http.StatusNotFound
	case webclip.EEXTRACTION:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
