// Package web serves the triage UI: a form that triggers a triage run and
// the rendered ranking of the scored tickets.
package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"ticket-triage/internal/common/config"
	apperrors "ticket-triage/internal/common/errors"
	"ticket-triage/internal/common/logger"
	"ticket-triage/internal/common/metrics"
	"ticket-triage/internal/common/observability"
	"ticket-triage/internal/triage/presenter"
)

//go:embed templates/*
var templateFS embed.FS

// Server handles the HTTP surface. It holds no mutable state: every POST
// recomputes the triage from the injected read-only ticket list, and a GET
// always returns the empty form.
type Server struct {
	presenter *presenter.Presenter
	cfg       *config.Config
	logger    logger.Logger
	errs      *apperrors.ErrorHandler
	obs       *observability.Observability
	tmpl      *template.Template
}

func New(p *presenter.Presenter, cfg *config.Config, obs *observability.Observability, log logger.Logger) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	srvLog := log.WithFields(map[string]interface{}{"component": "web"})
	return &Server{
		presenter: p,
		cfg:       cfg,
		logger:    srvLog,
		errs:      apperrors.NewErrorHandler(srvLog),
		obs:       obs,
		tmpl:      tmpl,
	}, nil
}

// Handler returns the routed and instrumented handler tree.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleTriage)

	return s.withRequestLogging(mux)
}

// handleIndex renders the initial form with no results. It is also the
// reset action after a triage run; nothing leaks between requests.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, newPageData(nil, s.cfg.Triage.MaxBodyLength))
}

// handleTriage runs the scorer over the fixed ticket list and renders the
// ranked results with the tier summary.
func (s *Server) handleTriage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	result, err := s.presenter.Run(r.Context())
	if err != nil {
		s.obs.RecordTriageRun(r.Context(), "error")
		s.errs.HandleRequestError(w, r, err)
		return
	}

	s.obs.RecordTriageRun(r.Context(), "ok")
	s.obs.RecordRunDuration(r.Context(), time.Since(start), "ok")

	s.render(w, r, newPageData(result, s.cfg.Triage.MaxBodyLength))
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, data *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		// Headers are already written at this point, so log instead of
		// sending a second response.
		s.logger.Error("template render failed", map[string]interface{}{
			"error": err.Error(),
			"path":  r.URL.Path,
		})
	}
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(withRequestID(r.Context(), requestID)))

		elapsed := time.Since(start)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(elapsed.Seconds())

		s.logger.Info("request handled", map[string]interface{}{
			"requestId": requestID,
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    rec.status,
			"duration":  elapsed.String(),
		})
	})
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request identifier attached by the logging
// middleware, or an empty string.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
