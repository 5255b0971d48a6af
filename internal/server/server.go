package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nguyentantai21042004/lecture-pipeline/internal/capture"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/config"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/logger"
	"github.com/nguyentantai21042004/lecture-pipeline/internal/pipeline"
)

// App is the HTTP observer surface over the pipeline and the recorder.
type App struct {
	cfg      *config.Config
	pipe     pipeline.Pipeline
	recorder capture.Recorder
	logger   logger.Logger

	router   *chi.Mux
	layout   pipeline.Layout
	upgrader websocket.Upgrader
}

// New creates a new App instance
func New(cfg *config.Config, pipe pipeline.Pipeline, rec capture.Recorder, log logger.Logger) *App {
	app := &App{
		cfg:      cfg,
		pipe:     pipe,
		recorder: rec,
		logger:   log,
		router:   chi.NewRouter(),
		layout:   pipeline.NewLayout(cfg.Paths.WorkDir),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	app.registerRoutes()
	return app
}

// Router returns the HTTP handler for mounting or testing.
func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) registerRoutes() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(middleware.Recoverer)

	a.router.Get("/healthz", a.health)
	a.router.Handle("/metrics", promhttp.Handler())

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/status", a.status)
		r.Post("/pipeline/start", a.startPipeline)
		r.Post("/pipeline/stop", a.stopPipeline)
		r.Post("/record/start", a.startRecording)
		r.Post("/record/stop", a.stopRecording)
		r.Get("/devices", a.devices)
		r.Get("/notes", a.notes)
	})

	a.router.Get("/ws/status", a.statusWS)
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "HTTP server listening on %s", a.cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error(ctx, "Graceful shutdown failed: %v", err)
		return srv.Close()
	}
	return <-errCh
}

func (a *App) respondJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.Error(context.Background(), "Failed to encode response: %v", err)
	}
}

func (a *App) respondError(w http.ResponseWriter, code int, message string) {
	a.respondJSON(w, code, errorResponse{Error: message})
}
