// Package server exposes the resumai core over an HTTP JSON API. Each browser
// session gets its own isolated conversation store; the advice service is
// shared since it holds no per-session state.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Nanford/resumai/internal/advice"
	"github.com/Nanford/resumai/internal/i18n"
	"github.com/Nanford/resumai/internal/store"
)

// Server is the HTTP front of the resumai core.
type Server struct {
	httpServer *http.Server
	svc        *advice.Service
	sessions   *sessionManager
	inflight   *inflightGuard
	tr         i18n.Translator
	logger     *slog.Logger
}

// Config holds server construction parameters.
type Config struct {
	Port       int
	Service    *advice.Service
	Backend    store.KV
	Translator i18n.Translator
	Logger     *slog.Logger
}

// New creates a server instance. The backend is shared across sessions;
// isolation comes from per-session key namespaces.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		svc:      cfg.Service,
		sessions: newSessionManager(cfg.Backend, cfg.Translator, logger),
		inflight: newInflightGuard(),
		tr:       cfg.Translator,
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/advice", s.handleAdvice)
	mux.HandleFunc("POST /api/chat", s.handleChat)
	mux.HandleFunc("GET /api/conversations", s.handleListConversations)
	mux.HandleFunc("POST /api/conversations", s.handleSaveConversation)
	mux.HandleFunc("GET /api/conversations/{id}/messages", s.handleGetMessages)
	mux.HandleFunc("POST /api/conversations/{id}/messages", s.handleAppendMessage)
	mux.HandleFunc("DELETE /api/conversations/{id}", s.handleDeleteConversation)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.withMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the full middleware-wrapped handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down http server")
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
