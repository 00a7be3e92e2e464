// Package web serves the browser front end: an embedded single-page UI and
// a small JSON API over the settings core, bound to loopback by default.
package web

import (
	"context"
	"embed"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/krunkertools/bindsync/internal/history"
)

//go:embed ui/index.html
var uiFS embed.FS

// Server hosts the web front end.
type Server struct {
	addr       string
	hist       *history.Manager // nil when history is disabled
	httpServer *http.Server
}

// NewServer creates a web front end listening on addr. hist may be nil to
// disable operation logging.
func NewServer(addr string, hist *history.Manager) *Server {
	if addr == "" {
		addr = "127.0.0.1:8790"
	}
	return &Server{addr: addr, hist: hist}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// URL returns the address as a browsable URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://%s/", s.addr)
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Route("/api", func(r chi.Router) {
		r.Post("/validate", s.handleValidate)
		r.Post("/format", s.handleFormat)
		r.Post("/extract", s.handleExtract)
		r.Post("/merge", s.handleMerge)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("bindsync web UI listening on %s", s.URL())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := uiFS.ReadFile("ui/index.html")
	if err != nil {
		http.Error(w, "UI not bundled", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
