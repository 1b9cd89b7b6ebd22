// Package web provides the HTTP server and handlers for the visitor dashboard.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"visitordesk/internal/kvstore"
	"visitordesk/internal/logging"
	"visitordesk/internal/render"
	"visitordesk/internal/session"
	"visitordesk/internal/visitor"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Server is the dashboard HTTP server.
type Server struct {
	kv        *kvstore.Store
	store     *visitor.Store
	gate      *session.Gate
	renderer  *render.Renderer
	templates *template.Template
	mux       *http.ServeMux
}

// NewServer creates a dashboard server over the given stores and gate.
func NewServer(kv *kvstore.Store, store *visitor.Store, gate *session.Gate) (*Server, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	s := &Server{
		kv:        kv,
		store:     store,
		gate:      gate,
		renderer:  renderer,
		templates: tmpl,
		mux:       http.NewServeMux(),
	}

	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}

	s.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticContent))))
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/login", s.handleLogin)
	s.mux.HandleFunc("/logout", s.handleLogout)
	s.mux.HandleFunc("/", s.handleDashboard)
	s.mux.HandleFunc("/visitors/", s.handleVisitorRoute)
	s.mux.HandleFunc("/export/csv", s.handleExportCSV)
	s.mux.HandleFunc("/export/json", s.handleExportJSON)
	s.mux.HandleFunc("/api/stats", s.handleAPIStats)

	return s, nil
}

// ServeHTTP implements http.Handler. The session gate runs on every request
// and enforces mutual exclusion between the login and dashboard surfaces.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requireLogin(s.gate, s.mux).ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server with request logging.
func (s *Server) ListenAndServe(port int) error {
	addr := fmt.Sprintf(":%d", port)
	fmt.Printf("Starting dashboard on http://localhost%s\n", addr)
	return http.ListenAndServe(addr, logging.RequestLogger(s))
}

// requireLogin is the gate middleware: logged-out requests are redirected to
// the login page, and logged-in requests never see it again.
func requireLogin(gate *session.Gate, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loggedIn := gate.IsLoggedIn()

		if isPublicPath(r.URL.Path) {
			if loggedIn && r.URL.Path == "/login" {
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if !loggedIn {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isPublicPath reports whether a path is reachable without a session.
func isPublicPath(path string) bool {
	if path == "/login" || path == "/health" {
		return true
	}
	return strings.HasPrefix(path, "/static/")
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

// renderPage executes a full page template.
func (s *Server) renderPage(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
	}
}
