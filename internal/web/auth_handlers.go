package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"visitordesk/internal/session"
	"visitordesk/internal/visitor"
)

type loginData struct {
	Error    string
	Username string
}

// handleLogin renders the login page and processes submissions. A failed
// attempt re-renders with an inline error and mutates no persisted state.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderPage(w, "login.html", loginData{})

	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		username := strings.TrimSpace(r.FormValue("username"))
		password := strings.TrimSpace(r.FormValue("password"))

		err := s.gate.Login(username, password)
		switch {
		case errors.Is(err, session.ErrMissingCredentials):
			w.WriteHeader(http.StatusUnprocessableEntity)
			s.renderPage(w, "login.html", loginData{
				Error:    "Please enter both username and password.",
				Username: username,
			})
		case errors.Is(err, session.ErrBadCredentials):
			w.WriteHeader(http.StatusUnauthorized)
			s.renderPage(w, "login.html", loginData{
				Error:    "Invalid username or password. Please try again.",
				Username: username,
			})
		case err != nil:
			http.Error(w, "Error recording login", http.StatusInternalServerError)
		default:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		}

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleLogout shows a confirmation page on GET and logs out on POST.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderPage(w, "confirm_logout.html", nil)

	case http.MethodPost:
		s.gate.Logout()
		http.Redirect(w, r, "/login", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleExportCSV serves the collection as a dated CSV download.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+visitor.ExportFilename("csv")+`"`)
	if err := visitor.WriteCSV(w, s.store.List()); err != nil {
		http.Error(w, "Error exporting visitors", http.StatusInternalServerError)
	}
}

// handleExportJSON serves the collection as a dated pretty-printed JSON download.
func (s *Server) handleExportJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+visitor.ExportFilename("json")+`"`)
	if err := visitor.WriteJSON(w, s.store.List()); err != nil {
		http.Error(w, "Error exporting visitors", http.StatusInternalServerError)
	}
}

// handleAPIStats returns the dashboard counters; the page polls it
// periodically to refresh.
func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(visitor.Stats(s.store.List())); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}
