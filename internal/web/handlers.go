package web

import (
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"visitordesk/internal/notify"
	"visitordesk/internal/render"
	"visitordesk/internal/visitor"
)

// statsRefreshInterval is how often the dashboard polls for fresh counters.
const statsRefreshInterval = 30 * time.Second

type dashboardData struct {
	Welcome      string
	Stats        visitor.Summary
	Search       string
	Status       string
	View         render.Mode
	VisitorsHTML template.HTML
	Flash        *notify.Notification
	DismissMS    int64
	RefreshMS    int64
}

type formData struct {
	Title     string
	SaveLabel string
	ID        string
	Form      visitor.Form
	Missing   []string
	Flash     *notify.Notification
	DismissMS int64
}

type confirmDeleteData struct {
	ID   string
	Name string
}

// handleDashboard renders the visitor list with search, status filter and
// the card/table view switch.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	q := visitor.Query{
		Search: r.URL.Query().Get("q"),
		Status: visitor.Status(r.URL.Query().Get("status")),
	}
	if q.Status != "" && !visitor.ValidStatus(string(q.Status)) {
		q.Status = ""
	}
	view := render.ParseMode(r.URL.Query().Get("view"))

	records := s.store.List()
	filtered := visitor.Filter(records, q)

	visitorsHTML, err := s.renderer.Visitors(filtered, view)
	if err != nil {
		http.Error(w, "Error rendering visitors", http.StatusInternalServerError)
		return
	}

	data := dashboardData{
		Welcome:      s.gate.AdminUsername(),
		Stats:        visitor.Stats(records),
		Search:       q.Search,
		Status:       string(q.Status),
		View:         view,
		VisitorsHTML: visitorsHTML,
		DismissMS:    notify.AutoDismiss.Milliseconds(),
		RefreshMS:    statsRefreshInterval.Milliseconds(),
	}
	if n, ok := notify.PopFlash(w, r); ok {
		data.Flash = &n
	}

	s.renderPage(w, "dashboard.html", data)
}

// handleVisitorRoute routes /visitors/* requests: the add form, the
// per-record edit form, the delete confirmation and the save endpoint.
func (s *Server) handleVisitorRoute(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/visitors/")

	switch {
	case path == "new":
		s.handleNewForm(w, r)
	case path == "save":
		s.handleSave(w, r)
	case strings.HasSuffix(path, "/edit"):
		s.handleEditForm(w, r, strings.TrimSuffix(path, "/edit"))
	case strings.HasSuffix(path, "/delete"):
		s.handleDelete(w, r, strings.TrimSuffix(path, "/delete"))
	default:
		http.NotFound(w, r)
	}
}

// handleNewForm shows an empty form with the check-in time defaulted to now.
func (s *Server) handleNewForm(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "form.html", formData{
		Title:     "Add New Visitor",
		SaveLabel: "Save Visitor",
		Form:      visitor.Form{CheckInTime: visitor.FormatCheckInTime(time.Now())},
	})
}

// handleEditForm shows the form pre-populated from the target record.
// An unknown id silently goes home.
func (s *Server) handleEditForm(w http.ResponseWriter, r *http.Request, id string) {
	v, err := s.store.Get(id)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	s.renderPage(w, "form.html", formData{
		Title:     "Edit Visitor",
		SaveLabel: "Update Visitor",
		ID:        id,
		Form:      visitor.FormFromVisitor(v),
	})
}

// handleSave validates the submission and adds or updates the record.
// Validation failures re-render the form with the missing fields reported.
func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	id := r.FormValue("id")
	form := visitor.Form{
		Name:        r.FormValue("visitorName"),
		Phone:       r.FormValue("visitorPhone"),
		Email:       r.FormValue("visitorEmail"),
		Company:     r.FormValue("visitorCompany"),
		Purpose:     r.FormValue("visitorPurpose"),
		Host:        r.FormValue("visitorHost"),
		Status:      r.FormValue("visitorStatus"),
		CheckInTime: r.FormValue("checkInTime"),
		Notes:       r.FormValue("visitorNotes"),
	}

	if missing := form.Validate(); len(missing) > 0 {
		title, label := "Add New Visitor", "Save Visitor"
		if id != "" {
			title, label = "Edit Visitor", "Update Visitor"
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		s.renderPage(w, "form.html", formData{
			Title:     title,
			SaveLabel: label,
			ID:        id,
			Form:      form,
			Missing:   missing,
		})
		return
	}

	if id == "" {
		s.store.Add(form.Fields())
		notify.SetFlash(w, notify.Notification{
			Message:  "Visitor added successfully!",
			Severity: notify.Success,
		})
	} else {
		_, err := s.store.Update(id, form.Patch())
		if err != nil && !errors.Is(err, visitor.ErrNotFound) {
			notify.SetFlash(w, notify.Notification{
				Message:  "Error saving visitor. Please try again.",
				Severity: notify.Error,
			})
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		if err == nil {
			notify.SetFlash(w, notify.Notification{
				Message:  "Visitor updated successfully!",
				Severity: notify.Success,
			})
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleDelete shows the confirmation page on GET and deletes on POST.
// Opening the confirmation for an unknown id silently goes home; cancelling
// is a plain link and never mutates anything.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	switch r.Method {
	case http.MethodGet:
		v, err := s.store.Get(id)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		s.renderPage(w, "confirm_delete.html", confirmDeleteData{ID: id, Name: v.Name})

	case http.MethodPost:
		if _, err := s.store.Delete(id); err == nil {
			notify.SetFlash(w, notify.Notification{
				Message:  "Visitor deleted successfully!",
				Severity: notify.Success,
			})
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
