package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"visitordesk/internal/kvstore"
	"visitordesk/internal/session"
	"visitordesk/internal/visitor"
)

// testServer returns a server with an active session.
func testServer(t *testing.T) (*Server, *visitor.Store) {
	t.Helper()

	kv, err := kvstore.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open kvstore: %v", err)
	}
	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Errorf("close kvstore: %v", err)
		}
	})

	store := visitor.NewStore(kv)
	gate := session.NewGate(kv, session.StaticVerifier{Username: "admin", Password: "admin123"})
	if err := gate.Login("admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	srv, err := NewServer(kv, store, gate)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv, store
}

// testServerLoggedOut returns a server with no session.
func testServerLoggedOut(t *testing.T) *Server {
	t.Helper()

	kv, err := kvstore.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open kvstore: %v", err)
	}
	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Errorf("close kvstore: %v", err)
		}
	})

	store := visitor.NewStore(kv)
	gate := session.NewGate(kv, session.StaticVerifier{Username: "admin", Password: "admin123"})

	srv, err := NewServer(kv, store, gate)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv
}

func patchNotes(notes string) visitor.Patch {
	return visitor.Patch{Notes: &notes}
}

func addTestVisitor(t *testing.T, store *visitor.Store, name string) *visitor.Visitor {
	t.Helper()
	return store.Add(visitor.Fields{
		Name:    name,
		Phone:   "+1-555-0000",
		Purpose: "business",
	})
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServerLoggedOut(t)

	r := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want status ok", w.Body.String())
	}
}

func TestGateRedirectsLoggedOut(t *testing.T) {
	srv := testServerLoggedOut(t)

	for _, path := range []string{"/", "/visitors/new", "/export/csv"} {
		r := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		srv.ServeHTTP(w, r)

		if w.Code != http.StatusSeeOther {
			t.Errorf("%s: status = %d, want redirect", path, w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/login" {
			t.Errorf("%s: location = %q, want /login", path, loc)
		}
	}
}

func TestGateRedirectsLoggedInAwayFromLogin(t *testing.T) {
	srv, _ := testServer(t)

	r := httptest.NewRequest("GET", "/login", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("location = %q, want /", loc)
	}
}

func TestDashboardEmpty(t *testing.T) {
	srv, _ := testServer(t)

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "No visitors found") {
		t.Error("expected no-data state")
	}
	if !strings.Contains(body, "Welcome, admin") {
		t.Error("expected welcome message with cached username")
	}
}

func TestDashboardListsVisitors(t *testing.T) {
	srv, store := testServer(t)
	addTestVisitor(t, store, "Ada Lovelace")

	r := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if !strings.Contains(w.Body.String(), "Ada Lovelace") {
		t.Error("expected visitor in dashboard")
	}
}

func TestDashboardSearchFilters(t *testing.T) {
	srv, store := testServer(t)
	addTestVisitor(t, store, "Ada Lovelace")
	addTestVisitor(t, store, "Grace Hopper")

	r := httptest.NewRequest("GET", "/?q=grace", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	body := w.Body.String()
	if !strings.Contains(body, "Grace Hopper") {
		t.Error("expected matching visitor")
	}
	if strings.Contains(body, "Ada Lovelace") {
		t.Error("expected non-matching visitor to be filtered out")
	}
}

func TestDashboardTableView(t *testing.T) {
	srv, store := testServer(t)
	addTestVisitor(t, store, "Ada Lovelace")

	r := httptest.NewRequest("GET", "/?view=table", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if !strings.Contains(w.Body.String(), "visitors-table") {
		t.Error("expected table layout")
	}
}

func TestSaveAddsVisitor(t *testing.T) {
	srv, store := testServer(t)

	form := url.Values{
		"visitorName":    {"New Person"},
		"visitorPhone":   {"+1-555-9999"},
		"visitorPurpose": {"delivery"},
	}
	r := httptest.NewRequest("POST", "/visitors/save", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect, body: %s", w.Code, w.Body.String())
	}

	list := store.List()
	if len(list) != 1 {
		t.Fatalf("store has %d records, want 1", len(list))
	}
	if list[0].Name != "New Person" {
		t.Errorf("name = %q", list[0].Name)
	}
	if list[0].Status != visitor.StatusCheckedIn {
		t.Errorf("status = %q, want default checked-in", list[0].Status)
	}

	var flashed bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "vd_flash" && c.MaxAge > 0 {
			flashed = true
		}
	}
	if !flashed {
		t.Error("expected a success flash cookie")
	}
}

func TestSaveMissingFieldsBlocksSubmission(t *testing.T) {
	srv, store := testServer(t)

	form := url.Values{
		"visitorPhone": {"+1-555-9999"},
	}
	r := httptest.NewRequest("POST", "/visitors/save", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "visitorName") || !strings.Contains(body, "visitorPurpose") {
		t.Error("expected missing fields to be reported")
	}
	// Entered values survive the re-render
	if !strings.Contains(body, "+1-555-9999") {
		t.Error("expected entered phone to be preserved")
	}
	if store.Len() != 0 {
		t.Error("expected no state mutated on validation failure")
	}
}

func TestSaveUpdatesVisitor(t *testing.T) {
	srv, store := testServer(t)
	added := addTestVisitor(t, store, "Before")

	form := url.Values{
		"id":             {added.ID},
		"visitorName":    {"After"},
		"visitorPhone":   {added.Phone},
		"visitorPurpose": {added.Purpose},
		"visitorStatus":  {"checked-out"},
	}
	r := httptest.NewRequest("POST", "/visitors/save", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", w.Code)
	}

	got, err := store.Get(added.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "After" {
		t.Errorf("name = %q, want updated", got.Name)
	}
	if got.Status != visitor.StatusCheckedOut {
		t.Errorf("status = %q, want checked-out", got.Status)
	}
}

func TestEditFormPrepopulates(t *testing.T) {
	srv, store := testServer(t)
	added := addTestVisitor(t, store, "Editable Person")

	r := httptest.NewRequest("GET", "/visitors/"+added.ID+"/edit", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Editable Person") {
		t.Error("expected form pre-populated from the record")
	}
	if !strings.Contains(body, "Update Visitor") {
		t.Error("expected edit-mode save label")
	}
}

func TestEditFormUnknownIDGoesHome(t *testing.T) {
	srv, _ := testServer(t)

	r := httptest.NewRequest("GET", "/visitors/visitor_nope/edit", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want silent redirect", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/" {
		t.Errorf("location = %q, want /", loc)
	}
}

func TestNewFormDefaultsCheckIn(t *testing.T) {
	srv, _ := testServer(t)

	r := httptest.NewRequest("GET", "/visitors/new", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Add New Visitor") {
		t.Error("expected add-mode title")
	}
	if !strings.Contains(body, `name="checkInTime" type="datetime-local" value="2`) {
		t.Error("expected check-in time defaulted to now")
	}
}

func TestDeleteConfirmAndExecute(t *testing.T) {
	srv, store := testServer(t)
	added := addTestVisitor(t, store, "Doomed Person")

	// Confirmation page names the target
	r := httptest.NewRequest("GET", "/visitors/"+added.ID+"/delete", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Doomed Person") {
		t.Error("expected confirmation to name the visitor")
	}

	// Confirming deletes
	r = httptest.NewRequest("POST", "/visitors/"+added.ID+"/delete", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, r)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("delete status = %d, want redirect", w.Code)
	}
	if store.Len() != 0 {
		t.Error("expected record deleted")
	}
}

func TestDeleteConfirmUnknownIDGoesHome(t *testing.T) {
	srv, store := testServer(t)
	addTestVisitor(t, store, "Survivor")

	r := httptest.NewRequest("GET", "/visitors/visitor_nope/delete", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want silent redirect", w.Code)
	}
	if store.Len() != 1 {
		t.Error("store mutated by missing-target confirmation")
	}
}
