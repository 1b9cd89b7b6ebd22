// Package render turns a filtered visitor projection into HTML.
//
// It never touches the store: callers hand it a snapshot and a display mode,
// and switching modes re-renders the same projection. All user-supplied text
// passes through html/template's contextual escaping.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"visitordesk/internal/visitor"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mode selects the display layout.
type Mode string

const (
	ModeCard  Mode = "card"
	ModeTable Mode = "table"
)

// ParseMode normalizes a user-supplied mode string; anything unknown is card.
func ParseMode(s string) Mode {
	if Mode(s) == ModeTable {
		return ModeTable
	}
	return ModeCard
}

// Renderer renders visitor projections in card or table layout.
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		"checkInDisplay": tmplCheckInDisplay,
		"statusLabel":    tmplStatusLabel,
		"orDash":         tmplOrDash,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

// Visitors renders every record in the given mode, each with its edit and
// delete affordances. An empty projection renders the no-data state.
func (r *Renderer) Visitors(records []*visitor.Visitor, mode Mode) (template.HTML, error) {
	name := "visitors-card"
	if mode == ModeTable {
		name = "visitors-table"
	}
	if len(records) == 0 {
		name = "no-data"
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, records); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Template helper functions

func tmplCheckInDisplay(v *visitor.Visitor) string {
	if v.CheckInTime == "" {
		return "Not set"
	}
	return v.EffectiveTime().Format("Jan 2, 2006 3:04 PM")
}

func tmplStatusLabel(s visitor.Status) string {
	return s.Label()
}

func tmplOrDash(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
