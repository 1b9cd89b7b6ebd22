// Package notify provides transient user notifications.
//
// A notification is fire-and-forget: it carries a message and a severity
// that selects styling only. In the web UI it rides a flash cookie across
// exactly one redirect and auto-dismisses after a fixed delay.
package notify

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

// Severity selects presentation styling. There is no retry or escalation.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Info    Severity = "info"
)

// AutoDismiss is how long a notification stays on screen.
const AutoDismiss = 5 * time.Second

const cookieName = "vd_flash"

// Notification is one transient message.
type Notification struct {
	Message  string
	Severity Severity
}

// SetFlash queues n for display on the next page load.
func SetFlash(w http.ResponseWriter, n Notification) {
	value := string(n.Severity) + "." + base64.RawURLEncoding.EncodeToString([]byte(n.Message))
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the queued notification, if any, and clears it.
func PopFlash(w http.ResponseWriter, r *http.Request) (Notification, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil {
		return Notification{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	severity, encoded, found := strings.Cut(cookie.Value, ".")
	if !found {
		return Notification{}, false
	}
	msg, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return Notification{}, false
	}

	n := Notification{Message: string(msg), Severity: Severity(severity)}
	switch n.Severity {
	case Success, Error, Info:
	default:
		n.Severity = Info
	}
	return n, true
}
