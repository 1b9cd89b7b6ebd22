// Package session implements the login gate and its 24-hour expiry rule.
package session

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"visitordesk/internal/kvstore"
)

// Expiry is how long a login stays fresh.
const Expiry = 24 * time.Hour

// DefaultUsername is the display name used when none is cached.
const DefaultUsername = "Admin"

var (
	// ErrMissingCredentials means the username or password was empty.
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrBadCredentials means the pair did not verify.
	ErrBadCredentials = errors.New("invalid username or password")
)

// Verifier checks a credential pair. Authentication is a collaborator of the
// gate, not something it owns.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticVerifier compares against one configured credential pair.
type StaticVerifier struct {
	Username string
	Password string
}

// Verify implements Verifier.
func (v StaticVerifier) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.Password)) == 1
	return userOK && passOK
}

// Gate tracks the logged-in state across the session keys.
type Gate struct {
	kv       *kvstore.Store
	verifier Verifier
	now      func() time.Time
}

// NewGate creates a gate over the given store and verifier.
func NewGate(kv *kvstore.Store, verifier Verifier) *Gate {
	return &Gate{kv: kv, verifier: verifier, now: time.Now}
}

// IsLoggedIn reports whether a fresh login exists. A login older than the
// expiry window is cleared as a side effect and reported as logged out.
func (g *Gate) IsLoggedIn() bool {
	_, hasFlag, err := g.kv.Get(kvstore.KeyIsLoggedIn)
	if err != nil {
		slog.Error("reading login flag", "error", err)
		return false
	}
	raw, hasTime, err := g.kv.Get(kvstore.KeyLoginTime)
	if err != nil {
		slog.Error("reading login time", "error", err)
		return false
	}
	if !hasFlag || !hasTime {
		return false
	}

	loginTime, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		slog.Warn("unparseable login time, clearing session", "value", raw)
		g.clear()
		return false
	}

	if g.now().Sub(loginTime) > Expiry {
		g.clear()
		return false
	}

	return true
}

// Login verifies the credential pair and records the session. A failed
// verification mutates nothing.
func (g *Gate) Login(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}
	if !g.verifier.Verify(username, password) {
		return ErrBadCredentials
	}

	if err := g.kv.Set(kvstore.KeyIsLoggedIn, "true"); err != nil {
		return err
	}
	if err := g.kv.Set(kvstore.KeyLoginTime, g.now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	if err := g.kv.Set(kvstore.KeyAdminUsername, username); err != nil {
		return err
	}
	return nil
}

// Logout clears all session state. Interactive confirmation is the
// caller's concern.
func (g *Gate) Logout() {
	g.clear()
}

// AdminUsername returns the cached display name, or the default.
func (g *Gate) AdminUsername() string {
	name, ok, err := g.kv.Get(kvstore.KeyAdminUsername)
	if err != nil || !ok || name == "" {
		return DefaultUsername
	}
	return name
}

// ExpiresAt returns when the current login lapses, if one exists.
func (g *Gate) ExpiresAt() (time.Time, bool) {
	raw, ok, err := g.kv.Get(kvstore.KeyLoginTime)
	if err != nil || !ok {
		return time.Time{}, false
	}
	loginTime, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return loginTime.Add(Expiry), true
}

func (g *Gate) clear() {
	for _, key := range []string{kvstore.KeyIsLoggedIn, kvstore.KeyLoginTime, kvstore.KeyAdminUsername} {
		if err := g.kv.Remove(key); err != nil {
			slog.Error("clearing session key", "key", key, "error", err)
		}
	}
}
