package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"visitordesk/internal/kvstore"
)

func testGate(t *testing.T) (*Gate, *kvstore.Store) {
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
	return NewGate(kv, StaticVerifier{Username: "admin", Password: "admin123"}), kv
}

func TestLoginSuccess(t *testing.T) {
	g, kv := testGate(t)

	if err := g.Login("admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !g.IsLoggedIn() {
		t.Error("expected logged in after login")
	}
	if got := g.AdminUsername(); got != "admin" {
		t.Errorf("admin username = %q, want %q", got, "admin")
	}

	if _, ok, _ := kv.Get(kvstore.KeyLoginTime); !ok {
		t.Error("expected login time to be recorded")
	}
}

func TestLoginBadCredentials(t *testing.T) {
	g, kv := testGate(t)

	err := g.Login("admin", "wrong")
	if !errors.Is(err, ErrBadCredentials) {
		t.Fatalf("err = %v, want ErrBadCredentials", err)
	}
	if g.IsLoggedIn() {
		t.Error("expected logged out after failed login")
	}
	// No persisted state was touched
	if _, ok, _ := kv.Get(kvstore.KeyIsLoggedIn); ok {
		t.Error("failed login must not set the login flag")
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	g, _ := testGate(t)

	if err := g.Login("", "admin123"); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("err = %v, want ErrMissingCredentials", err)
	}
	if err := g.Login("admin", ""); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("err = %v, want ErrMissingCredentials", err)
	}
}

func TestIsLoggedInAbsentKeys(t *testing.T) {
	g, _ := testGate(t)

	if g.IsLoggedIn() {
		t.Error("expected logged out with no session keys")
	}
}

func TestSessionExpiryBoundary(t *testing.T) {
	cases := []struct {
		name    string
		age     time.Duration
		loggedIn bool
	}{
		{"23 hours old still valid", 23 * time.Hour, true},
		{"25 hours old expired", 25 * time.Hour, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, kv := testGate(t)
			if err := g.Login("admin", "admin123"); err != nil {
				t.Fatalf("login: %v", err)
			}

			// Shift the clock forward instead of rewriting the stored stamp.
			g.now = func() time.Time { return time.Now().Add(c.age) }

			if got := g.IsLoggedIn(); got != c.loggedIn {
				t.Errorf("IsLoggedIn() = %v, want %v", got, c.loggedIn)
			}

			if !c.loggedIn {
				// Expiry clears every session key
				for _, key := range []string{kvstore.KeyIsLoggedIn, kvstore.KeyLoginTime, kvstore.KeyAdminUsername} {
					if _, ok, _ := kv.Get(key); ok {
						t.Errorf("key %q still present after expiry", key)
					}
				}
			}
		})
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	g, kv := testGate(t)
	if err := g.Login("admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	g.Logout()

	if g.IsLoggedIn() {
		t.Error("expected logged out after logout")
	}
	for _, key := range []string{kvstore.KeyIsLoggedIn, kvstore.KeyLoginTime, kvstore.KeyAdminUsername} {
		if _, ok, _ := kv.Get(key); ok {
			t.Errorf("key %q still present after logout", key)
		}
	}
	if got := g.AdminUsername(); got != DefaultUsername {
		t.Errorf("admin username = %q, want default %q", got, DefaultUsername)
	}
}

func TestExpiresAt(t *testing.T) {
	g, _ := testGate(t)

	if _, ok := g.ExpiresAt(); ok {
		t.Error("expected no expiry with no session")
	}

	before := time.Now()
	if err := g.Login("admin", "admin123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	at, ok := g.ExpiresAt()
	if !ok {
		t.Fatal("expected an expiry after login")
	}
	if at.Before(before.Add(Expiry - time.Minute)) {
		t.Errorf("expiry %v too early", at)
	}
}
