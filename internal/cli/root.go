// Package cli defines the cobra command tree for visitordesk.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"visitordesk/internal/kvstore"
	"visitordesk/internal/session"
	"visitordesk/internal/visitor"
)

var (
	flagFormat string
	flagDB     string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vd",
		Short:         "Track visitors at the front desk",
		Long:          "A visitor management tool. Check visitors in and out, search and filter records, export them, and browse everything via CLI or web dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default: ~/.config/vd/visitordesk.db)")

	root.AddCommand(
		newAddCmd(),
		newListCmd(),
		newShowCmd(),
		newUpdateCmd(),
		newCheckoutCmd(),
		newRemoveCmd(),
		newExportCmd(),
		newSeedCmd(),
		newServeCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

// openKV opens the key-value store using the --db flag, config, or default path.
func openKV() (*kvstore.Store, error) {
	path, err := dataPath()
	if err != nil {
		return nil, err
	}
	return kvstore.Open(path)
}

// newGate creates a session gate over the store with the configured
// credential pair.
func newGate(kv *kvstore.Store) *session.Gate {
	username, password := getCredentials()
	return session.NewGate(kv, session.StaticVerifier{
		Username: username,
		Password: password,
	})
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}

// closeKV closes the store, logging any error to stderr.
func closeKV(kv *kvstore.Store) {
	if err := kv.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing database: %v\n", err)
	}
}

// resolveID finds the record whose id matches arg exactly, or whose id has
// arg as a unique prefix. Typing a full visitor_<uuid> id is tedious.
func resolveID(store *visitor.Store, arg string) (string, error) {
	if _, err := store.Get(arg); err == nil {
		return arg, nil
	}

	var match string
	for _, v := range store.List() {
		if len(arg) >= 4 && len(v.ID) >= len(arg) && v.ID[:len(arg)] == arg {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", arg)
			}
			match = v.ID
		}
	}
	if match == "" {
		return "", visitor.ErrNotFound
	}
	return match, nil
}
