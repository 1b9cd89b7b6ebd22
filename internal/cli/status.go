package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"visitordesk/internal/visitor"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show session and visitor stats",
		Long:  "Show whether an admin session is active and summarize the visitor collection.",
		Args:  cobra.NoArgs,
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	gate := newGate(kv)
	store := visitor.NewStore(kv)
	stats := visitor.Stats(store.List())

	if isJSON() {
		return printJSON(map[string]interface{}{
			"loggedIn": gate.IsLoggedIn(),
			"stats":    stats,
		})
	}

	if gate.IsLoggedIn() {
		fmt.Printf("Session:  logged in as %s", gate.AdminUsername())
		if expires, ok := gate.ExpiresAt(); ok {
			fmt.Printf(" (expires %s)", expires.Local().Format(time.RFC822))
		}
		fmt.Println()
	} else {
		fmt.Println("Session:  not logged in")
	}

	fmt.Printf("Visitors: %d total, %d checked in, %d checked out, %d today\n",
		stats.Total, stats.CheckedIn, stats.CheckedOut, stats.Today)

	return nil
}
