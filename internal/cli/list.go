package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"visitordesk/internal/visitor"
)

func newListCmd() *cobra.Command {
	var (
		search string
		status string
		view   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List visitors",
		Long:  "List visitor records, most recent first, optionally filtered by a search term and status.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(search, status, view)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match against name, phone, purpose, company or email")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (checked-in|checked-out)")
	cmd.Flags().StringVar(&view, "view", "table", "text layout (card|table)")

	return cmd
}

func runList(search, status, view string) error {
	if status != "" && !visitor.ValidStatus(status) {
		return fmt.Errorf("invalid status: %s (want checked-in or checked-out)", status)
	}

	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	store := visitor.NewStore(kv)
	records := visitor.Filter(store.List(), visitor.Query{
		Search: search,
		Status: visitor.Status(status),
	})

	if isJSON() {
		return printJSON(records)
	}

	if view == "card" {
		printVisitorCards(records)
		return nil
	}
	return printVisitorTable(records)
}
