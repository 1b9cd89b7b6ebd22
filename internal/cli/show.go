package cli

import (
	"github.com/spf13/cobra"

	"visitordesk/internal/visitor"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one visitor record",
		Long:  "Show a visitor record by id. A unique id prefix works too.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	store := visitor.NewStore(kv)
	id, err := resolveID(store, args[0])
	if err != nil {
		return err
	}

	v, err := store.Get(id)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	printVisitorSummary(v)
	return nil
}
