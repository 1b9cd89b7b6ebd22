package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"visitordesk/internal/visitor"
)

func newCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout <id>",
		Short: "Check a visitor out",
		Long:  "Mark a visitor as checked out. Shortcut for update --status checked-out.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheckout,
	}
}

func runCheckout(cmd *cobra.Command, args []string) error {
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

	current, err := store.Get(id)
	if err != nil {
		return err
	}
	if current.Status == visitor.StatusCheckedOut {
		fmt.Printf("%s is already checked out.\n", current.Name)
		return nil
	}

	status := visitor.StatusCheckedOut
	v, err := store.Update(id, visitor.Patch{Status: &status})
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	successf("%s checked out.", v.Name)
	return nil
}
