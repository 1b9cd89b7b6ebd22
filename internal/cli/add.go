package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"visitordesk/internal/visitor"
)

func newAddCmd() *cobra.Command {
	var form visitor.Form

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Check in a new visitor",
		Long:  "Add a visitor record. Name, phone and purpose are required; check-in time defaults to now and status to checked-in.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(form)
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "visitor name (required)")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone number (required)")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().StringVar(&form.Company, "company", "", "company name")
	cmd.Flags().StringVar(&form.Purpose, "purpose", "", "visit purpose (required)")
	cmd.Flags().StringVar(&form.Host, "host", "", "person being visited")
	cmd.Flags().StringVar(&form.Status, "status", "", "status (checked-in|checked-out, default checked-in)")
	cmd.Flags().StringVar(&form.CheckInTime, "checkin", "", "check-in time (2006-01-02T15:04, default now)")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "free-form notes")

	return cmd
}

func runAdd(form visitor.Form) error {
	if missing := form.Validate(); len(missing) > 0 {
		return fmt.Errorf("missing or invalid fields: %s", strings.Join(missing, ", "))
	}

	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	store := visitor.NewStore(kv)
	v := store.Add(form.Fields())

	if isJSON() {
		return printJSON(v)
	}

	successf("Visitor added successfully!")
	printVisitorSummary(v)
	return nil
}
