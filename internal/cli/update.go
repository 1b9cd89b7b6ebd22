package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"visitordesk/internal/visitor"
)

func newUpdateCmd() *cobra.Command {
	var (
		name        string
		phone       string
		email       string
		company     string
		purpose     string
		host        string
		status      string
		checkInTime string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a visitor record",
		Long:  "Update fields of a visitor record. Only flags you pass are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := visitor.Patch{}
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("phone") {
				patch.Phone = &phone
			}
			if cmd.Flags().Changed("email") {
				patch.Email = &email
			}
			if cmd.Flags().Changed("company") {
				patch.Company = &company
			}
			if cmd.Flags().Changed("purpose") {
				patch.Purpose = &purpose
			}
			if cmd.Flags().Changed("host") {
				patch.Host = &host
			}
			if cmd.Flags().Changed("status") {
				if !visitor.ValidStatus(status) {
					return fmt.Errorf("invalid status: %s (want checked-in or checked-out)", status)
				}
				s := visitor.Status(status)
				patch.Status = &s
			}
			if cmd.Flags().Changed("checkin") {
				patch.CheckInTime = &checkInTime
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}
			return runUpdate(args[0], patch)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "visitor name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&purpose, "purpose", "", "visit purpose")
	cmd.Flags().StringVar(&host, "host", "", "person being visited")
	cmd.Flags().StringVar(&status, "status", "", "status (checked-in|checked-out)")
	cmd.Flags().StringVar(&checkInTime, "checkin", "", "check-in time (2006-01-02T15:04)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func runUpdate(arg string, patch visitor.Patch) error {
	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	store := visitor.NewStore(kv)
	id, err := resolveID(store, arg)
	if err != nil {
		return err
	}

	v, err := store.Update(id, patch)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(v)
	}

	successf("Visitor updated successfully!")
	printVisitorSummary(v)
	return nil
}
