package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the admin session",
		Long:  "Clear the stored session after confirmation. Pass --yes to skip the prompt.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(yes)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "log out without confirmation")

	return cmd
}

func runLogout(yes bool) error {
	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	gate := newGate(kv)
	if !gate.IsLoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}

	if !yes && !confirm("Are you sure you want to logout?") {
		fmt.Println("Cancelled.")
		return nil
	}

	gate.Logout()
	successf("Logged out.")
	return nil
}
