package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"visitordesk/internal/session"
)

func newLoginCmd() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the visitor desk",
		Long:  "Start an admin session. The session lives in the database and expires after 24 hours.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(username, password)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username (prompted if omitted)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password (prompted if omitted)")

	return cmd
}

func runLogin(username, password string) error {
	reader := bufio.NewReader(os.Stdin)

	if username == "" {
		fmt.Print("Username: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		password = strings.TrimSpace(line)
	}

	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	gate := newGate(kv)
	if err := gate.Login(username, password); err != nil {
		if errors.Is(err, session.ErrBadCredentials) {
			return fmt.Errorf("%w, please try again", err)
		}
		return err
	}

	successf("Logged in as %s. Session valid for 24 hours.", username)
	return nil
}
