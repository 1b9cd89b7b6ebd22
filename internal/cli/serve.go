package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"visitordesk/internal/logging"
	"visitordesk/internal/visitor"
	"visitordesk/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port  int
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		Long:  "Start the HTTP server for the visitor dashboard. Seeds sample data on a fresh database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, debug)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (default: from config or 8080)")
	cmd.Flags().BoolVar(&debug, "debug", false, "verbose text logs instead of JSON")

	return cmd
}

func runServe(port int, debug bool) error {
	logging.Setup(debug)

	if port == 0 {
		port = getPort()
	}

	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	store := visitor.NewStore(kv)

	seeded, err := visitor.SeedSampleData(kv, store)
	if err != nil {
		errorf("warning: seeding sample data: %v", err)
	}
	if seeded {
		fmt.Printf("Fresh database, added %d sample visitors.\n", store.Len())
	}

	server, err := web.NewServer(kv, store, newGate(kv))
	if err != nil {
		return err
	}

	return server.ListenAndServe(port)
}
