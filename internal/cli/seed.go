package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"visitordesk/internal/visitor"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add sample visitors to a fresh database",
		Long:  "Add a handful of sample visitor records. Does nothing if the database has ever held data.",
		Args:  cobra.NoArgs,
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	store := visitor.NewStore(kv)
	seeded, err := visitor.SeedSampleData(kv, store)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"seeded": seeded,
			"count":  store.Len(),
		})
	}

	if !seeded {
		fmt.Println("Database already has data; nothing to seed.")
		return nil
	}

	successf("Added %d sample visitors.", store.Len())
	return nil
}
