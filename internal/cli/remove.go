package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"visitordesk/internal/visitor"
)

func newRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a visitor record",
		Long:  "Remove a visitor record after confirmation. Pass --yes to skip the prompt.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0], yes)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "remove without confirmation")

	return cmd
}

func runRemove(arg string, yes bool) error {
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

	v, err := store.Get(id)
	if err != nil {
		return err
	}

	if !yes && !isJSON() {
		if !confirm(fmt.Sprintf("Remove visitor %q?", v.Name)) {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if _, err := store.Delete(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{
			"id":      id,
			"removed": true,
		})
	}

	successf("Visitor %q removed.", v.Name)
	return nil
}

// confirm asks a y/N question on stdin. Anything but y or yes is a no.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
