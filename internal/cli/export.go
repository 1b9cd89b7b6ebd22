package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"visitordesk/internal/visitor"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <csv|json>",
		Short: "Export all visitor records",
		Long:  "Export all visitor records as CSV or JSON. Writes a dated file in the current directory unless -o names a path, or '-' for stdout.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path ('-' for stdout)")

	return cmd
}

func runExport(format, output string) error {
	if format != "csv" && format != "json" {
		return fmt.Errorf("unknown export format: %s (want csv or json)", format)
	}

	kv, err := openKV()
	if err != nil {
		return err
	}
	defer closeKV(kv)

	store := visitor.NewStore(kv)
	records := store.List()

	var w io.Writer
	path := output
	switch output {
	case "-":
		w = os.Stdout
	case "":
		path = visitor.ExportFilename(format)
		fallthrough
	default:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				fmt.Fprintf(os.Stderr, "warning: closing export file: %v\n", cerr)
			}
		}()
		w = f
	}

	if format == "csv" {
		err = visitor.WriteCSV(w, records)
	} else {
		err = visitor.WriteJSON(w, records)
	}
	if err != nil {
		return err
	}

	if output != "-" {
		successf("Exported %d visitors to %s", len(records), path)
	}
	return nil
}
