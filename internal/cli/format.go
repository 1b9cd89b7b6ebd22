package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"visitordesk/internal/visitor"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// successf prints a green success notice.
func successf(format string, args ...interface{}) {
	if _, err := successColor.Printf(format+"\n", args...); err != nil {
		fmt.Printf(format+"\n", args...)
	}
}

// errorf prints a red failure notice to stderr.
func errorf(format string, args ...interface{}) {
	if _, err := errorColor.Fprintf(os.Stderr, format+"\n", args...); err != nil {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// printVisitorSummary prints a single visitor record in text format.
func printVisitorSummary(v *visitor.Visitor) {
	fmt.Printf("%s\n", v.Name)
	fmt.Printf("  ID:       %s\n", v.ID)
	fmt.Printf("  Phone:    %s\n", v.Phone)
	if v.Email != "" {
		fmt.Printf("  Email:    %s\n", v.Email)
	}
	if v.Company != "" {
		fmt.Printf("  Company:  %s\n", v.Company)
	}
	fmt.Printf("  Purpose:  %s\n", v.Purpose)
	if v.Host != "" {
		fmt.Printf("  Host:     %s\n", v.Host)
	}
	fmt.Printf("  Status:   %s\n", v.Status.Label())
	if v.CheckInTime != "" {
		fmt.Printf("  Check-in: %s\n", v.CheckInTime)
	}
	if v.Notes != "" {
		fmt.Printf("  Notes:    %s\n", v.Notes)
	}
}

// printVisitorTable prints records as a formatted table.
func printVisitorTable(records []*visitor.Visitor) error {
	if len(records) == 0 {
		fmt.Println("No visitors found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tPHONE\tCOMPANY\tPURPOSE\tSTATUS\tCHECK-IN"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t-----\t-------\t-------\t------\t--------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, v := range records {
		company := v.Company
		if company == "" {
			company = "-"
		}
		checkIn := v.CheckInTime
		if checkIn == "" {
			checkIn = "-"
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(v.ID), truncate(v.Name, 30), v.Phone,
			truncate(company, 24), v.Purpose, v.Status.Label(), checkIn); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d visitors\n", len(records))
	return nil
}

// printVisitorCards prints records one summary block per visitor.
func printVisitorCards(records []*visitor.Visitor) {
	if len(records) == 0 {
		fmt.Println("No visitors found.")
		return
	}

	for _, v := range records {
		printVisitorSummary(v)
		fmt.Println()
	}
	fmt.Printf("Total: %d visitors\n", len(records))
}

// shortID returns the leading hex segment of a record id, enough to resolve
// it back with a prefix match.
func shortID(id string) string {
	const visible = len("visitor_") + 8
	if len(id) <= visible {
		return id
	}
	return id[:visible]
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
