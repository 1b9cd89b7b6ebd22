package visitor

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// csvHeader is the fixed export column layout.
var csvHeader = []string{
	"Name", "Phone", "Email", "Company", "Purpose",
	"Host", "Status", "Check-in Time", "Notes",
}

// WriteCSV writes the records as CSV with the fixed nine-column header.
// Quoting follows RFC 4180: fields containing commas, quotes or newlines
// are wrapped in quotes with internal quotes doubled.
func WriteCSV(w io.Writer, records []*Visitor) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, v := range records {
		row := []string{
			v.Name, v.Phone, v.Email, v.Company, v.Purpose,
			v.Host, string(v.Status), v.CheckInTime, v.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// WriteJSON writes the full record array pretty-printed.
func WriteJSON(w io.Writer, records []*Visitor) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding visitors: %w", err)
	}
	return nil
}

// ExportFilename returns the download name for the given extension,
// stamped with the current date: visitors_export_2006-01-02.csv
func ExportFilename(ext string) string {
	return fmt.Sprintf("visitors_export_%s.%s", time.Now().Format("2006-01-02"), ext)
}
