// Package visitor provides the visitor domain model, record store and
// derived views.
package visitor

import "time"

// Status represents where a visitor is in the check-in workflow.
type Status string

const (
	StatusCheckedIn  Status = "checked-in"
	StatusCheckedOut Status = "checked-out"
)

// checkInLayout is the minute-precision local layout used for check-in times,
// matching the value of an HTML datetime-local input.
const checkInLayout = "2006-01-02T15:04"

// ValidStatus returns true if s is a known visitor status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusCheckedIn, StatusCheckedOut:
		return true
	}
	return false
}

// Label returns a human-readable label for the status.
func (s Status) Label() string {
	switch s {
	case StatusCheckedIn:
		return "Checked In"
	case StatusCheckedOut:
		return "Checked Out"
	default:
		return string(s)
	}
}

// Visitor represents one visitor record. JSON field names match the
// persisted array layout, so an exported collection round-trips unchanged.
type Visitor struct {
	ID          string    `json:"id"`
	Name        string    `json:"visitorName"`
	Phone       string    `json:"visitorPhone"`
	Email       string    `json:"visitorEmail,omitempty"`
	Company     string    `json:"visitorCompany,omitempty"`
	Purpose     string    `json:"visitorPurpose"`
	Host        string    `json:"visitorHost,omitempty"`
	Status      Status    `json:"visitorStatus"`
	CheckInTime string    `json:"checkInTime"` // local, minute precision
	Notes       string    `json:"visitorNotes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EffectiveTime returns the check-in time if present and parseable,
// otherwise the creation time. It orders every listing.
func (v *Visitor) EffectiveTime() time.Time {
	if v.CheckInTime != "" {
		if t, err := time.ParseInLocation(checkInLayout, v.CheckInTime, time.Local); err == nil {
			return t
		}
	}
	return v.CreatedAt
}

// FormatCheckInTime renders t in the minute-precision local layout.
func FormatCheckInTime(t time.Time) string {
	return t.In(time.Local).Format(checkInLayout)
}
