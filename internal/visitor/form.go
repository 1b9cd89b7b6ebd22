package visitor

import (
	"strings"
	"time"

	"github.com/gookit/validate"
)

// Form carries raw user input for an add or edit submission. Values are
// validated and defaulted here, at the boundary; the store trusts its input.
type Form struct {
	Name        string `validate:"required"`
	Phone       string `validate:"required"`
	Email       string
	Company     string
	Purpose     string `validate:"required"`
	Host        string
	Status      string `validate:"in:checked-in,checked-out"`
	CheckInTime string
	Notes       string
}

// Labels for reporting missing fields, keyed by struct field name.
var fieldLabels = map[string]string{
	"Name":    "visitorName",
	"Phone":   "visitorPhone",
	"Purpose": "visitorPurpose",
	"Status":  "visitorStatus",
}

// requiredOrder fixes the order missing fields are reported in.
var requiredOrder = []string{"Name", "Phone", "Purpose", "Status"}

// Validate trims every value and returns the labels of fields that fail
// validation, in a stable order. An empty result means the form is valid.
func (f *Form) Validate() []string {
	f.trim()

	v := validate.Struct(f)
	v.StopOnError = false
	if v.Validate() {
		return nil
	}

	var missing []string
	for _, name := range requiredOrder {
		if _, bad := v.Errors[name]; bad {
			missing = append(missing, fieldLabels[name])
		}
	}
	return missing
}

// Fields converts a validated form into store input, applying the submit
// defaults: check-in time falls back to now, status to checked-in.
func (f *Form) Fields() Fields {
	checkIn := f.CheckInTime
	if checkIn == "" {
		checkIn = FormatCheckInTime(time.Now())
	}

	status := Status(f.Status)
	if status == "" {
		status = StatusCheckedIn
	}

	return Fields{
		Name:        f.Name,
		Phone:       f.Phone,
		Email:       f.Email,
		Company:     f.Company,
		Purpose:     f.Purpose,
		Host:        f.Host,
		Status:      status,
		CheckInTime: checkIn,
		Notes:       f.Notes,
	}
}

// Patch converts a validated form into a full-record patch for edits.
func (f *Form) Patch() Patch {
	fields := f.Fields()
	return Patch{
		Name:        &fields.Name,
		Phone:       &fields.Phone,
		Email:       &fields.Email,
		Company:     &fields.Company,
		Purpose:     &fields.Purpose,
		Host:        &fields.Host,
		Status:      &fields.Status,
		CheckInTime: &fields.CheckInTime,
		Notes:       &fields.Notes,
	}
}

// FormFromVisitor pre-populates a form from an existing record.
func FormFromVisitor(v *Visitor) Form {
	return Form{
		Name:        v.Name,
		Phone:       v.Phone,
		Email:       v.Email,
		Company:     v.Company,
		Purpose:     v.Purpose,
		Host:        v.Host,
		Status:      string(v.Status),
		CheckInTime: v.CheckInTime,
		Notes:       v.Notes,
	}
}

func (f *Form) trim() {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.Company = strings.TrimSpace(f.Company)
	f.Purpose = strings.TrimSpace(f.Purpose)
	f.Host = strings.TrimSpace(f.Host)
	f.Status = strings.TrimSpace(f.Status)
	f.CheckInTime = strings.TrimSpace(f.CheckInTime)
	f.Notes = strings.TrimSpace(f.Notes)
}
