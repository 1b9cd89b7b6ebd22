package visitor

import (
	"fmt"
	"time"

	"visitordesk/internal/kvstore"
)

// SeedSampleData adds a handful of example visitors on a fresh installation.
// It runs at most once: only when no collection has ever been persisted and
// the first-run sentinel is unset. Returns true if samples were added.
//
// Seeding is an initialization step outside the store; the store itself
// never decides to create data.
func SeedSampleData(kv *kvstore.Store, store *Store) (bool, error) {
	_, hasData, err := kv.Get(kvstore.KeyVisitors)
	if err != nil {
		return false, fmt.Errorf("checking for existing data: %w", err)
	}
	_, seeded, err := kv.Get(kvstore.KeyFirstRun)
	if err != nil {
		return false, fmt.Errorf("checking first-run sentinel: %w", err)
	}
	if hasData || seeded {
		return false, nil
	}

	now := time.Now()
	samples := []Fields{
		{
			Name:        "John Smith",
			Phone:       "+1-555-0123",
			Email:       "john.smith@email.com",
			Company:     "Tech Solutions Inc.",
			Purpose:     "business",
			Host:        "Sarah Johnson",
			Status:      StatusCheckedIn,
			CheckInTime: FormatCheckInTime(now.Add(-2 * time.Hour)),
			Notes:       "VIP client meeting",
		},
		{
			Name:        "Emily Davis",
			Phone:       "+1-555-0456",
			Email:       "emily.davis@email.com",
			Company:     "Marketing Pro",
			Purpose:     "interview",
			Host:        "Mike Wilson",
			Status:      StatusCheckedOut,
			CheckInTime: FormatCheckInTime(now.Add(-5 * time.Hour)),
			Notes:       "Interview for Marketing Manager position",
		},
		{
			Name:        "Robert Chen",
			Phone:       "+1-555-0789",
			Email:       "robert.chen@email.com",
			Company:     "Global Logistics",
			Purpose:     "delivery",
			Host:        "Reception",
			Status:      StatusCheckedIn,
			CheckInTime: FormatCheckInTime(now.Add(-30 * time.Minute)),
			Notes:       "Package delivery for IT department",
		},
		{
			Name:        "Maria Rodriguez",
			Phone:       "+1-555-0321",
			Email:       "maria.rodriguez@email.com",
			Company:     "Consulting Group",
			Purpose:     "business",
			Host:        "David Brown",
			Status:      StatusCheckedOut,
			CheckInTime: FormatCheckInTime(now.Add(-24 * time.Hour)),
			Notes:       "Quarterly business review meeting",
		},
		{
			Name:        "James Wilson",
			Phone:       "+1-555-0654",
			Email:       "james.wilson@email.com",
			Company:     "Maintenance Services",
			Purpose:     "maintenance",
			Host:        "Facilities Team",
			Status:      StatusCheckedIn,
			CheckInTime: FormatCheckInTime(now.Add(-1 * time.Hour)),
			Notes:       "HVAC system maintenance",
		},
	}

	for _, f := range samples {
		store.Add(f)
	}

	if err := kv.Set(kvstore.KeyFirstRun, "false"); err != nil {
		return true, fmt.Errorf("setting first-run sentinel: %w", err)
	}
	return true, nil
}
