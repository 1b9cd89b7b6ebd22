package visitor

import "time"

// Summary holds the dashboard counters and breakdowns.
type Summary struct {
	Total      int            `json:"total"`
	CheckedIn  int            `json:"checkedIn"`
	CheckedOut int            `json:"checkedOut"`
	Today      int            `json:"today"`
	Purposes   map[string]int `json:"purposes"`
	Companies  map[string]int `json:"companies"`
}

// Stats computes the summary for a collection snapshot.
// "Today" counts records whose effective time falls on the current local day.
func Stats(records []*Visitor) Summary {
	return statsAt(records, time.Now())
}

// statsAt is Stats with an injectable clock for tests.
func statsAt(records []*Visitor, now time.Time) Summary {
	s := Summary{
		Purposes:  make(map[string]int),
		Companies: make(map[string]int),
	}

	y, m, d := now.In(time.Local).Date()

	for _, v := range records {
		s.Total++

		switch v.Status {
		case StatusCheckedIn:
			s.CheckedIn++
		case StatusCheckedOut:
			s.CheckedOut++
		}

		vy, vm, vd := v.EffectiveTime().In(time.Local).Date()
		if vy == y && vm == m && vd == d {
			s.Today++
		}

		purpose := v.Purpose
		if purpose == "" {
			purpose = "other"
		}
		s.Purposes[purpose]++

		company := v.Company
		if company == "" {
			company = "Individual"
		}
		s.Companies[company]++
	}

	return s
}
