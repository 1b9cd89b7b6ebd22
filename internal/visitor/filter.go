package visitor

import (
	"sort"
	"strings"
)

// Query selects and orders a projection of the collection.
// An empty search term matches everything; an empty status passes all records.
type Query struct {
	Search string
	Status Status
}

// Filter returns the records matching q, sorted most-recent-first by
// effective time. It is a pure function of its inputs; the sort is stable so
// ties keep their order across repeated calls on unchanged input.
func Filter(records []*Visitor, q Query) []*Visitor {
	term := strings.ToLower(strings.TrimSpace(q.Search))

	var out []*Visitor
	for _, v := range records {
		if term != "" && !matches(v, term) {
			continue
		}
		if q.Status != "" && v.Status != q.Status {
			continue
		}
		out = append(out, v)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveTime().After(out[j].EffectiveTime())
	})

	return out
}

// matches reports whether any searchable field contains the lowercased term.
func matches(v *Visitor, term string) bool {
	for _, field := range []string{v.Name, v.Phone, v.Purpose, v.Company, v.Email} {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
