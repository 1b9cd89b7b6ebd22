package visitor

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"visitordesk/internal/kvstore"
)

// ErrNotFound is returned when an operation targets a record that does not
// exist. Callers treat it as a normal result, not a failure.
var ErrNotFound = errors.New("visitor not found")

// Fields holds the caller-supplied attributes of a new record. The store
// assigns identity and timestamps; it does not validate field contents.
type Fields struct {
	Name        string
	Phone       string
	Email       string
	Company     string
	Purpose     string
	Host        string
	Status      Status
	CheckInTime string
	Notes       string
}

// Patch holds a partial update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	Phone       *string
	Email       *string
	Company     *string
	Purpose     *string
	Host        *string
	Status      *Status
	CheckInTime *string
	Notes       *string
}

// Store owns the in-memory visitor collection and its persistence to the
// key-value store. It is safe for use from concurrent HTTP handlers.
type Store struct {
	mu       sync.Mutex
	kv       *kvstore.Store
	visitors []*Visitor
}

// NewStore creates a store and restores the persisted collection.
// Corrupt or absent data restores as an empty collection.
func NewStore(kv *kvstore.Store) *Store {
	s := &Store{kv: kv}
	s.visitors = s.restore()
	return s
}

// Add appends a new record with a fresh id and creation timestamps,
// persists the collection and returns the record.
func (s *Store) Add(f Fields) *Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	v := &Visitor{
		ID:          "visitor_" + uuid.NewString(),
		Name:        f.Name,
		Phone:       f.Phone,
		Email:       f.Email,
		Company:     f.Company,
		Purpose:     f.Purpose,
		Host:        f.Host,
		Status:      f.Status,
		CheckInTime: f.CheckInTime,
		Notes:       f.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if v.Status == "" {
		v.Status = StatusCheckedIn
	}

	s.visitors = append(s.visitors, v)
	s.persist()

	cp := *v
	return &cp
}

// Update shallow-merges the patch over an existing record, refreshes the
// update timestamp and persists. The id and creation timestamp never change.
func (s *Store) Update(id string, p Patch) (*Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.find(id)
	if v == nil {
		return nil, ErrNotFound
	}

	if p.Name != nil {
		v.Name = *p.Name
	}
	if p.Phone != nil {
		v.Phone = *p.Phone
	}
	if p.Email != nil {
		v.Email = *p.Email
	}
	if p.Company != nil {
		v.Company = *p.Company
	}
	if p.Purpose != nil {
		v.Purpose = *p.Purpose
	}
	if p.Host != nil {
		v.Host = *p.Host
	}
	if p.Status != nil {
		v.Status = *p.Status
	}
	if p.CheckInTime != nil {
		v.CheckInTime = *p.CheckInTime
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
	v.UpdatedAt = time.Now().UTC()

	s.persist()

	cp := *v
	return &cp, nil
}

// Delete removes and returns the record, or ErrNotFound.
func (s *Store) Delete(id string) (*Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, v := range s.visitors {
		if v.ID == id {
			s.visitors = append(s.visitors[:i], s.visitors[i+1:]...)
			s.persist()
			return v, nil
		}
	}
	return nil, ErrNotFound
}

// Get returns a copy of the record with the given id, or ErrNotFound.
func (s *Store) Get(id string) (*Visitor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.find(id)
	if v == nil {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

// List returns a snapshot of all records. Mutating the returned slice or
// its records never affects the store.
func (s *Store) List() []*Visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Visitor, len(s.visitors))
	for i, v := range s.visitors {
		cp := *v
		out[i] = &cp
	}
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// find returns the live record for id. Callers must hold the lock.
func (s *Store) find(id string) *Visitor {
	for _, v := range s.visitors {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// persist serializes the whole collection under the visitors key.
// Failures are logged and dropped; the in-memory collection stays
// authoritative for this process. Callers must hold the lock.
func (s *Store) persist() {
	data, err := json.Marshal(s.visitors)
	if err != nil {
		slog.Error("serializing visitors", "error", err)
		return
	}
	if err := s.kv.Set(kvstore.KeyVisitors, string(data)); err != nil {
		slog.Error("saving visitors", "error", err)
	}
}

// restore loads the persisted collection. Absent or corrupt data yields an
// empty collection; corruption is logged, never propagated.
func (s *Store) restore() []*Visitor {
	raw, ok, err := s.kv.Get(kvstore.KeyVisitors)
	if err != nil {
		slog.Error("loading visitors", "error", err)
		return nil
	}
	if !ok {
		return nil
	}

	var visitors []*Visitor
	if err := json.Unmarshal([]byte(raw), &visitors); err != nil {
		slog.Error("parsing stored visitors, starting empty", "error", err)
		return nil
	}

	// Stored status values outside the two-value enum normalize to checked-in.
	for _, v := range visitors {
		if !ValidStatus(string(v.Status)) {
			v.Status = StatusCheckedIn
		}
	}

	return visitors
}
