package model

import (
	"errors"

	"github.com/google/uuid"
)

// Predicate selects internships for the filtered list.
type Predicate func(Internship) bool

// ShowAll is the predicate of an unfiltered list.
func ShowAll(Internship) bool { return true }

// ErrNotFound is returned when an ID is not in the tracker.
var ErrNotFound = errors.New("internship not found")

// ChangeKind describes what happened to the model.
type ChangeKind int

const (
	ChangeAdded ChangeKind = iota + 1
	ChangeUpdated
	ChangeRemoved
	ChangeReset
	ChangeFiltered
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeAdded:
		return "added"
	case ChangeUpdated:
		return "updated"
	case ChangeRemoved:
		return "removed"
	case ChangeReset:
		return "reset"
	case ChangeFiltered:
		return "filtered"
	}
	return "unknown"
}

// Change is delivered to observers after every mutation. ID is uuid.Nil for
// ChangeReset and ChangeFiltered.
type Change struct {
	Kind ChangeKind
	ID   uuid.UUID
}

// Model is what commands execute against.
type Model interface {
	// Internships returns every internship in storage order.
	Internships() []Internship
	// FilteredInternships returns the displayed list in display order.
	FilteredInternships() []Internship
	HasInternship(in Internship) bool
	AddInternship(in Internship)
	// SetInternship replaces the internship with the given id.
	SetInternship(id uuid.UUID, in Internship) error
	DeleteInternship(id uuid.UUID) error
	Reset(internships []Internship)
	UpdateFilter(p Predicate)
	// Subscribe registers fn for change notifications and returns a
	// function that removes it.
	Subscribe(fn func(Change)) (unsubscribe func())
}

// Tracker is the in-memory Model. It is not safe for concurrent use.
type Tracker struct {
	internships []Internship
	filter      Predicate

	observers map[int]func(Change)
	nextObs   int
}

// NewTracker returns a Tracker holding copies of internships.
func NewTracker(internships []Internship) *Tracker {
	t := &Tracker{
		filter:    ShowAll,
		observers: make(map[int]func(Change)),
	}
	for _, in := range internships {
		t.internships = append(t.internships, in.Clone())
	}
	return t
}

func (t *Tracker) Internships() []Internship {
	out := make([]Internship, 0, len(t.internships))
	for _, in := range t.internships {
		out = append(out, in.Clone())
	}
	return out
}

func (t *Tracker) FilteredInternships() []Internship {
	out := make([]Internship, 0, len(t.internships))
	for _, in := range t.internships {
		if t.filter(in) {
			out = append(out, in.Clone())
		}
	}
	return out
}

func (t *Tracker) HasInternship(in Internship) bool {
	for _, existing := range t.internships {
		if existing.IsSameInternship(in) {
			return true
		}
	}
	return false
}

// AddInternship appends in, assigning an ID when it has none.
func (t *Tracker) AddInternship(in Internship) {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	t.internships = append(t.internships, in.Clone())
	t.notify(Change{Kind: ChangeAdded, ID: in.ID})
}

func (t *Tracker) SetInternship(id uuid.UUID, in Internship) error {
	i := t.position(id)
	if i < 0 {
		return ErrNotFound
	}
	in.ID = id
	t.internships[i] = in.Clone()
	t.notify(Change{Kind: ChangeUpdated, ID: id})
	return nil
}

func (t *Tracker) DeleteInternship(id uuid.UUID) error {
	i := t.position(id)
	if i < 0 {
		return ErrNotFound
	}
	t.internships = append(t.internships[:i], t.internships[i+1:]...)
	t.notify(Change{Kind: ChangeRemoved, ID: id})
	return nil
}

func (t *Tracker) Reset(internships []Internship) {
	t.internships = nil
	for _, in := range internships {
		t.internships = append(t.internships, in.Clone())
	}
	t.notify(Change{Kind: ChangeReset})
}

// UpdateFilter replaces the active predicate; nil means ShowAll.
func (t *Tracker) UpdateFilter(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	t.filter = p
	t.notify(Change{Kind: ChangeFiltered})
}

// RestoreView filters the list down to the given IDs, keeping storage
// order. When filtered is false everything is shown; an empty ids slice
// with filtered set shows nothing.
func (t *Tracker) RestoreView(ids []uuid.UUID, filtered bool) {
	if !filtered {
		t.UpdateFilter(nil)
		return
	}
	visible := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		visible[id] = true
	}
	t.UpdateFilter(func(in Internship) bool { return visible[in.ID] })
}

// View returns the IDs of the filtered list. filtered is false when every
// internship is displayed.
func (t *Tracker) View() (ids []uuid.UUID, filtered bool) {
	ids = []uuid.UUID{}
	for _, in := range t.internships {
		if t.filter(in) {
			ids = append(ids, in.ID)
		}
	}
	if len(ids) == len(t.internships) {
		return nil, false
	}
	return ids, true
}

func (t *Tracker) Subscribe(fn func(Change)) func() {
	id := t.nextObs
	t.nextObs++
	t.observers[id] = fn
	return func() { delete(t.observers, id) }
}

func (t *Tracker) position(id uuid.UUID) int {
	for i, in := range t.internships {
		if in.ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) notify(c Change) {
	for _, fn := range t.observers {
		fn(c)
	}
}
