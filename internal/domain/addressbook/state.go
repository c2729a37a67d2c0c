// Package addressbook holds the pure state transitions of the saved address book
// and the normalization of raw lookup records into canonical addresses.
package addressbook

import (
	"addressbook/internal/domain/entity"
)

// Outcome tells the caller what Add did with its candidate.
type Outcome int

const (
	// OutcomeAdded means the candidate was appended to the book.
	OutcomeAdded Outcome = iota
	// OutcomeRejectedDuplicate means an entry with the same names already existed and was kept.
	OutcomeRejectedDuplicate
)

// String returns the wire name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeRejectedDuplicate:
		return "rejected_duplicate"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the address book.
// The zero value is an empty book. Transitions return a new State and never
// touch the receiver's backing array.
type State struct {
	addresses []entity.Address
}

// NewState builds a state holding a copy of addresses in the given order.
func NewState(addresses ...entity.Address) State {
	return State{addresses: clone(addresses)}
}

// List returns the saved addresses in order. The returned slice is a copy.
func (s State) List() []entity.Address {
	return clone(s.addresses)
}

// Len returns the number of saved addresses.
func (s State) Len() int {
	return len(s.addresses)
}

// Add appends candidate unless an entry with the same first and last name exists.
// On a duplicate the state is returned unchanged and the existing entry wins.
func (s State) Add(candidate entity.Address) (State, Outcome) {
	for _, existing := range s.addresses {
		if existing.SamePerson(candidate) {
			return s, OutcomeRejectedDuplicate
		}
	}

	next := make([]entity.Address, len(s.addresses), len(s.addresses)+1)
	copy(next, s.addresses)
	next = append(next, candidate)

	return State{addresses: next}, OutcomeAdded
}

// Remove drops every entry whose ID equals id. Relative order of the rest is kept.
// Removing an unknown id returns the state unchanged.
func (s State) Remove(id string) State {
	if !s.Contains(id) {
		return s
	}

	next := make([]entity.Address, 0, len(s.addresses))
	for _, address := range s.addresses {
		if address.ID != id {
			next = append(next, address)
		}
	}

	return State{addresses: next}
}

// ReplaceAll discards the current entries and stores addresses verbatim.
// No duplicate filtering is applied.
func (s State) ReplaceAll(addresses []entity.Address) State {
	return State{addresses: clone(addresses)}
}

// Contains reports whether an entry with the given id is saved.
func (s State) Contains(id string) bool {
	for _, address := range s.addresses {
		if address.ID == id {
			return true
		}
	}

	return false
}

func clone(addresses []entity.Address) []entity.Address {
	out := make([]entity.Address, len(addresses))
	copy(out, addresses)

	return out
}
