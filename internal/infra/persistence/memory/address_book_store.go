// Package memory contains the in-process implementation of the persistence layer.
// Nothing here survives a restart.
package memory

import (
	"log/slog"
	"sync/atomic"

	"addressbook/internal/domain/addressbook"
	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/repository"
)

// addressBookStore implements repository.AddressBookRepository on an atomic state pointer.
type addressBookStore struct {
	state  atomic.Pointer[addressbook.State]
	logger *slog.Logger
}

// NewAddressBookStore creates an empty address book store.
func NewAddressBookStore(logger *slog.Logger) repository.AddressBookRepository {
	return newAddressBookStore(logger)
}

func newAddressBookStore(logger *slog.Logger) *addressBookStore {
	store := &addressBookStore{logger: logger}
	store.state.Store(&addressbook.State{})

	return store
}

// Add appends address unless the same person is already saved.
func (s *addressBookStore) Add(address entity.Address) (addressbook.State, addressbook.Outcome) {
	var outcome addressbook.Outcome
	next := s.update(func(current addressbook.State) addressbook.State {
		var state addressbook.State
		state, outcome = current.Add(address)

		return state
	})

	s.logger.Debug("Address book add",
		slog.String("address_id", address.ID),
		slog.String("outcome", outcome.String()),
		slog.Int("size", next.Len()),
	)

	return next, outcome
}

// Remove drops every entry with the given id.
func (s *addressBookStore) Remove(id string) addressbook.State {
	next := s.update(func(current addressbook.State) addressbook.State {
		return current.Remove(id)
	})

	s.logger.Debug("Address book remove",
		slog.String("address_id", id),
		slog.Int("size", next.Len()),
	)

	return next
}

// ReplaceAll swaps the whole book for addresses.
func (s *addressBookStore) ReplaceAll(addresses []entity.Address) addressbook.State {
	next := s.update(func(current addressbook.State) addressbook.State {
		return current.ReplaceAll(addresses)
	})

	s.logger.Debug("Address book replaced", slog.Int("size", next.Len()))

	return next
}

// List returns the saved addresses in order.
func (s *addressBookStore) List() []entity.Address {
	return s.state.Load().List()
}

// update runs transition against the current state and commits the result with
// compare-and-swap, retrying from a fresh read when another writer got there first.
// transition must be pure since it may run more than once.
func (s *addressBookStore) update(transition func(addressbook.State) addressbook.State) addressbook.State {
	for {
		current := s.state.Load()
		next := transition(*current)
		if s.state.CompareAndSwap(current, &next) {
			return next
		}
	}
}
