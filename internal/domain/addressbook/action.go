package addressbook

import (
	"addressbook/internal/domain/entity"
)

// Action is a mutation that can be applied to a State through Reduce.
type Action interface {
	apply(State) State
}

// AddAddress appends Address unless the same person is already saved.
type AddAddress struct {
	Address entity.Address
}

func (a AddAddress) apply(s State) State {
	next, _ := s.Add(a.Address)

	return next
}

// RemoveAddress drops entries by ID.
type RemoveAddress struct {
	ID string
}

func (a RemoveAddress) apply(s State) State {
	return s.Remove(a.ID)
}

// ReplaceAddresses swaps the whole book for Addresses.
type ReplaceAddresses struct {
	Addresses []entity.Address
}

func (a ReplaceAddresses) apply(s State) State {
	return s.ReplaceAll(a.Addresses)
}

// Reduce applies action to state and returns the next state.
// A nil action leaves the state as is.
func Reduce(state State, action Action) State {
	if action == nil {
		return state
	}

	return action.apply(state)
}
