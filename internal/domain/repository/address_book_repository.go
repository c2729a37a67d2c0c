// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"addressbook/internal/domain/addressbook"
	"addressbook/internal/domain/entity"
)

// AddressBookRepository owns the saved address book for the lifetime of the process.
// Operations are synchronous, perform no I/O and never fail; every mutation is
// applied atomically and returns the state it committed.
type AddressBookRepository interface {
	// Add appends address unless the same person (first and last name) is already saved.
	Add(address entity.Address) (addressbook.State, addressbook.Outcome)

	// Remove drops every entry with the given id. Unknown ids are a no-op.
	Remove(id string) addressbook.State

	// ReplaceAll swaps the whole book for addresses, kept verbatim.
	ReplaceAll(addresses []entity.Address) addressbook.State

	// List returns the saved addresses in order.
	List() []entity.Address
}
