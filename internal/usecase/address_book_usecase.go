package usecase

import (
	"context"

	"addressbook/internal/domain/addressbook"
	"addressbook/internal/domain/entity"
)

// SearchQuery represents an address search by postcode and house number
type SearchQuery struct {
	Postcode    string `json:"postcode"`
	HouseNumber string `json:"houseNumber"`
}

// PersonDetails represents the person attached to a selected candidate
type PersonDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AddressID string `json:"addressId"` // ID of the selected candidate
}

// AddPersonResult describes what happened to a composed address
type AddPersonResult struct {
	Address   entity.Address      `json:"address"`
	Outcome   addressbook.Outcome `json:"-"`
	Addresses []entity.Address    `json:"addresses"`
}

// AddressBookUsecase defines the interface for the address book flow:
// search, select a candidate, attach a person and save.
type AddressBookUsecase interface {
	// SearchAddresses validates the query, replaces the current candidates with
	// the normalized search results and returns them
	SearchAddresses(ctx context.Context, query SearchQuery) ([]entity.Address, error)

	// Candidates returns the results of the last successful search
	Candidates(ctx context.Context) []entity.Address

	// Reset drops the current candidates. The address book is left untouched.
	Reset(ctx context.Context)

	// AddPerson attaches a person to the selected candidate and adds it to the book
	AddPerson(ctx context.Context, details PersonDetails) (*AddPersonResult, error)

	// RemoveAddress removes every saved entry with the given id
	RemoveAddress(ctx context.Context, id string) []entity.Address

	// ReplaceAddresses replaces the whole address book
	ReplaceAddresses(ctx context.Context, addresses []entity.Address) []entity.Address

	// ListAddresses returns the saved addresses in order
	ListAddresses(ctx context.Context) []entity.Address
}
