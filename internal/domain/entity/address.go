// Package entity contains the core business objects of the project.
package entity

// Address is the canonical address shape used everywhere downstream of the lookup.
// ID is assigned by the upstream data source and is only unique within one search batch.
type Address struct {
	ID          string `json:"id"`          // Identifier assigned by the lookup source.
	FirstName   string `json:"firstName"`   // Empty until the person-info step completes.
	LastName    string `json:"lastName"`    // Empty until the person-info step completes.
	HouseNumber string `json:"houseNumber"` // Supplied by the caller, not by the lookup source.
	Street      string `json:"street"`
	City        string `json:"city"`
	Postcode    string `json:"postcode"`
}

// SamePerson reports whether a and other belong to the same person in the address book.
// Names are compared exactly; location fields are ignored.
func (a Address) SamePerson(other Address) bool {
	return a.FirstName == other.FirstName && a.LastName == other.LastName
}

// WithPerson returns a copy of the address with the given names attached.
func (a Address) WithPerson(firstName, lastName string) Address {
	a.FirstName = firstName
	a.LastName = lastName

	return a
}
