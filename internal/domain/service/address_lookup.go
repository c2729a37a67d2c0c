package service

import (
	"context"

	"addressbook/internal/domain/entity"
)

// AddressLookup defines the interface for the external address search source
type AddressLookup interface {
	// Search returns the raw records found for a postcode and street number, in source order.
	// Failures reported by the source are returned as *errors.LookupError.
	Search(ctx context.Context, postcode, streetNumber string) ([]entity.LookupRecord, error)
}
