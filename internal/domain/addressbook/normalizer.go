package addressbook

import (
	"addressbook/internal/domain/entity"
)

// Normalize converts a raw lookup record into a canonical address.
// The house number comes from the search query because the lookup source
// returns street-level data only. Names stay empty until a person is attached.
//
// Normalize does not validate raw; callers must reject malformed records first.
func Normalize(raw entity.LookupRecord, houseNumber string) entity.Address {
	return entity.Address{
		ID:          raw.ID,
		FirstName:   "",
		LastName:    "",
		HouseNumber: houseNumber,
		Street:      raw.Street,
		City:        raw.City,
		Postcode:    raw.Postcode,
	}
}

// NormalizeAll normalizes every record with the same house number, keeping order.
func NormalizeAll(records []entity.LookupRecord, houseNumber string) []entity.Address {
	addresses := make([]entity.Address, 0, len(records))
	for _, raw := range records {
		addresses = append(addresses, Normalize(raw, houseNumber))
	}

	return addresses
}
