package entity

// LookupRecord is the raw shape returned by the address search source.
// It carries street-level data only; house number and names are supplied later.
type LookupRecord struct {
	ID       string `json:"id" validate:"required"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	Postcode string `json:"postcode" validate:"required"`
}
