package lookup

import (
	"context"
	"log/slog"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"
)

// staticLookup serves fixture records from configuration, for local development
type staticLookup struct {
	records []entity.LookupRecord
	logger  *slog.Logger
}

// NewStaticLookup creates a lookup backed by a fixed record list
func NewStaticLookup(records []entity.LookupRecord, logger *slog.Logger) service.AddressLookup {
	owned := make([]entity.LookupRecord, len(records))
	copy(owned, records)

	return &staticLookup{
		records: owned,
		logger:  logger,
	}
}

// Search returns the fixtures whose postcode matches. The street number is not
// used for filtering since records are street-level.
func (l *staticLookup) Search(ctx context.Context, postcode, streetNumber string) ([]entity.LookupRecord, error) {
	found := make([]entity.LookupRecord, 0)
	for _, record := range l.records {
		if record.Postcode == postcode {
			found = append(found, record)
		}
	}

	l.logger.Debug("[StaticLookup] Served fixtures",
		slog.String("postcode", postcode),
		slog.String("street_number", streetNumber),
		slog.Int("records", len(found)),
	)

	return found, nil
}
