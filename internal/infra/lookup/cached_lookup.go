package lookup

import (
	"context"
	"log/slog"
	"time"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type searchKey struct {
	postcode     string
	streetNumber string
}

// cachedLookup remembers successful searches for a while. Failures are never cached.
type cachedLookup struct {
	next   service.AddressLookup
	cache  *expirable.LRU[searchKey, []entity.LookupRecord]
	logger *slog.Logger
}

// NewCachedLookup wraps next with an LRU cache of size entries expiring after ttl
func NewCachedLookup(next service.AddressLookup, size int, ttl time.Duration, logger *slog.Logger) service.AddressLookup {
	return &cachedLookup{
		next:   next,
		cache:  expirable.NewLRU[searchKey, []entity.LookupRecord](size, nil, ttl),
		logger: logger,
	}
}

// Search serves from cache when possible and otherwise delegates to the wrapped lookup
func (l *cachedLookup) Search(ctx context.Context, postcode, streetNumber string) ([]entity.LookupRecord, error) {
	key := searchKey{postcode: postcode, streetNumber: streetNumber}

	if records, ok := l.cache.Get(key); ok {
		l.logger.Debug("[CachedLookup] Cache hit",
			slog.String("postcode", postcode),
			slog.String("street_number", streetNumber),
		)

		return cloneRecords(records), nil
	}

	records, err := l.next.Search(ctx, postcode, streetNumber)
	if err != nil {
		return nil, err
	}

	l.cache.Add(key, cloneRecords(records))

	return records, nil
}

func cloneRecords(records []entity.LookupRecord) []entity.LookupRecord {
	out := make([]entity.LookupRecord, len(records))
	copy(out, records)

	return out
}
