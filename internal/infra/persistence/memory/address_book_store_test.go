package memory

import (
	"fmt"
	"log/slog"
	"testing"

	"addressbook/internal/domain/addressbook"
	"addressbook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestStore() *addressBookStore {
	return newAddressBookStore(slog.New(slog.DiscardHandler))
}

func TestAddressBookStore_StartsEmpty(t *testing.T) {
	store := newTestStore()

	assert.Empty(t, store.List())
}

func TestAddressBookStore_EndToEnd(t *testing.T) {
	store := newTestStore()
	john := entity.Address{ID: "1", FirstName: "John", LastName: "Doe", HouseNumber: "123", Street: "George St", City: "Sydney", Postcode: "2000"}

	_, outcome := store.Add(john)
	require.Equal(t, addressbook.OutcomeAdded, outcome)
	require.Equal(t, []entity.Address{john}, store.List())

	state, outcome := store.Add(entity.Address{ID: "2", FirstName: "John", LastName: "Doe", Street: "Other St"})
	assert.Equal(t, addressbook.OutcomeRejectedDuplicate, outcome)
	assert.Equal(t, []entity.Address{john}, state.List())
	require.Equal(t, []entity.Address{john}, store.List())

	state = store.Remove("1")
	assert.Empty(t, state.List())
	assert.Empty(t, store.List())
}

func TestAddressBookStore_ReplaceAll(t *testing.T) {
	store := newTestStore()
	store.Add(entity.Address{ID: "1", FirstName: "John", LastName: "Doe"})

	replacement := []entity.Address{
		{ID: "7", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "8", FirstName: "Ada", LastName: "Lovelace"},
	}
	state := store.ReplaceAll(replacement)

	assert.Equal(t, replacement, state.List())
	assert.Equal(t, replacement, store.List())
}

func TestAddressBookStore_RemoveMissingIsNoop(t *testing.T) {
	store := newTestStore()
	store.Add(entity.Address{ID: "1", FirstName: "John", LastName: "Doe"})

	state := store.Remove("missing")

	assert.Equal(t, 1, state.Len())
	assert.Len(t, store.List(), 1)
}

func TestAddressBookStore_ConcurrentDuplicateAddsAppendOnce(t *testing.T) {
	store := newTestStore()

	var group errgroup.Group
	outcomes := make([]addressbook.Outcome, 64)
	for i := range outcomes {
		group.Go(func() error {
			_, outcomes[i] = store.Add(entity.Address{
				ID:        fmt.Sprintf("id-%d", i),
				FirstName: "John",
				LastName:  "Doe",
			})

			return nil
		})
	}
	require.NoError(t, group.Wait())

	added := 0
	for _, outcome := range outcomes {
		if outcome == addressbook.OutcomeAdded {
			added++
		}
	}
	assert.Equal(t, 1, added)
	assert.Len(t, store.List(), 1)
}

func TestAddressBookStore_ConcurrentDistinctAddsAllLand(t *testing.T) {
	store := newTestStore()

	var group errgroup.Group
	for i := range 50 {
		group.Go(func() error {
			store.Add(entity.Address{
				ID:        fmt.Sprintf("id-%d", i),
				FirstName: fmt.Sprintf("First%d", i),
				LastName:  "Doe",
			})

			return nil
		})
	}
	require.NoError(t, group.Wait())

	assert.Len(t, store.List(), 50)
}
