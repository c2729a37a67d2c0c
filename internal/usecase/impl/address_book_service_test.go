package impl

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"addressbook/internal/domain/addressbook"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/infra/persistence/memory"
	mockRepo "addressbook/internal/mocks/repository"
	mockService "addressbook/internal/mocks/service"
	"addressbook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.DiscardHandler)

// addressBookServiceFixtures holds all test dependencies for address book service tests.
type addressBookServiceFixtures struct {
	service usecase.AddressBookUsecase
	lookup  *mockService.MockAddressLookup
	book    *mockRepo.MockAddressBookRepository
}

func createTestAddressBookService(t *testing.T) addressBookServiceFixtures {
	lookup := mockService.NewMockAddressLookup(t)
	book := mockRepo.NewMockAddressBookRepository(t)

	return addressBookServiceFixtures{
		service: NewAddressBookService(lookup, book, testLogger),
		lookup:  lookup,
		book:    book,
	}
}

// createTestAddressBookServiceWithStore uses the real in-memory store so the whole flow can be exercised.
func createTestAddressBookServiceWithStore(t *testing.T) (usecase.AddressBookUsecase, *mockService.MockAddressLookup) {
	lookup := mockService.NewMockAddressLookup(t)

	return NewAddressBookService(lookup, memory.NewAddressBookStore(testLogger), testLogger), lookup
}

var sydneyRecords = []entity.LookupRecord{
	{ID: "1", Street: "George St", City: "Sydney", Postcode: "2000"},
	{ID: "2", Street: "Pitt St", City: "Sydney", Postcode: "2000"},
}

func TestAddressBookService_SearchAddresses_Success(t *testing.T) {
	fx := createTestAddressBookService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().
		Search(ctx, "2000", "42").
		Return(sydneyRecords, nil)

	candidates, err := fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "42"})
	require.NoError(t, err)

	assert.Equal(t, []entity.Address{
		{ID: "1", HouseNumber: "42", Street: "George St", City: "Sydney", Postcode: "2000"},
		{ID: "2", HouseNumber: "42", Street: "Pitt St", City: "Sydney", Postcode: "2000"},
	}, candidates)
	assert.Equal(t, candidates, fx.service.Candidates(ctx))
}

func TestAddressBookService_SearchAddresses_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		query usecase.SearchQuery
		want  error
	}{
		{name: "empty postcode", query: usecase.SearchQuery{HouseNumber: "1"}, want: domainerrors.ErrSearchFieldsRequired},
		{name: "empty house number", query: usecase.SearchQuery{Postcode: "2000"}, want: domainerrors.ErrSearchFieldsRequired},
		{name: "both empty", query: usecase.SearchQuery{}, want: domainerrors.ErrSearchFieldsRequired},
		{name: "empty wins over non digits", query: usecase.SearchQuery{Postcode: "abcd"}, want: domainerrors.ErrSearchFieldsRequired},
		{name: "non digit postcode", query: usecase.SearchQuery{Postcode: "20a0", HouseNumber: "1"}, want: domainerrors.ErrSearchFieldsNotDigits},
		{name: "non digit house number", query: usecase.SearchQuery{Postcode: "2000", HouseNumber: "1b"}, want: domainerrors.ErrSearchFieldsNotDigits},
		{name: "signed house number", query: usecase.SearchQuery{Postcode: "2000", HouseNumber: "-1"}, want: domainerrors.ErrSearchFieldsNotDigits},
		{name: "non digits wins over length", query: usecase.SearchQuery{Postcode: "12", HouseNumber: "x"}, want: domainerrors.ErrSearchFieldsNotDigits},
		{name: "short postcode", query: usecase.SearchQuery{Postcode: "123", HouseNumber: "1"}, want: domainerrors.ErrPostcodeTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAddressBookService(t)

			candidates, err := fx.service.SearchAddresses(context.Background(), tt.query)
			assert.Nil(t, candidates)
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestAddressBookService_SearchAddresses_ValidationKeepsPreviousCandidates(t *testing.T) {
	fx := createTestAddressBookService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().Search(ctx, "2000", "42").Return(sydneyRecords, nil).Once()

	_, err := fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "42"})
	require.NoError(t, err)

	_, err = fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "20", HouseNumber: "42"})
	require.Error(t, err)

	assert.Len(t, fx.service.Candidates(ctx), 2)
}

func TestAddressBookService_SearchAddresses_LookupErrorClearsCandidates(t *testing.T) {
	fx := createTestAddressBookService(t)
	ctx := context.Background()
	lookupErr := domainerrors.NewLookupError("Postcode not found!", http.StatusNotFound, nil)

	fx.lookup.EXPECT().Search(ctx, "2000", "42").Return(sydneyRecords, nil).Once()
	fx.lookup.EXPECT().Search(ctx, "9999", "1").Return(nil, lookupErr).Once()

	_, err := fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "42"})
	require.NoError(t, err)

	candidates, err := fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "9999", HouseNumber: "1"})
	assert.Nil(t, candidates)
	assert.Equal(t, lookupErr, err)
	assert.Empty(t, fx.service.Candidates(ctx))
}

func TestAddressBookService_SearchAddresses_UnexpectedLookupFailure(t *testing.T) {
	fx := createTestAddressBookService(t)
	ctx := context.Background()
	cause := errors.New("boom")

	fx.lookup.EXPECT().Search(ctx, "2000", "1").Return(nil, cause)

	_, err := fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestAddressBookService_SearchAddresses_DropsMalformedRecords(t *testing.T) {
	fx := createTestAddressBookService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().
		Search(ctx, "2000", "5").
		Return([]entity.LookupRecord{
			{ID: "1", Street: "George St", City: "Sydney", Postcode: "2000"},
			{ID: "", Street: "No Id St", City: "Sydney", Postcode: "2000"},
			{ID: "3", Street: "", City: "Sydney", Postcode: "2000"},
		}, nil)

	candidates, err := fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "5"})
	require.NoError(t, err)

	require.Len(t, candidates, 1)
	assert.Equal(t, "1", candidates[0].ID)
}

func TestAddressBookService_Reset(t *testing.T) {
	fx := createTestAddressBookService(t)
	ctx := context.Background()

	fx.lookup.EXPECT().Search(ctx, "2000", "42").Return(sydneyRecords, nil)

	_, err := fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "42"})
	require.NoError(t, err)

	fx.service.Reset(ctx)

	assert.Empty(t, fx.service.Candidates(ctx))
}

func TestAddressBookService_AddPerson_SelectionErrors(t *testing.T) {
	tests := []struct {
		name     string
		search   bool
		details  usecase.PersonDetails
		expected error
	}{
		{
			name:     "missing first name",
			search:   true,
			details:  usecase.PersonDetails{LastName: "Doe", AddressID: "1"},
			expected: domainerrors.ErrPersonNameRequired,
		},
		{
			name:     "missing last name",
			search:   true,
			details:  usecase.PersonDetails{FirstName: "John", AddressID: "1"},
			expected: domainerrors.ErrPersonNameRequired,
		},
		{
			name:     "names are checked before selection",
			search:   false,
			details:  usecase.PersonDetails{},
			expected: domainerrors.ErrPersonNameRequired,
		},
		{
			name:     "no address selected",
			search:   true,
			details:  usecase.PersonDetails{FirstName: "John", LastName: "Doe"},
			expected: domainerrors.ErrNoAddressSelected,
		},
		{
			name:     "no candidates",
			search:   false,
			details:  usecase.PersonDetails{FirstName: "John", LastName: "Doe", AddressID: "1"},
			expected: domainerrors.ErrNoAddressSelected,
		},
		{
			name:     "selected id not in candidates",
			search:   true,
			details:  usecase.PersonDetails{FirstName: "John", LastName: "Doe", AddressID: "404"},
			expected: domainerrors.ErrSelectedAddressNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The book mock has no expectations: any call to it fails the test.
			fx := createTestAddressBookService(t)
			ctx := context.Background()

			if tt.search {
				fx.lookup.EXPECT().Search(ctx, "2000", "42").Return(sydneyRecords, nil)
				_, err := fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "42"})
				require.NoError(t, err)
			}

			result, err := fx.service.AddPerson(ctx, tt.details)
			assert.Nil(t, result)
			assert.Equal(t, tt.expected, err)
		})
	}
}

func TestAddressBookService_AddPerson_ComposesCandidate(t *testing.T) {
	fx := createTestAddressBookService(t)
	ctx := context.Background()
	expected := entity.Address{
		ID:          "2",
		FirstName:   "Jane",
		LastName:    "Smith",
		HouseNumber: "42",
		Street:      "Pitt St",
		City:        "Sydney",
		Postcode:    "2000",
	}

	fx.lookup.EXPECT().Search(ctx, "2000", "42").Return(sydneyRecords, nil)
	fx.book.EXPECT().
		Add(mock.MatchedBy(func(address entity.Address) bool { return address == expected })).
		Return(addressbook.NewState(expected), addressbook.OutcomeAdded)

	_, err := fx.service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "42"})
	require.NoError(t, err)

	result, err := fx.service.AddPerson(ctx, usecase.PersonDetails{FirstName: "Jane", LastName: "Smith", AddressID: "2"})
	require.NoError(t, err)

	assert.Equal(t, expected, result.Address)
	assert.Equal(t, addressbook.OutcomeAdded, result.Outcome)
	assert.Equal(t, []entity.Address{expected}, result.Addresses)
}

func TestAddressBookService_RemoveAddress(t *testing.T) {
	fx := createTestAddressBookService(t)
	remaining := entity.Address{ID: "2", FirstName: "Jane", LastName: "Smith"}

	fx.book.EXPECT().Remove("1").Return(addressbook.NewState(remaining))

	got := fx.service.RemoveAddress(context.Background(), "1")

	assert.Equal(t, []entity.Address{remaining}, got)
}

func TestAddressBookService_ReplaceAddresses(t *testing.T) {
	fx := createTestAddressBookService(t)
	replacement := []entity.Address{
		{ID: "1", FirstName: "John", LastName: "Doe"},
		{ID: "2", FirstName: "John", LastName: "Doe"},
	}

	fx.book.EXPECT().ReplaceAll(replacement).Return(addressbook.NewState(replacement...))

	got := fx.service.ReplaceAddresses(context.Background(), replacement)

	assert.Equal(t, replacement, got)
}

func TestAddressBookService_ListAddresses(t *testing.T) {
	fx := createTestAddressBookService(t)
	saved := []entity.Address{{ID: "1", FirstName: "John", LastName: "Doe"}}

	fx.book.EXPECT().List().Return(saved)

	assert.Equal(t, saved, fx.service.ListAddresses(context.Background()))
}

func TestAddressBookService_EndToEnd(t *testing.T) {
	service, lookup := createTestAddressBookServiceWithStore(t)
	ctx := context.Background()

	lookup.EXPECT().Search(ctx, "2000", "123").Return(sydneyRecords, nil).Once()
	lookup.EXPECT().
		Search(ctx, "2000", "7").
		Return([]entity.LookupRecord{{ID: "5", Street: "Other St", City: "Sydney", Postcode: "2000"}}, nil).
		Once()

	_, err := service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "123"})
	require.NoError(t, err)

	first, err := service.AddPerson(ctx, usecase.PersonDetails{FirstName: "John", LastName: "Doe", AddressID: "1"})
	require.NoError(t, err)
	assert.Equal(t, addressbook.OutcomeAdded, first.Outcome)
	require.Len(t, first.Addresses, 1)

	_, err = service.SearchAddresses(ctx, usecase.SearchQuery{Postcode: "2000", HouseNumber: "7"})
	require.NoError(t, err)

	second, err := service.AddPerson(ctx, usecase.PersonDetails{FirstName: "John", LastName: "Doe", AddressID: "5"})
	require.NoError(t, err)
	assert.Equal(t, addressbook.OutcomeRejectedDuplicate, second.Outcome)

	saved := service.ListAddresses(ctx)
	require.Len(t, saved, 1)
	assert.Equal(t, "1", saved[0].ID)
	assert.Equal(t, "George St", saved[0].Street)

	assert.Empty(t, service.RemoveAddress(ctx, "1"))
	assert.Empty(t, service.ListAddresses(ctx))
}
