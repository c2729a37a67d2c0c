package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/addressbook"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"github.com/go-playground/validator/v10"
)

// searchInput carries the validation rules for a search query
type searchInput struct {
	Postcode    string `validate:"required,number,min=4"`
	HouseNumber string `validate:"required,number"`
}

// personInput carries the validation rules for the person step
type personInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

type addressBookService struct {
	lookup   service.AddressLookup
	book     repository.AddressBookRepository
	validate *validator.Validate
	logger   *slog.Logger

	mu         sync.RWMutex
	candidates []entity.Address
}

// NewAddressBookService creates a new address book service instance
func NewAddressBookService(
	lookup service.AddressLookup,
	book repository.AddressBookRepository,
	logger *slog.Logger,
) usecase.AddressBookUsecase {
	return &addressBookService{
		lookup:   lookup,
		book:     book,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// SearchAddresses validates the query, runs the lookup and stores the normalized results as candidates
func (s *addressBookService) SearchAddresses(ctx context.Context, query usecase.SearchQuery) ([]entity.Address, error) {
	if err := s.validateSearch(query); err != nil {
		return nil, err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	// Previous results are cleared before the lookup, so a failed search leaves no stale candidates
	s.setCandidates(nil)

	records, err := s.lookup.Search(ctx, query.Postcode, query.HouseNumber)
	if err != nil {
		if domainerrors.IsUserFacing(err) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to search addresses")
	}

	valid := make([]entity.LookupRecord, 0, len(records))
	for i, record := range records {
		if err := s.validate.Struct(record); err != nil {
			logger.Warn("Dropping malformed lookup record",
				slog.Int("index", i),
				slog.String("record_id", record.ID),
				slog.Any("error", err),
			)

			continue
		}
		valid = append(valid, record)
	}

	candidates := addressbook.NormalizeAll(valid, query.HouseNumber)
	s.setCandidates(candidates)

	logger.Info("Address search completed",
		slog.String("postcode", query.Postcode),
		slog.String("house_number", query.HouseNumber),
		slog.Int("candidates", len(candidates)),
	)

	return cloneAddresses(candidates), nil
}

// Candidates returns the results of the last successful search
func (s *addressBookService) Candidates(ctx context.Context) []entity.Address {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAddresses(s.candidates)
}

// Reset drops the current candidates
func (s *addressBookService) Reset(ctx context.Context) {
	s.setCandidates(nil)

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Candidates cleared")
}

// AddPerson attaches a person to the selected candidate and adds it to the book
func (s *addressBookService) AddPerson(ctx context.Context, details usecase.PersonDetails) (*usecase.AddPersonResult, error) {
	if err := s.validate.Struct(personInput{FirstName: details.FirstName, LastName: details.LastName}); err != nil {
		return nil, domainerrors.ErrPersonNameRequired
	}

	selected, err := s.findCandidate(details.AddressID)
	if err != nil {
		return nil, err
	}

	composed := selected.WithPerson(details.FirstName, details.LastName)
	state, outcome := s.book.Add(composed)

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	if outcome == addressbook.OutcomeRejectedDuplicate {
		logger.Info("Person already in address book, keeping existing entry",
			slog.String("address_id", composed.ID),
		)
	} else {
		logger.Info("Person added to address book",
			slog.String("address_id", composed.ID),
			slog.Int("size", state.Len()),
		)
	}

	return &usecase.AddPersonResult{
		Address:   composed,
		Outcome:   outcome,
		Addresses: state.List(),
	}, nil
}

// RemoveAddress removes every saved entry with the given id
func (s *addressBookService) RemoveAddress(ctx context.Context, id string) []entity.Address {
	state := s.book.Remove(id)

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Address removed from address book",
		slog.String("address_id", id),
		slog.Int("size", state.Len()),
	)

	return state.List()
}

// ReplaceAddresses replaces the whole address book
func (s *addressBookService) ReplaceAddresses(ctx context.Context, addresses []entity.Address) []entity.Address {
	state := s.book.ReplaceAll(addresses)

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Address book replaced",
		slog.Int("size", state.Len()),
	)

	return state.List()
}

// ListAddresses returns the saved addresses in order
func (s *addressBookService) ListAddresses(ctx context.Context) []entity.Address {
	return s.book.List()
}

// validateSearch maps rule failures to user messages. Missing fields take
// precedence over non-digit input, which takes precedence over length.
func (s *addressBookService) validateSearch(query usecase.SearchQuery) error {
	err := s.validate.Struct(searchInput{Postcode: query.Postcode, HouseNumber: query.HouseNumber})
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate search query")
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		failed[fieldErr.Tag()] = true
	}

	switch {
	case failed["required"]:
		return domainerrors.ErrSearchFieldsRequired
	case failed["number"]:
		return domainerrors.ErrSearchFieldsNotDigits
	default:
		return domainerrors.ErrPostcodeTooShort
	}
}

func (s *addressBookService) findCandidate(id string) (entity.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if id == "" || len(s.candidates) == 0 {
		return entity.Address{}, domainerrors.ErrNoAddressSelected
	}

	for _, candidate := range s.candidates {
		if candidate.ID == id {
			return candidate, nil
		}
	}

	return entity.Address{}, domainerrors.ErrSelectedAddressNotFound
}

func (s *addressBookService) setCandidates(candidates []entity.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.candidates = candidates
}

func cloneAddresses(addresses []entity.Address) []entity.Address {
	out := make([]entity.Address, len(addresses))
	copy(out, addresses)

	return out
}
