package handler

import (
	"log/slog"
	"net/http"

	"addressbook/internal/delivery/api/response"
	"addressbook/internal/domain/addressbook"
	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressBookHandlerParams holds dependencies for AddressBookHandler, injected by Fx.
type AddressBookHandlerParams struct {
	fx.In

	AddressBookUC usecase.AddressBookUsecase
	Logger        *slog.Logger
}

// AddressBookHandler holds dependencies for the search and address book handlers
type AddressBookHandler struct {
	addressBookUC usecase.AddressBookUsecase
	logger        *slog.Logger
}

// NewAddressBookHandler is the constructor for AddressBookHandler
func NewAddressBookHandler(params AddressBookHandlerParams) *AddressBookHandler {
	return &AddressBookHandler{
		addressBookUC: params.AddressBookUC,
		logger:        params.Logger,
	}
}

// SearchRequest represents the query parameters of an address search
type SearchRequest struct {
	Postcode     string `query:"postcode"`
	StreetNumber string `query:"streetnumber"`
}

// AddPersonRequest represents the request body for adding a person to the book
type AddPersonRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AddressID string `json:"addressId"`
}

// AddressPayload is one address inside a replace request
type AddressPayload struct {
	ID          string `json:"id" validate:"required"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	HouseNumber string `json:"houseNumber"`
	Street      string `json:"street"`
	City        string `json:"city"`
	Postcode    string `json:"postcode"`
}

// ReplaceAddressesRequest represents the request body for replacing the whole book
type ReplaceAddressesRequest struct {
	Addresses []AddressPayload `json:"addresses" validate:"dive"`
}

// AddPersonResponse is returned after an add attempt
type AddPersonResponse struct {
	Address   entity.Address   `json:"address"`
	Outcome   string           `json:"outcome"`
	Addresses []entity.Address `json:"addresses"`
}

// SearchAddresses handles an address search
func (h *AddressBookHandler) SearchAddresses(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	candidates, err := h.addressBookUC.SearchAddresses(c.Request().Context(), usecase.SearchQuery{
		Postcode:    req.Postcode,
		HouseNumber: req.StreetNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orEmpty(candidates))
}

// GetCandidates returns the results of the last search
func (h *AddressBookHandler) GetCandidates(c echo.Context) error {
	return response.Success(c, http.StatusOK, orEmpty(h.addressBookUC.Candidates(c.Request().Context())))
}

// ResetCandidates clears the current search results
func (h *AddressBookHandler) ResetCandidates(c echo.Context) error {
	h.addressBookUC.Reset(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

// ListAddresses returns the saved addresses
func (h *AddressBookHandler) ListAddresses(c echo.Context) error {
	return response.Success(c, http.StatusOK, orEmpty(h.addressBookUC.ListAddresses(c.Request().Context())))
}

// AddPerson attaches a person to the selected candidate and saves it.
// A person already in the book is reported with 200 instead of 201.
func (h *AddressBookHandler) AddPerson(c echo.Context) error {
	var req AddPersonRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid person input")
	}

	result, err := h.addressBookUC.AddPerson(c.Request().Context(), usecase.PersonDetails{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AddressID: req.AddressID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if result.Outcome == addressbook.OutcomeRejectedDuplicate {
		status = http.StatusOK
	}

	return response.Success(c, status, AddPersonResponse{
		Address:   result.Address,
		Outcome:   result.Outcome.String(),
		Addresses: orEmpty(result.Addresses),
	})
}

// ReplaceAddresses replaces the whole address book
func (h *AddressBookHandler) ReplaceAddresses(c echo.Context) error {
	var req ReplaceAddressesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address book input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Every address needs an id", invalidFields(err))
	}

	addresses := make([]entity.Address, 0, len(req.Addresses))
	for _, payload := range req.Addresses {
		addresses = append(addresses, entity.Address(payload))
	}

	return response.Success(c, http.StatusOK, orEmpty(h.addressBookUC.ReplaceAddresses(c.Request().Context(), addresses)))
}

// RemoveAddress removes the saved entries with the id from the path
func (h *AddressBookHandler) RemoveAddress(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.BadRequest(c, "INVALID_ID", "Address id is required")
	}

	return response.Success(c, http.StatusOK, orEmpty(h.addressBookUC.RemoveAddress(c.Request().Context(), id)))
}

func invalidFields(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		fields = append(fields, fieldErr.Namespace())
	}

	return fields
}

func orEmpty(addresses []entity.Address) []entity.Address {
	if addresses == nil {
		return []entity.Address{}
	}

	return addresses
}
