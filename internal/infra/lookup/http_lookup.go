// Package lookup contains the implementations of the address search source.
package lookup

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/service"
)

const (
	searchPath        = "/api/getAddresses"
	statusError       = "error"
	maxResponseBytes  = 1 << 20
	headerContentType = "application/json"
)

// searchResponse is the body returned by the search API.
// Errors carry errormessage, successes carry details.
type searchResponse struct {
	Status       string                `json:"status"`
	ErrorMessage string                `json:"errormessage"`
	Details      []entity.LookupRecord `json:"details"`
}

// httpLookup implements AddressLookup against the remote search API
type httpLookup struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPLookup creates a lookup that queries baseURL with the given per-request timeout
func NewHTTPLookup(baseURL string, timeout time.Duration, logger *slog.Logger) service.AddressLookup {
	return &httpLookup{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Search sends GET {baseURL}/api/getAddresses?postcode=..&streetnumber=.. once, without retries
func (l *httpLookup) Search(ctx context.Context, postcode, streetNumber string) ([]entity.LookupRecord, error) {
	query := url.Values{}
	query.Set("postcode", postcode)
	query.Set("streetnumber", streetNumber)
	endpoint := l.baseURL + searchPath + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domainerrors.NewLookupError(err.Error(), 0, err)
	}
	req.Header.Set("Accept", headerContentType)

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, l.logger)
	logger.Debug("[HTTPLookup] Searching addresses",
		slog.String("postcode", postcode),
		slog.String("street_number", streetNumber),
	)

	resp, err := l.httpClient.Do(req)
	if err != nil {
		logger.Warn("[HTTPLookup] Request failed", slog.Any("error", err))

		return nil, domainerrors.NewLookupError(err.Error(), 0, err)
	}
	defer resp.Body.Close()

	var body searchResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn("[HTTPLookup] Source returned non-success status",
			slog.Int("status", resp.StatusCode),
			slog.String("message", body.ErrorMessage),
		)

		return nil, domainerrors.NewLookupError(body.ErrorMessage, resp.StatusCode, nil)
	}

	if decodeErr != nil {
		return nil, domainerrors.NewLookupError(decodeErr.Error(), resp.StatusCode, decodeErr)
	}

	if strings.EqualFold(body.Status, statusError) {
		return nil, domainerrors.NewLookupError(body.ErrorMessage, resp.StatusCode, nil)
	}

	logger.Debug("[HTTPLookup] Search completed", slog.Int("records", len(body.Details)))

	if body.Details == nil {
		return []entity.LookupRecord{}, nil
	}

	return body.Details, nil
}
