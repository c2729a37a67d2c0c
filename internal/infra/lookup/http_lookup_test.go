package lookup

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

func newSearchServer(t *testing.T, status int, body string) (*httptest.Server, <-chan *http.Request) {
	t.Helper()

	captured := make(chan *http.Request, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case captured <- r.Clone(context.Background()):
		default:
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, captured
}

func TestHTTPLookup_Search_Success(t *testing.T) {
	server, captured := newSearchServer(t, http.StatusOK, `{
		"status": "ok",
		"details": [
			{"id": "1", "street": "George St", "city": "Sydney", "postcode": "2000"},
			{"id": "2", "street": "Pitt St", "city": "Sydney", "postcode": "2000"}
		]
	}`)

	lookup := NewHTTPLookup(server.URL+"/", time.Second, discardLogger)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")

	records, err := lookup.Search(ctx, "2000", "42")
	require.NoError(t, err)

	assert.Equal(t, []entity.LookupRecord{
		{ID: "1", Street: "George St", City: "Sydney", Postcode: "2000"},
		{ID: "2", Street: "Pitt St", City: "Sydney", Postcode: "2000"},
	}, records)

	req := <-captured
	assert.Equal(t, "/api/getAddresses", req.URL.Path)
	assert.Equal(t, "2000", req.URL.Query().Get("postcode"))
	assert.Equal(t, "42", req.URL.Query().Get("streetnumber"))
	assert.Equal(t, "req-123", req.Header.Get(deliverycontext.HeaderXRequestID))
}

func TestHTTPLookup_Search_EmptyDetails(t *testing.T) {
	server, _ := newSearchServer(t, http.StatusOK, `{"status": "ok"}`)

	records, err := NewHTTPLookup(server.URL, time.Second, discardLogger).Search(context.Background(), "2000", "1")
	require.NoError(t, err)

	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestHTTPLookup_Search_Errors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantStatus  int
	}{
		{
			name:        "error message is surfaced verbatim",
			status:      http.StatusBadRequest,
			body:        `{"status": "error", "errormessage": "Postcode must be at least 4 digits!"}`,
			wantMessage: "Postcode must be at least 4 digits!",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "non json failure falls back to default",
			status:      http.StatusInternalServerError,
			body:        `<html>oops</html>`,
			wantMessage: domainerrors.DefaultLookupMessage,
			wantStatus:  http.StatusInternalServerError,
		},
		{
			name:        "error flag on success status",
			status:      http.StatusOK,
			body:        `{"status": "error", "errormessage": "No results found!"}`,
			wantMessage: "No results found!",
			wantStatus:  http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newSearchServer(t, tt.status, tt.body)

			records, err := NewHTTPLookup(server.URL, time.Second, discardLogger).Search(context.Background(), "1234", "1")
			require.Error(t, err)
			assert.Nil(t, records)

			var lookupErr *domainerrors.LookupError
			require.ErrorAs(t, err, &lookupErr)
			assert.Equal(t, tt.wantMessage, lookupErr.Message())
			assert.Equal(t, tt.wantStatus, lookupErr.StatusCode())
		})
	}
}

func TestHTTPLookup_Search_MalformedSuccessBody(t *testing.T) {
	server, _ := newSearchServer(t, http.StatusOK, `{"details": "not-a-list"}`)

	_, err := NewHTTPLookup(server.URL, time.Second, discardLogger).Search(context.Background(), "2000", "1")

	var lookupErr *domainerrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, http.StatusOK, lookupErr.StatusCode())
}

func TestHTTPLookup_Search_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewHTTPLookup(url, time.Second, discardLogger).Search(context.Background(), "2000", "1")

	var lookupErr *domainerrors.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, 0, lookupErr.StatusCode())
	assert.NotEmpty(t, lookupErr.Message())
	assert.NotNil(t, lookupErr.Unwrap())
}
