package plaid_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldedhq/folded/internal/plaid"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *plaid.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return plaid.NewClient(plaid.Config{
		ClientID:      "client-id",
		Secret:        "secret",
		BaseURL:       srv.URL,
		ClientName:    "Folded",
		WebhookURL:    "https://example.com/webhooks/banking",
		DaysRequested: 730,
	})
}

func TestCreateLinkToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/link/token/create", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "client-id", body["client_id"])
		assert.Equal(t, []any{"transactions"}, body["products"])
		assert.Equal(t, map[string]any{"client_user_id": "user-1"}, body["user"])
		assert.Equal(t, "https://example.com/webhooks/banking", body["webhook"])

		json.NewEncoder(w).Encode(map[string]string{
			"link_token": "link-sandbox-123",
			"expiration": "2024-01-01T00:00:00Z",
			"request_id": "req-1",
		})
	})

	token, err := client.CreateLinkToken(t.Context(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "link-sandbox-123", token.LinkToken)
}

func TestExchangePublicToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/item/public_token/exchange", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "public-token-abc", body["public_token"])

		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "access-sandbox-xyz",
			"item_id":      "item-1",
			"request_id":   "req-2",
		})
	})

	item, err := client.ExchangePublicToken(t.Context(), "public-token-abc")
	require.NoError(t, err)
	assert.Equal(t, "access-sandbox-xyz", item.AccessToken)
	assert.Equal(t, "item-1", item.ItemID)
}

func TestSyncTransactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/sync", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "access-1", body["access_token"])
		assert.Nil(t, body["cursor"])
		assert.Equal(t, map[string]any{"include_personal_finance_category": true}, body["options"])

		w.Write([]byte(`{
			"added": [{
				"transaction_id": "txn_1",
				"amount": 50,
				"date": "2024-01-01",
				"iso_currency_code": "USD",
				"name": "Casino Royale",
				"merchant_name": "Casino Royale",
				"personal_finance_category": {
					"primary": "ENTERTAINMENT",
					"detailed": "ENTERTAINMENT_CASINOS_AND_GAMBLING",
					"confidence_level": "VERY_HIGH"
				}
			}],
			"modified": [],
			"removed": [{"transaction_id": "txn_0"}],
			"next_cursor": "cursor_A",
			"has_more": false
		}`))
	})

	page, err := client.SyncTransactions(t.Context(), "access-1", nil)
	require.NoError(t, err)
	require.Len(t, page.Added, 1)
	assert.Equal(t, "txn_1", page.Added[0].TransactionID)
	assert.Equal(t, 50.0, page.Added[0].Amount)
	require.NotNil(t, page.Added[0].PersonalFinanceCategory)
	assert.Equal(t, plaid.ConfidenceVeryHigh, page.Added[0].PersonalFinanceCategory.ConfidenceLevel)
	assert.Len(t, page.Removed, 1)
	assert.Equal(t, "cursor_A", page.NextCursor)
	assert.False(t, page.HasMore)

	// The raw wire record is preserved verbatim for audit storage.
	assert.Contains(t, string(page.Added[0].Raw), `"transaction_id"`)
}

func TestSyncTransactions_CursorForwarded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cursor_B", body["cursor"])

		w.Write([]byte(`{"added":[],"modified":[],"removed":[],"next_cursor":"cursor_C","has_more":false}`))
	})

	cursor := "cursor_B"

	page, err := client.SyncTransactions(t.Context(), "access-1", &cursor)
	require.NoError(t, err)
	assert.Equal(t, "cursor_C", page.NextCursor)
}

func TestSyncTransactions_ProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error_type":"INVALID_INPUT","error_code":"INVALID_ACCESS_TOKEN","error_message":"bad token"}`))
	})

	_, err := client.SyncTransactions(t.Context(), "bogus", nil)
	require.Error(t, err)

	var apiErr *plaid.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "INVALID_ACCESS_TOKEN", apiErr.ErrorCode)
}
