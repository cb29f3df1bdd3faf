package banking_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldedhq/folded/internal/banking"
	"github.com/foldedhq/folded/internal/plaid"
)

func TestNormalize(t *testing.T) {
	currency := "USD"
	merchant := "Golden Palace"
	website := "goldenpalace.example"
	city := "Las Vegas"

	raw := json.RawMessage(`{"transaction_id":"txn_1"}`)

	got, err := banking.Normalize(plaid.Transaction{
		TransactionID:   "txn_1",
		Amount:          50,
		Date:            "2024-01-15",
		ISOCurrencyCode: &currency,
		Name:            "GOLDEN PALACE CASINO",
		MerchantName:    &merchant,
		Website:         &website,
		PersonalFinanceCategory: &plaid.PersonalFinanceCategory{
			Primary:         "ENTERTAINMENT",
			Detailed:        banking.DetailedCategoryGambling,
			ConfidenceLevel: plaid.ConfidenceVeryHigh,
		},
		Location: &plaid.Location{City: &city},
		Raw:      raw,
	})
	require.NoError(t, err)

	assert.Equal(t, "txn_1", got.ID)
	assert.Equal(t, 50.0, got.Amount)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, "Golden Palace", got.Merchant.Name)
	assert.Equal(t, "goldenpalace.example", got.Merchant.Website)

	require.NotNil(t, got.Category.Detailed)
	assert.Equal(t, banking.DetailedCategoryGambling, *got.Category.Detailed)
	require.NotNil(t, got.Category.Confidence)
	assert.Equal(t, banking.ConfidenceVeryHigh, *got.Category.Confidence)

	require.NotNil(t, got.Location.City)
	assert.Equal(t, "Las Vegas", *got.Location.City)
	assert.Nil(t, got.Location.Address)

	assert.Equal(t, banking.ProviderPlaid, got.Raw.Provider)
	assert.Equal(t, raw, got.Raw.Data)

	assert.True(t, got.IsGambling())
}

// Absent merchant fields become empty strings while absent location fields
// stay null.
func TestNormalize_SparseRecord(t *testing.T) {
	got, err := banking.Normalize(plaid.Transaction{
		TransactionID: "txn_2",
		Amount:        12.5,
		Date:          "2024-02-01",
		Name:          "COFFEE SHOP",
	})
	require.NoError(t, err)

	assert.Equal(t, "", got.Merchant.Name)
	assert.Equal(t, "", got.Merchant.Website)

	assert.Nil(t, got.Location.City)
	assert.Nil(t, got.Location.Lat)

	assert.Nil(t, got.Category.Primary)
	assert.Nil(t, got.Category.Detailed)
	assert.Nil(t, got.Currency)

	assert.False(t, got.IsGambling())
}

func TestNormalize_BadDate(t *testing.T) {
	_, err := banking.Normalize(plaid.Transaction{
		TransactionID: "txn_3",
		Date:          "01/15/2024",
	})
	assert.Error(t, err)
}

func TestTransaction_IsGambling_PrimaryEntertainmentAlone(t *testing.T) {
	detailed := "ENTERTAINMENT_MOVIES"

	tx := banking.Transaction{
		Category: banking.Category{
			Primary:  new("ENTERTAINMENT"),
			Detailed: &detailed,
		},
	}

	assert.False(t, tx.IsGambling())
}
