package banking

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/foldedhq/folded/internal/plaid"
)

// Confidence is the ordinal certainty of a transaction's categorization.
type Confidence string

const (
	ConfidenceLow      Confidence = "LOW"
	ConfidenceMedium   Confidence = "MEDIUM"
	ConfidenceHigh     Confidence = "HIGH"
	ConfidenceVeryHigh Confidence = "VERY_HIGH"
)

// DetailedCategoryGambling is the provider's detailed category label for
// casino and gambling spend. Detection keys on the detailed level because the
// primary level (ENTERTAINMENT) would flag ordinary entertainment spending.
const DetailedCategoryGambling = "ENTERTAINMENT_CASINOS_AND_GAMBLING"

// ProviderPlaid tags raw payloads with their source.
const ProviderPlaid = "plaid"

type Category struct {
	Confidence *Confidence `json:"confidence"`
	Primary    *string     `json:"primary"`
	Detailed   *string     `json:"detailed"`
}

// Merchant fields default to the empty string, not null, when the provider
// omits them. Location fields stay null. The asymmetry matches the stored
// data written by earlier versions and must be kept for compatibility.
type Merchant struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

type Location struct {
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Region      *string  `json:"region"`
	PostalCode  *string  `json:"postalCode"`
	Country     *string  `json:"country"`
	StoreNumber *string  `json:"storeNumber"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

// RawRecord retains the untouched provider record for audit and debugging.
type RawRecord struct {
	Provider string          `json:"provider"`
	Data     json.RawMessage `json:"data"`
}

// Transaction is the normalized shape of one financial movement observed in a
// linked account. ID is the provider-assigned transaction id and is the
// primary key within a user's transaction collection.
type Transaction struct {
	ID       string    `json:"transactionId"`
	Amount   float64   `json:"amount"`
	Date     time.Time `json:"date"`
	Currency *string   `json:"currency"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Merchant Merchant  `json:"merchant"`
	Location Location  `json:"location"`
	Raw      RawRecord `json:"raw"`
}

// Normalize converts a provider wire record into the internal shape. The date
// string is a calendar day with no time-of-day component.
func Normalize(txn plaid.Transaction) (Transaction, error) {
	date, err := time.Parse(time.DateOnly, txn.Date)
	if err != nil {
		return Transaction{}, fmt.Errorf("parsing date of transaction %s: %w", txn.TransactionID, err)
	}

	out := Transaction{
		ID:       txn.TransactionID,
		Amount:   txn.Amount,
		Date:     date,
		Currency: txn.ISOCurrencyCode,
		Name:     txn.Name,
		Raw: RawRecord{
			Provider: ProviderPlaid,
			Data:     txn.Raw,
		},
	}

	if pfc := txn.PersonalFinanceCategory; pfc != nil {
		if pfc.ConfidenceLevel != "" {
			c := Confidence(pfc.ConfidenceLevel)
			out.Category.Confidence = &c
		}

		if pfc.Primary != "" {
			out.Category.Primary = &pfc.Primary
		}

		if pfc.Detailed != "" {
			out.Category.Detailed = &pfc.Detailed
		}
	}

	if txn.MerchantName != nil {
		out.Merchant.Name = *txn.MerchantName
	}

	if txn.Website != nil {
		out.Merchant.Website = *txn.Website
	}

	if loc := txn.Location; loc != nil {
		out.Location = Location{
			Address:     loc.Address,
			City:        loc.City,
			Region:      loc.Region,
			PostalCode:  loc.PostalCode,
			Country:     loc.Country,
			StoreNumber: loc.StoreNumber,
			Lat:         loc.Lat,
			Lon:         loc.Lon,
		}
	}

	return out, nil
}

// IsGambling reports whether the transaction carries the gambling detailed
// category.
func (t Transaction) IsGambling() bool {
	return t.Category.Detailed != nil && *t.Category.Detailed == DetailedCategoryGambling
}
