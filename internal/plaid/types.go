package plaid

import "encoding/json"

// ConfidenceLevel is the provider's categorization confidence.
type ConfidenceLevel string

const (
	ConfidenceLow      ConfidenceLevel = "LOW"
	ConfidenceMedium   ConfidenceLevel = "MEDIUM"
	ConfidenceHigh     ConfidenceLevel = "HIGH"
	ConfidenceVeryHigh ConfidenceLevel = "VERY_HIGH"
)

// PersonalFinanceCategory is the two-tier categorization attached to a
// transaction when category enrichment is requested.
type PersonalFinanceCategory struct {
	Primary         string          `json:"primary"`
	Detailed        string          `json:"detailed"`
	ConfidenceLevel ConfidenceLevel `json:"confidence_level"`
}

type Location struct {
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Region      *string  `json:"region"`
	PostalCode  *string  `json:"postal_code"`
	Country     *string  `json:"country"`
	StoreNumber *string  `json:"store_number"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

// Transaction is the provider's wire representation of one transaction.
// Raw holds the untouched JSON it was decoded from.
type Transaction struct {
	TransactionID           string                   `json:"transaction_id"`
	Amount                  float64                  `json:"amount"`
	Date                    string                   `json:"date"`
	ISOCurrencyCode         *string                  `json:"iso_currency_code"`
	Name                    string                   `json:"name"`
	MerchantName            *string                  `json:"merchant_name"`
	Website                 *string                  `json:"website"`
	PersonalFinanceCategory *PersonalFinanceCategory `json:"personal_finance_category"`
	Location                *Location                `json:"location"`

	Raw json.RawMessage `json:"-"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	*t = Transaction(a)
	t.Raw = append(json.RawMessage(nil), data...)

	return nil
}

type RemovedTransaction struct {
	TransactionID string `json:"transaction_id"`
}

type linkTokenCreateRequest struct {
	ClientID       string           `json:"client_id"`
	Secret         string           `json:"secret"`
	ClientName     string           `json:"client_name"`
	User           linkTokenUser    `json:"user"`
	Products       []string         `json:"products"`
	Transactions   linkTransactions `json:"transactions"`
	CountryCodes   []string         `json:"country_codes"`
	Language       string           `json:"language"`
	AndroidPackage string           `json:"android_package_name,omitempty"`
	Webhook        string           `json:"webhook,omitempty"`
}

type linkTokenUser struct {
	ClientUserID string `json:"client_user_id"`
}

type linkTransactions struct {
	DaysRequested int `json:"days_requested"`
}

// LinkToken is returned to the mobile client so it can open the provider's
// linking flow.
type LinkToken struct {
	LinkToken  string `json:"link_token"`
	Expiration string `json:"expiration"`
	RequestID  string `json:"request_id"`
}

type exchangeRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	PublicToken string `json:"public_token"`
}

// Item is the result of exchanging a public token: the durable access
// credential plus the provider's identifier for the linked account.
type Item struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

type syncRequest struct {
	ClientID    string      `json:"client_id"`
	Secret      string      `json:"secret"`
	AccessToken string      `json:"access_token"`
	Cursor      *string     `json:"cursor,omitempty"`
	Options     syncOptions `json:"options"`
}

type syncOptions struct {
	IncludePersonalFinanceCategory bool `json:"include_personal_finance_category"`
}

// SyncPage is one page of the transactions change feed.
type SyncPage struct {
	Added      []Transaction        `json:"added"`
	Modified   []Transaction        `json:"modified"`
	Removed    []RemovedTransaction `json:"removed"`
	NextCursor string               `json:"next_cursor"`
	HasMore    bool                 `json:"has_more"`
}

// WebhookType discriminates provider webhook deliveries.
type WebhookType string

const WebhookTypeTransactions WebhookType = "TRANSACTIONS"

// WebhookPayload is the body the provider POSTs when item state changes.
type WebhookPayload struct {
	WebhookType              WebhookType `json:"webhook_type"`
	WebhookCode              string      `json:"webhook_code"`
	ItemID                   string      `json:"item_id"`
	InitialUpdateComplete    bool        `json:"initial_update_complete"`
	HistoricalUpdateComplete bool        `json:"historical_update_complete"`
	Environment              string      `json:"environment"`
}
