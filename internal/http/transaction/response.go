package transaction

import (
	"github.com/foldedhq/folded/internal/banking"
)

// transactionResponse mirrors the shape the mobile client stores locally:
// dates as epoch milliseconds, merchant fields as empty strings when absent,
// location fields as nulls.
type transactionResponse struct {
	TransactionID string           `json:"transactionId"`
	Amount        float64          `json:"amount"`
	Date          int64            `json:"date"`
	Currency      *string          `json:"currency"`
	Name          string           `json:"name"`
	Category      banking.Category `json:"category"`
	Merchant      banking.Merchant `json:"merchant"`
	Location      banking.Location `json:"location"`
}

func toResponse(tx *banking.Transaction) transactionResponse {
	return transactionResponse{
		TransactionID: tx.ID,
		Amount:        tx.Amount,
		Date:          tx.Date.UnixMilli(),
		Currency:      tx.Currency,
		Name:          tx.Name,
		Category:      tx.Category,
		Merchant:      tx.Merchant,
		Location:      tx.Location,
	}
}

func toResponseList(txs []*banking.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
