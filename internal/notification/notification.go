package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/foldedhq/folded/internal/banking"
)

// Type discriminates notification payloads.
type Type string

const TypeRelapse Type = "relapse"

// Notification is one event surfaced to the user. Records are created by the
// classifier (and other triggers) and read by the client; they are never
// programmatically deleted.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      Type
	CreatedAt time.Time
	ViewedAt  *time.Time

	// Relapse is set when Type is TypeRelapse.
	Relapse *RelapsePayload
}

// RelapsePayload aggregates the gambling transactions that triggered the
// notification.
type RelapsePayload struct {
	Value        float64               `json:"value"`
	Transactions []banking.Transaction `json:"transactions"`
}
