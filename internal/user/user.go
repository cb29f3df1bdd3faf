package user

import (
	"time"

	"github.com/google/uuid"
)

// User is one account in the recovery program.
type User struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	PhotoURL    string
	// StreakStart marks the last recorded relapse. Elapsed recovery time is
	// always computed as now minus StreakStart.
	StreakStart time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// BankLink is a user's connection to the financial data provider.
// There is at most one per user.
type BankLink struct {
	UserID uuid.UUID
	// AccessToken is the provider credential. It is never exposed to clients.
	AccessToken string
	ItemID      string
	// Cursor is the provider-issued change-feed position. Nil means the next
	// sync starts from the beginning of history.
	Cursor    *string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// DeviceToken is a push-delivery token registered by the mobile client.
type DeviceToken struct {
	Token     string
	CreatedAt time.Time
}
