package view

import (
	"context"
	"fmt"
	"time"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats a provider amount into a human-readable string.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatStreak renders the whole days elapsed since the streak start.
func FormatStreak(start time.Time) string {
	days := int(time.Since(start).Hours() / 24)
	if days == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", days)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
