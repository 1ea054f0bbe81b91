// Package app holds the application services that apply the per-record write
// policies on top of the repositories.
package app

import (
	"context"
	"strconv"
)

// Notifier delivers a human-readable event description to live listeners.
// Broadcast returns once delivery has been dispatched; it never fails the
// caller.
type Notifier interface {
	Broadcast(ctx context.Context, msg string)
}

type nopNotifier struct{}

func (nopNotifier) Broadcast(context.Context, string) {}

// formatVolume renders an amount in its shortest decimal form, so 120 is
// "120" and 120.5 is "120.5".
func formatVolume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func feedingAddedMessage(date string, amount float64) string {
	return "New entry: " + date + " - " + formatVolume(amount) + "ml"
}

func feedingUpdatedMessage(id int64, amount float64) string {
	return "Updated entry " + strconv.FormatInt(id, 10) + ": " + formatVolume(amount) + "ml"
}

func feedingDeletedMessage(id int64) string {
	return "Deleted entry " + strconv.FormatInt(id, 10)
}
