package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateTransactionID returns the externally visible id handed to the payment gateway.
func GenerateTransactionID() string {
	return uuid.New().String()
}

// NormalizeSlotID trims and upper-cases a slot identifier so "a1" and "A1" address the same slot.
func NormalizeSlotID(slotID string) string {
	return strings.ToUpper(strings.TrimSpace(slotID))
}
