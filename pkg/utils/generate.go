package utils

import (
	"strings"

	"github.com/google/uuid"
)

const BookingNumberPrefix = "BK-"

// GenerateBookingNumber returns BK- followed by the first 8 hex characters of
// a random UUID. Collisions are possible; the unique index reports them.
func GenerateBookingNumber() string {
	return BookingNumberPrefix + strings.ToUpper(uuid.New().String()[:8])
}
