package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalNumber(t *testing.T) {
	assert.Equal(t, "KA01AB1234", CanonicalNumber("  ka01ab1234 "))
	assert.Equal(t, "", CanonicalNumber("   "))
}

func TestCompliance_ExpiresBy(t *testing.T) {
	cutoff := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	onCutoff := cutoff
	after := cutoff.Add(time.Second)

	assert.False(t, Compliance{}.ExpiresBy(cutoff))
	assert.True(t, Compliance{Permit: NumberedExpiry{Expiry: &onCutoff}}.ExpiresBy(cutoff))
	assert.False(t, Compliance{RCExpiry: &after, PUCExpiry: &after}.ExpiresBy(cutoff))
	assert.True(t, Compliance{RCExpiry: &after, Insurance: NumberedExpiry{Expiry: &onCutoff}}.ExpiresBy(cutoff))
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, status := range []string{"pending", "approved", "rejected", "completed"} {
		assert.True(t, IsValidBookingStatus(status), status)
	}
	for _, status := range []string{"", "Approved", "cancelled", "bogus"} {
		assert.False(t, IsValidBookingStatus(status), status)
	}
}

func TestNewTimelineEntry_StoresUTC(t *testing.T) {
	local := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	entry := NewTimelineEntry("Booking created", "Asha", local)

	assert.Equal(t, time.UTC, entry.Time.Location())
	assert.True(t, local.Equal(entry.Time))
}
