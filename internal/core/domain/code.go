package domain

import (
	"time"

	"github.com/google/uuid"
)

// CodeLength is the number of decimal digits in a one-time code.
const CodeLength = 6

// OneTimeCode is the live code for one (transfer, role) pair.
// Digest holds a keyed hash of the code, never the code itself.
type OneTimeCode struct {
	TransferID uuid.UUID  `json:"transfer_id"`
	Role       Role       `json:"role"`
	Digest     string     `json:"digest"`
	CreatedAt  time.Time  `json:"created_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the code has passed its expiry at now.
func (c *OneTimeCode) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// IsNumericCode reports whether s is exactly CodeLength ASCII digits.
func IsNumericCode(s string) bool {
	if len(s) != CodeLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
