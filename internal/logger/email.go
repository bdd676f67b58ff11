package logger

import (
	"strings"
	"sync/atomic"
)

// emailVisibleChars is zero until configured, which hides local parts entirely.
var emailVisibleChars atomic.Int32

// SetEmailVisibleChars sets how many leading characters of an email's local
// part stay readable in log output. Negative values are treated as zero.
func SetEmailVisibleChars(n int) {
	if n < 0 {
		n = 0
	}
	emailVisibleChars.Store(int32(n))
}

// MaskEmail obfuscates the local part of email for logging, keeping the first
// characters configured with [SetEmailVisibleChars] and the domain intact:
//
//	MaskEmail("alice@example.com") == "al***@example.com"
//
// Values without an "@" are masked entirely.
func MaskEmail(email string) string {
	local, domain, found := strings.Cut(email, "@")
	if !found {
		return strings.Repeat("*", len(email))
	}

	visible := int(emailVisibleChars.Load())
	if visible > len(local) {
		visible = len(local)
	}

	return local[:visible] + strings.Repeat("*", len(local)-visible) + "@" + domain
}
