package validators

import (
	"net"
	"strings"
)

// NormalizeEmail folds an address to the canonical form stored in the
// users table, so lookups and the unique index never disagree on case or
// stray whitespace.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid reports whether the address's domain can receive
// mail: MX records first, plain A/AAAA resolution as a fallback.
// Malformed addresses (no local part, no domain) fail without a lookup.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	host := email[at+1:]

	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(host)
	return err == nil && len(ips) > 0
}
