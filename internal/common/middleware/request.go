package middleware

import (
	"net/http"
	"strings"
)

// UnknownClientAddress is reported when no proxy header names the client.
const UnknownClientAddress = "unknown"

// MaxClientAddressLength matches entries.ip_address. Longer header values are
// not addresses and are ignored.
const MaxClientAddressLength = 64

// ClientAddress returns the client address as reported by the reverse proxy:
// the first X-Forwarded-For element, else X-Real-IP, else "unknown".
func ClientAddress(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); usableAddress(first) {
			return first
		}
	}
	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); usableAddress(realIP) {
		return realIP
	}
	return UnknownClientAddress
}

func usableAddress(addr string) bool {
	return addr != "" && len(addr) <= MaxClientAddressLength
}
