package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders are consulted in order before falling back to RemoteAddr.
// Only enable them when the service runs behind a proxy that sets them.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts the client address from a request.
type Resolver struct {
	headers []string
}

// New returns a Resolver that trusts the given headers, in priority order.
// With no headers only RemoteAddr is used.
func New(headers ...string) *Resolver {
	return &Resolver{headers: headers}
}

var defaultResolver = New(DefaultHeaders...)

// GetIP resolves the client IP with DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

// IP returns the first valid address found in the trusted headers, or the
// host part of RemoteAddr. X-Forwarded-For style lists yield their first
// valid entry. The result is empty when nothing parses as an IP.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
