// Package clientip resolves the client address of an HTTP request.
//
// A Resolver trusts a configurable list of proxy headers (CF-Connecting-IP,
// X-Forwarded-For and X-Real-IP by default) and falls back to the host part of
// Request.RemoteAddr. Values are validated with net.ParseIP and returned in
// normalized form, so a forged non-IP header value is ignored.
//
//	ip := clientip.GetIP(r)
//
//	direct := clientip.New() // RemoteAddr only
//	ip = direct.IP(r)
//
// Middleware stores the resolved address in the request context where
// GetIPFromContext can read it back.
package clientip
