package clientip

import "context"

type ipKey struct{}

// SetIPToContext returns a copy of ctx carrying ip.
func SetIPToContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ipKey{}, ip)
}

// GetIPFromContext returns the address stored by Middleware, or "".
func GetIPFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(ipKey{}).(string)
	return ip
}
