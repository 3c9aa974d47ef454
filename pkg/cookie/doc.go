// Package cookie implements the secure cookie capability sessions rely on.
//
// A Manager is created from one or more secrets (each at least 32 characters).
// Every secret is expanded with HKDF-SHA256 into a signing key and an
// encryption key, so the same secret is never used for two purposes.
//
//   - Set, Get, Delete: plain cookies
//   - SetSigned, GetSigned: HMAC-SHA256 signed values (tamper evident)
//   - SetEncrypted, GetEncrypted: AES-256-GCM encrypted values
//
// The first secret is used for writing; all secrets are tried when reading,
// which allows rotating secrets without invalidating issued cookies.
// Signatures cover the cookie name, so a signed value cannot be moved to a
// cookie with a different name.
//
// # Usage
//
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = man.SetSigned(w, "sid", id, cookie.WithMaxAgeDays(30))
//	id, err := man.GetSigned(r, "sid")
//
// # Configuration
//
// Config can be filled from the environment (COOKIE_SECRETS is a comma
// separated list, newest first) and passed to NewFromConfig.
//
// # Errors
//
// ErrCookieNotFound, ErrInvalidFormat, ErrInvalidSignature and
// ErrDecryptionFailed are returned as sentinel values for errors.Is checks.
package cookie
