package session

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"time"
)

// IDLength is the length of a session id: a hex encoded SHA-1 digest.
const IDLength = sha1.Size * 2

// GenerateID derives a session id from the client address, its User-Agent and
// the current time.
func GenerateID(remoteIP, userAgent string, now time.Time) string {
	seed := strings.Join([]string{remoteIP, userAgent, now.Format(time.RFC3339Nano)}, ":")
	sum := sha1.Sum([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// ValidID reports whether id has the shape produced by GenerateID.
func ValidID(id string) bool {
	if len(id) != IDLength {
		return false
	}
	for i := range len(id) {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
