// Package hash fingerprints token sets so exports can be compared cheaply.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// FingerprintLength is the number of hex characters in a fingerprint.
const FingerprintLength = 16

// Fingerprint returns a truncated SHA256 over lines, each terminated by a
// newline. Order matters.
func Fingerprint(lines ...string) string {
	h := sha256.New()
	for _, l := range lines {
		_, _ = h.Write([]byte(strings.TrimRight(l, "\n")))
		_, _ = h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))[:FingerprintLength]
}
