package passgen

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// entropyBytes is the number of random bytes drawn per password.
// 16 bytes encode to 22 base64 characters before stripping.
const entropyBytes = 16

// Password generates a random password from a crypto/rand source.
//
// The raw bytes are base64-encoded and the characters '/', '+' and '='
// are stripped so the result can be interpolated into shell and SQL
// contexts without quoting. Returns an error if the system random
// source is unavailable; there is no weaker fallback.
func Password() (string, error) {
	buf := make([]byte, entropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf)
	cleaned := strings.NewReplacer("/", "", "+", "", "=", "").Replace(encoded)
	if cleaned == "" {
		return "", fmt.Errorf("generated password is empty after stripping unsafe characters")
	}

	return cleaned, nil
}
