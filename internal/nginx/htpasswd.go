package nginx

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HtpasswdEntry returns a single htpasswd line for nginx basic auth,
// hashing the password with bcrypt.
func HtpasswdEntry(user, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash panel password: %w", err)
	}
	return fmt.Sprintf("%s:%s\n", user, hash), nil
}
