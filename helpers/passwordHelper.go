package helpers

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// IsLegacyDigest reports whether a stored credential predates hashing.
// Early data files carried plaintext passwords; those rows get upgraded
// to bcrypt on the next successful login.
func IsLegacyDigest(digest string) bool {
	return !strings.HasPrefix(digest, "$2")
}

func VerifyPassword(digest string, password string) bool {
	if IsLegacyDigest(digest) {
		return digest == password
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
