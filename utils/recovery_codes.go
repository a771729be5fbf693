package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const recoveryCodeCount = 8

// GenerateRecoveryCodes produces one-time 2FA bypass codes in the form
// XXXX-XXXX. Plain codes go to the user once; only hashes are stored.
func GenerateRecoveryCodes() ([]string, error) {
	codes := make([]string, recoveryCodeCount)
	for i := range codes {
		buf := make([]byte, 4)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		raw := strings.ToUpper(hex.EncodeToString(buf))
		codes[i] = fmt.Sprintf("%s-%s", raw[:4], raw[4:])
	}
	return codes, nil
}

// HashString returns the hex SHA-256 of s.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// HashRecoveryCodes hashes each code with its dashes stripped, matching
// how submitted codes are normalized before comparison.
func HashRecoveryCodes(codes []string) []string {
	hashed := make([]string, len(codes))
	for i, code := range codes {
		hashed[i] = HashString(strings.ToUpper(strings.ReplaceAll(code, "-", "")))
	}
	return hashed
}
