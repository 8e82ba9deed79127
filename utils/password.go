package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword is the unsalted MD5 hex digest employee accounts are stored with.
func HashPassword(plain string) string {
	sum := md5.Sum([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// CheckPassword accepts both the MD5 hex form and bcrypt hashes.
func CheckPassword(stored, plain string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return strings.EqualFold(stored, HashPassword(plain))
}
