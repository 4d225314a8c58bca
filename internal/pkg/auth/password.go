package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the fixed work factor for stored password digests.
const BcryptCost = 10

// HashPassword returns a salted bcrypt digest of password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword reports whether password matches the stored digest.
// A mismatch (or a malformed digest) is simply false.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
