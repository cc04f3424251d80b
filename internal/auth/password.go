// Package auth holds the two cryptographic leaves of the system: the bcrypt
// password hasher and the JWT token codec. No other package touches bcrypt or
// signing keys directly.
package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 12

// HashPassword produces a salted bcrypt digest. Two calls on the same input
// yield different strings; both verify.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. bcrypt's
// comparison is constant-time; a malformed hash simply yields false.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
