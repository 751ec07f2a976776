package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost is the bcrypt work factor. The stored hashes were produced at
// cost 10, so the constant stays pinned rather than tracking
// bcrypt.DefaultCost.
const bcryptCost = 10

// HashPassword produces a salted bcrypt digest of the plaintext password.
// bcrypt salts per call, so hashing the same input twice yields different
// strings; hashes must only ever be compared through CheckPassword.
func HashPassword(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. Malformed hash input yields false, never a panic.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
