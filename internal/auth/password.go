package auth

import "golang.org/x/crypto/bcrypt"

// HashCost is the bcrypt work factor for stored password hashes.
const HashCost = 10

func HashPassword(p string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(p), HashCost)
	return string(b), err
}

func VerifyPassword(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
