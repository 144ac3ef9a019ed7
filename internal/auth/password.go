// Package auth holds the password hashing helpers.
//
// Nothing in the signup/login flow calls these: the remote API stores
// plaintext passwords and login compares plaintext, and the client preserves
// that behavior rather than hashing on one side only. The helpers stay here
// for the day the backend grows a hashed credential column.
package auth

import "golang.org/x/crypto/bcrypt"

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
