package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !CheckPassword(hash, "secret123") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatal("expected mismatched password to fail")
	}
}
