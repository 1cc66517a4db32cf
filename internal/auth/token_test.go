package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 5)

	token, exp, err := tm.GenerateToken("alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatal("expiry must be in the future")
	}

	claims, err := tm.ParseToken(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email claim %q", claims.Email)
	}
	if claims.ID == "" {
		t.Fatal("expected a token ID")
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 5).GenerateToken("alice@example.com")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := NewTokenManager("secret-b", 5).ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("pw12345", 4)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "pw12345" {
		t.Fatal("hash must not equal the plaintext")
	}
	if err := ComparePassword(hash, "pw12345"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := ComparePassword(hash, "other"); err == nil {
		t.Fatal("wrong password accepted")
	}
}
