package auth

import (
	"strings"
	"testing"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "chef", "kitchen")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("user id = %d, want 7", claims.UserID)
	}
	if claims.Username != "chef" {
		t.Errorf("username = %q, want chef", claims.Username)
	}
	if claims.Role != "kitchen" {
		t.Errorf("role = %q, want kitchen", claims.Role)
	}
	if claims.Issuer != "kitchen-service" {
		t.Errorf("issuer = %q, want kitchen-service", claims.Issuer)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected error for tampered signature")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword("correct horse battery staple", hash) {
		t.Error("CheckPassword() with right password should succeed")
	}
	if CheckPassword("wrong", hash) {
		t.Error("CheckPassword() with wrong password should fail")
	}
}
