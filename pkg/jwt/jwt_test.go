package jwt

import (
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, "device-abc", "device", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, "device", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "device-abc" {
		t.Errorf("user id = %s, want device-abc", claims.UserID)
	}
	if claims.Type != "device" {
		t.Errorf("type = %s, want device", claims.Type)
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), "u1", "device", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken([]byte("secret-b"), "device", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseWrongType(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, "u1", "device", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(secret, "admin", token); err == nil {
		t.Error("expected error for mismatched token type")
	}
}

func TestParseExpired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, "u1", "device", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(secret, "device", token); err == nil {
		t.Error("expected error for expired token")
	}
}
