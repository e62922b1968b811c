package jwt

import (
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, 42, "user", "access", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.Role != "user" {
		t.Fatalf("expected role user, got %s", claims.Role)
	}
}

func TestParseToken_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 42, "user", "refresh", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for refresh token used as access")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 42, "user", "access", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken([]byte("other-secret"), "access", token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 42, "user", "access", -time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ParseToken(secret, "access", token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestShouldRotate(t *testing.T) {
	token, err := GenerateToken(secret, 42, "user", "access", 2*time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	claims, err := ParseToken(secret, "access", token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if !ShouldRotate(claims, 5*time.Minute) {
		t.Fatal("token expiring in 2m should rotate with 5m buffer")
	}
	if ShouldRotate(claims, time.Minute) {
		t.Fatal("token expiring in 2m should not rotate with 1m buffer")
	}
}
