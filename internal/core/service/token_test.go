package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	id, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected employee id 42, got %d", id)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	// Build a token whose expiry has already passed, signed with the same
	// secret the issuer validates against.
	claims := jwt.MapClaims{
		ClaimEmployeeID: 42,
		"iat":           time.Now().Add(-2 * time.Hour).Unix(),
		"exp":           time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := issuer.Parse(expired); !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	other := NewTokenIssuer("different", time.Hour)

	token, err := other.Issue(42)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := issuer.Parse(token); err == nil {
		t.Fatalf("expected signature validation to fail")
	}
}

func TestTokenIssuer_WrongAlgorithm(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		ClaimEmployeeID: 42,
		"exp":           time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := issuer.Parse(token); err == nil {
		t.Fatalf("expected none-algorithm token to be rejected")
	}
}

func TestTokenIssuer_MissingClaim(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := issuer.Parse(anonymous); err == nil {
		t.Fatalf("expected token without emp_id claim to be rejected")
	}
}

func TestNewTokenIssuer_TTLDefault(t *testing.T) {
	issuer := NewTokenIssuer("secret", 0)
	if issuer.ttl != 24*time.Hour {
		t.Fatalf("expected 24h default ttl, got %v", issuer.ttl)
	}
}
