package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimEmployeeID is the identity claim carried by every issued token.
const ClaimEmployeeID = "emp_id"

// TokenIssuer builds and parses signed, time-bound HS256 tokens. A token is
// self-contained: holders can be verified as carrying a genuine, unexpired
// grant without any server-side lookup.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer returns an issuer signing with secret. A non-positive ttl
// defaults to 24 hours.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token carrying the employee id and an expiry derived
// from the configured ttl.
func (t *TokenIssuer) Issue(employeeID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		ClaimEmployeeID: employeeID,
		"iat":           now.Unix(),
		"exp":           now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse validates the signature, algorithm, and expiry of token and returns
// the embedded employee id.
func (t *TokenIssuer) Parse(token string) (int64, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !parsed.Valid {
		return 0, jwt.ErrTokenUnverifiable
	}

	// MapClaims decodes JSON numbers as float64.
	id, ok := claims[ClaimEmployeeID].(float64)
	if !ok {
		return 0, fmt.Errorf("token missing %s claim", ClaimEmployeeID)
	}
	return int64(id), nil
}
