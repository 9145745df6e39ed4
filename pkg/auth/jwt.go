package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "events-site"
	audience = "events-site-client"
)

// Verification outcomes. Expired and malformed tokens call for
// different client remediation, so they stay separate errors.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type EventClaims struct {
	EventID string `json:"event_id"`
	jwt.RegisteredClaims
}

// NewEventToken mints a signed bearer token bound to one event.
func NewEventToken(eventID, secret string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := EventClaims{
		EventID: eventID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   eventID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    issuer,
			Audience:  []string{audience},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseEventToken validates signature and expiry and recovers the
// event identity. Returns ErrTokenExpired for well-formed but stale
// tokens and ErrTokenInvalid for everything else.
func ParseEventToken(tokenString, secret string) (*EventClaims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &EventClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := tok.Claims.(*EventClaims)
	if !ok || !tok.Valid || claims.EventID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
