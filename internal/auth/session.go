// Package auth issues and verifies the per-event session tokens carried in
// the event_auth_<id> cookie. A valid token proves a prior successful
// password validation for exactly that event.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const cookiePrefix = "event_auth_"

type Sessions struct {
	secret []byte
	ttl    time.Duration
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// CookieName is the per-event cookie carrying the session token.
func CookieName(eventID string) string {
	return cookiePrefix + eventID
}

// TTLSeconds is the cookie max-age matching the token lifetime.
func (s *Sessions) TTLSeconds() int {
	return int(s.ttl.Seconds())
}

// Issue signs a session token for the event.
func (s *Sessions) Issue(eventID string) (string, error) {
	claims := jwt.MapClaims{
		"event_id": eventID,
		"exp":      time.Now().Add(s.ttl).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return signed, nil
}

// Verify reports whether the token is a live session for the given event.
func (s *Sessions) Verify(tokenString, eventID string) bool {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	claimed, _ := claims["event_id"].(string)

	return claimed == eventID
}
