package auth

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestEventTokenRoundTrip(t *testing.T) {
	token, expiresAt, err := NewEventToken("midnight-gala", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewEventToken: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute {
		t.Errorf("expiresAt too soon: %v remaining", remaining)
	}

	claims, err := ParseEventToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseEventToken: %v", err)
	}
	if claims.EventID != "midnight-gala" {
		t.Errorf("EventID = %q, want %q", claims.EventID, "midnight-gala")
	}
}

func TestEventTokenExpired(t *testing.T) {
	token, _, err := NewEventToken("midnight-gala", testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("NewEventToken: %v", err)
	}

	_, err = ParseEventToken(token, testSecret)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestEventTokenWrongSecret(t *testing.T) {
	token, _, err := NewEventToken("midnight-gala", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewEventToken: %v", err)
	}

	_, err = ParseEventToken(token, "other-secret")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestEventTokenGarbage(t *testing.T) {
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := ParseEventToken(tok, testSecret); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("ParseEventToken(%q) err = %v, want ErrTokenInvalid", tok, err)
		}
	}
}
