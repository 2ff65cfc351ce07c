package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm, err := NewTokenManager("secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	token, err := tm.Generate("user-123")
	if err != nil {
		t.Fatal(err)
	}
	userID, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if userID != "user-123" {
		t.Errorf("userID = %q, want user-123", userID)
	}
}

func TestExpiredToken(t *testing.T) {
	tm, _ := NewTokenManager("secret", -time.Minute)
	token, err := tm.Generate("user-123")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tm.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestWrongSecret(t *testing.T) {
	issuer, _ := NewTokenManager("secret-a", time.Hour)
	verifier, _ := NewTokenManager("secret-b", time.Hour)
	token, err := issuer.Generate("user-123")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestMalformedToken(t *testing.T) {
	tm, _ := NewTokenManager("secret", time.Hour)
	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := tm.Verify(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) err = %v, want ErrInvalidToken", tok, err)
		}
	}
}

func TestEmptySecretRejected(t *testing.T) {
	if _, err := NewTokenManager("", time.Hour); err == nil {
		t.Error("want error for empty secret")
	}
}
