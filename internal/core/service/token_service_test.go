package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tutorhub/tutoring-system/internal/core/domain"
)

func TestTokenService_IssueVerify(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(42, 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != 42 {
		t.Fatalf("expected subject 42, got %d", subject)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	// A non-positive ttl falls back to the default, so force expiry by
	// issuing from a service whose default lies in the past.
	expired := &TokenService{secret: []byte("secret"), defaultTTL: -time.Minute}
	token, err := expired.Issue(42, 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now()

	// Sign claims directly so verification lands one second on either side
	// of the expiry instant.
	cases := []struct {
		name   string
		exp    time.Time
		wantOK bool
	}{
		{"one second before expiry", now.Add(time.Second), true},
		{"one second after expiry", now.Add(-time.Second), false},
	}
	for _, tc := range cases {
		claims := jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(tc.exp),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		if err != nil {
			t.Fatalf("%s: signing failed: %v", tc.name, err)
		}

		subject, err := svc.Verify(token)
		if tc.wantOK {
			if err != nil {
				t.Errorf("%s: expected success, got %v", tc.name, err)
			} else if subject != 7 {
				t.Errorf("%s: expected subject 7, got %d", tc.name, subject)
			}
			continue
		}
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("%s: expected ErrUnauthorized, got %v", tc.name, err)
		}
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService("key-one", time.Hour)
	verifier := NewTokenService("key-two", time.Hour)

	token, err := issuer.Issue(42, 0)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for foreign key, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Verify(%q): expected ErrUnauthorized, got %v", token, err)
		}
	}
}
