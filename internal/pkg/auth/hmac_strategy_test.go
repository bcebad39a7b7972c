package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
)

func TestHMACStrategyRoundTrip(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})
	claims := Claims{UserID: uuid.New(), Role: model.RoleAdmin}

	token, err := strategy.IssueToken(claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UserID != claims.UserID || parsed.Role != claims.Role {
		t.Fatalf("claims mismatch: %+v vs %+v", parsed, claims)
	}
}

func TestHMACStrategyRejectsTampering(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})
	token, err := strategy.IssueToken(Claims{UserID: uuid.New(), Role: model.RoleUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	parts := strings.Split(string(raw), ":")
	parts[1] = string(model.RoleAdmin)
	forged := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, ":")))

	if _, err := strategy.ParseToken(forged); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHMACStrategyRejectsWrongSecret(t *testing.T) {
	issuer := NewHMACStrategy("secret-a", Options{TTL: time.Hour})
	verifier := NewHMACStrategy("secret-b", Options{TTL: time.Hour})

	token, err := issuer.IssueToken(Claims{UserID: uuid.New(), Role: model.RoleUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := verifier.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHMACStrategyRejectsExpired(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: -time.Minute})
	// negative ttl falls back to the default, so force expiry manually
	strategy.ttl = -time.Minute

	token, err := strategy.IssueToken(Claims{UserID: uuid.New(), Role: model.RoleUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestHMACStrategyRejectsMalformed(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	cases := []string{
		"",
		"not-base64!!",
		base64.StdEncoding.EncodeToString([]byte("too:few:parts")),
		base64.StdEncoding.EncodeToString([]byte("not-a-uuid:USER:123:sig")),
		base64.StdEncoding.EncodeToString([]byte(uuid.NewString() + ":WIZARD:123:sig")),
	}
	for _, token := range cases {
		if _, err := strategy.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected invalid token for %q, got %v", token, err)
		}
	}
}

func TestHMACStrategyName(t *testing.T) {
	if got := NewHMACStrategy("secret", Options{}).Name(); got != "hmac" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestHMACStrategyDefaultTTL(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if strategy.ttl != 24*time.Hour {
		t.Fatalf("expected default ttl, got %v", strategy.ttl)
	}
}
