package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/storefront/internal/config"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher(hasherParams{Config: &config.Config{}})
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}

	hasher = newPasswordHasher(hasherParams{Config: &config.Config{BcryptCost: bcrypt.MinCost}})
	if hasher.(*BcryptHasher).cost != bcrypt.MinCost {
		t.Fatalf("configured cost lost: %d", hasher.(*BcryptHasher).cost)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "top-secret"}})
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if string(hmacStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(hmacStrategy.secret))
	}
	if hmacStrategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}

	strategy = newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "s", TokenTTL: time.Hour}})
	if strategy.(*HMACStrategy).ttl != time.Hour {
		t.Fatalf("configured ttl lost: %s", strategy.(*HMACStrategy).ttl)
	}
}
