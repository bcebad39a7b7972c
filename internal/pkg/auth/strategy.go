package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// Claims carry the identity encoded into an auth token.
type Claims struct {
	UserID uuid.UUID
	Role   model.Role
}

// Strategy issues and verifies auth tokens.
type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

// Options tune token issuance.
type Options struct {
	TTL time.Duration
}
