package test

import (
	"errors"

	pkgAuth "github.com/polkiloo/storefront/internal/pkg/auth"
)

var errPasswordMismatch = errors.New("password mismatch")

// StrategyStub issues a fixed token and parses any token into fixed claims.
type StrategyStub struct {
	Token    string
	Claims   pkgAuth.Claims
	IssueErr error
	ParseErr error
}

func (s *StrategyStub) IssueToken(claims pkgAuth.Claims) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	if s.Token != "" {
		return s.Token, nil
	}
	return "stub-token", nil
}

func (s *StrategyStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseErr != nil {
		return pkgAuth.Claims{}, s.ParseErr
	}
	return s.Claims, nil
}

func (s *StrategyStub) Name() string { return "stub" }

// HasherStub hashes passwords by prefixing them, keeping tests fast.
type HasherStub struct {
	HashErr error
}

func (h *HasherStub) Hash(password string) (string, error) {
	if h.HashErr != nil {
		return "", h.HashErr
	}
	return "hashed:" + password, nil
}

func (h *HasherStub) Compare(hash string, password string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return errPasswordMismatch
}
