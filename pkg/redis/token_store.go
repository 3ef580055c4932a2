package redis

import (
	"context"
	"errors"
	"time"
)

const revokedTokenPrefix = "revoked_token:"

var (
	setTokenValue    = Set
	existsTokenValue = Exists
)

// TokenStore keeps a denylist of revoked access token ids.
type TokenStore struct{}

// NewTokenStore creates a token store backed by the package client.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Revoke marks jti as revoked for ttl. Tokens already expired need no entry.
func (s *TokenStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return errors.New("token id is required")
	}
	if ttl <= 0 {
		return nil
	}
	return setTokenValue(ctx, revokedTokenPrefix+jti, "1", ttl)
}

// IsRevoked reports whether jti was revoked and has not yet expired.
func (s *TokenStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	return existsTokenValue(ctx, revokedTokenPrefix+jti)
}
