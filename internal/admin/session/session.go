// Package session holds the admin panel's authenticated state: the API
// token and the signed-in user.
package session

import (
	"context"
	"encoding/json"

	"interact-club.backend/internal/domain/entities"
)

// Persistence keys.
const (
	TokenKey = "adminToken"
	UserKey  = "adminUser"
)

// Authenticator is the part of the API client the session talks to.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*entities.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Reader exposes the session state without the ability to change it.
type Reader interface {
	Token() string
	CurrentUser() *entities.UserProfile
	IsActive() bool
}

// Context is the state of one admin session. It is either empty or holds
// both a token and a user.
type Context struct {
	storage Storage
	auth    Authenticator
}

func New(storage Storage, auth Authenticator) *Context {
	return &Context{storage: storage, auth: auth}
}

// Tokens returns the token held in storage. It lets an API client read the
// same state a Context would without holding the Context itself.
func Tokens(storage Storage) interface{ Token() string } {
	return tokenReader{storage}
}

type tokenReader struct{ storage Storage }

func (t tokenReader) Token() string {
	v, _ := t.storage.Get(TokenKey)
	return v
}

// Login authenticates against the API and persists the result. On failure
// the previous state is left as it was.
func (c *Context) Login(ctx context.Context, email, password string) (*entities.UserProfile, error) {
	resp, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	user := resp.User
	if user == nil {
		user = &entities.UserProfile{Email: email}
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	c.storage.Set(TokenKey, resp.Token)
	c.storage.Set(UserKey, string(raw))
	return user, nil
}

// Logout asks the API to revoke the token and clears local state. The
// revoke result is ignored; local state is always cleared.
func (c *Context) Logout(ctx context.Context) {
	if c.Token() != "" && c.auth != nil {
		_ = c.auth.Logout(ctx)
	}
	c.Clear()
}

// Clear drops the local state without contacting the API.
func (c *Context) Clear() {
	c.storage.Delete(TokenKey)
	c.storage.Delete(UserKey)
}

func (c *Context) Token() string {
	v, _ := c.storage.Get(TokenKey)
	return v
}

// CurrentUser returns nil when the session is empty or the stored user
// cannot be decoded.
func (c *Context) CurrentUser() *entities.UserProfile {
	raw, ok := c.storage.Get(UserKey)
	if !ok || raw == "" {
		return nil
	}
	var u entities.UserProfile
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return &u
}

func (c *Context) IsActive() bool {
	return c.Token() != "" && c.CurrentUser() != nil
}
