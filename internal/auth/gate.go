package auth

import (
	"context"
	"errors"
)

// ErrWrongPassword is returned on a password mismatch. There is no
// attempt counter and no lockout; every try is independent.
var ErrWrongPassword = errors.New("wrong admin password")

// Gate is the admin access gate: a plain equality check against the
// configured shared secret. It intentionally provides no stronger
// property; the secret is a deployment configuration value, not an
// account system.
type Gate struct {
	password string
	sessions *SessionStore
}

// NewGate creates a gate over the configured password and session store.
func NewGate(password string, sessions *SessionStore) *Gate {
	return &Gate{password: password, sessions: sessions}
}

// Login checks the password and, on match, opens a session and returns
// its token.
func (g *Gate) Login(ctx context.Context, password string) (string, error) {
	if password != g.password {
		return "", ErrWrongPassword
	}
	return g.sessions.Create(ctx)
}

// Logout destroys the session named by token.
func (g *Gate) Logout(ctx context.Context, token string) error {
	return g.sessions.Destroy(ctx, token)
}

// Sessions exposes the underlying store for the route middleware.
func (g *Gate) Sessions() *SessionStore {
	return g.sessions
}
