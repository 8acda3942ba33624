package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGate(t *testing.T) (*Gate, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sessions := NewSessionStore(client, time.Hour)
	return NewGate("S@rahh", sessions), mr
}

func TestLoginWrongPasswordNoLockout(t *testing.T) {
	gate, _ := setupGate(t)
	ctx := context.Background()

	// three wrong attempts, each rejected the same way, no lockout
	for i := 0; i < 3; i++ {
		token, err := gate.Login(ctx, "not-it")
		assert.ErrorIs(t, err, ErrWrongPassword)
		assert.Empty(t, token)
	}

	// the correct password still works afterwards
	token, err := gate.Login(ctx, "S@rahh")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginIssuesLiveSession(t *testing.T) {
	gate, _ := setupGate(t)
	ctx := context.Background()

	token, err := gate.Login(ctx, "S@rahh")
	require.NoError(t, err)

	ok, err := gate.Sessions().Exists(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLogoutDestroysSession(t *testing.T) {
	gate, _ := setupGate(t)
	ctx := context.Background()

	token, err := gate.Login(ctx, "S@rahh")
	require.NoError(t, err)

	require.NoError(t, gate.Logout(ctx, token))

	ok, err := gate.Sessions().Exists(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	// logging out an already-dead token is not an error
	require.NoError(t, gate.Logout(ctx, token))
}

func TestSessionExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sessions := NewSessionStore(client, time.Minute)
	ctx := context.Background()

	token, err := sessions.Create(ctx)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	ok, err := sessions.Exists(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExistsEmptyToken(t *testing.T) {
	gate, _ := setupGate(t)

	ok, err := gate.Sessions().Exists(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}
