package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/messagely/messagely/internal/common"
)

func TestGuard_EnsureAuthenticated(t *testing.T) {
	t.Parallel()

	g := NewGuard("test-secret")

	tok, err := GenerateToken("alice", []byte("test-secret"), 0)
	require.NoError(t, err)

	username, err := g.EnsureAuthenticated(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestGuard_EnsureAuthenticated_Failures(t *testing.T) {
	t.Parallel()

	g := NewGuard("test-secret")

	otherSecret, err := GenerateToken("alice", []byte("other-secret"), 0)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"malformed token", "nonsense"},
		{"wrong secret", otherSecret},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.EnsureAuthenticated(tc.token)
			// Every failure collapses to the same error shape.
			assert.ErrorIs(t, err, common.ErrorUnauthorized)
		})
	}
}

func TestGuard_EnsureSelf(t *testing.T) {
	t.Parallel()

	g := NewGuard("test-secret")

	tok, err := GenerateToken("alice", []byte("test-secret"), 0)
	require.NoError(t, err)

	username, err := g.EnsureSelf(tok, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestGuard_EnsureSelf_WrongUser(t *testing.T) {
	t.Parallel()

	g := NewGuard("test-secret")

	tok, err := GenerateToken("bob", []byte("test-secret"), 0)
	require.NoError(t, err)

	_, err = g.EnsureSelf(tok, "alice")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	// Exact match only: no case-insensitive or prefix allowance.
	_, err = g.EnsureSelf(tok, "Bob")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	tokPrefix, err := GenerateToken("al", []byte("test-secret"), 0)
	require.NoError(t, err)
	_, err = g.EnsureSelf(tokPrefix, "alice")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestGuard_EnsureSelf_InvalidToken(t *testing.T) {
	t.Parallel()

	g := NewGuard("test-secret")

	_, err := g.EnsureSelf("", "alice")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}
