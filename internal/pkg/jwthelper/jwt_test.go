package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var key = []byte("test-signing-key")

func TestGenerateAndParseAdminToken(t *testing.T) {
	token, err := GenerateToken(key, "admin@example.com", RoleAdmin, "go-test")
	require.NoError(t, err)

	claims, err := ParseAdminToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestParseAdminToken_WrongRole(t *testing.T) {
	token, err := GenerateToken(key, "someone", "viewer", "")
	require.NoError(t, err)

	_, err = ParseAdminToken(key, token)
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := GenerateToken(key, "admin", RoleAdmin, "")
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-key"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
