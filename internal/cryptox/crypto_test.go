package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveVerifierDeterministic(t *testing.T) {
	salt := GenerateSalt()
	v1 := DeriveVerifier([]byte("secret"), salt)
	v2 := DeriveVerifier([]byte("secret"), salt)
	assert.Equal(t, v1, v2)
	assert.Len(t, v1, 32)
}

func TestDeriveVerifierSaltAndPasswordMatter(t *testing.T) {
	s1, s2 := GenerateSalt(), GenerateSalt()
	require.NotEqual(t, s1, s2)

	assert.NotEqual(t, DeriveVerifier([]byte("secret"), s1), DeriveVerifier([]byte("secret"), s2))
	assert.NotEqual(t, DeriveVerifier([]byte("secret"), s1), DeriveVerifier([]byte("other"), s1))
}

func TestVerifierMatches(t *testing.T) {
	salt := GenerateSalt()
	stored := DeriveVerifier([]byte("secret"), salt)

	assert.True(t, VerifierMatches(stored, DeriveVerifier([]byte("secret"), salt)))
	assert.False(t, VerifierMatches(stored, DeriveVerifier([]byte("wrong"), salt)))
}
