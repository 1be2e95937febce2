package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.NoError(t, ComparePasswords(hash, "s3cret!"))
	assert.Error(t, ComparePasswords(hash, "wrong"))
}

func TestGenerateJoinCode(t *testing.T) {
	code, err := GenerateJoinCode(6)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	// The alphabet drops lookalike characters.
	for _, r := range code {
		assert.NotContains(t, "0O1IL", string(r))
	}

	other, err := GenerateJoinCode(6)
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}
