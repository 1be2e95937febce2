package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManagerRoundTrip(t *testing.T) {
	manager := NewJWTManager("configured-secret")
	userID := uuid.New()

	token, err := manager.CreateToken(userID, "leader")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "leader", claims.Role)
}

func TestJWTManagerRejectsOtherSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a").CreateToken(uuid.New(), "leader")
	require.NoError(t, err)

	_, err = NewJWTManager("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManagerRefusesEmptySecret(t *testing.T) {
	// An unset secret must never sign or accept anything.
	manager := NewJWTManager("")

	_, err := manager.CreateToken(uuid.New(), "leader")
	assert.Error(t, err)

	token, err := NewJWTManager("secret-a").CreateToken(uuid.New(), "leader")
	require.NoError(t, err)
	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}
