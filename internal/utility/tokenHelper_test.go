package utility

import (
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, refreshToken, err := GenerateAllTokens("jane@example.com", "Jane", "Doe", "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refreshToken)

	claims, msg := ValidateToken(token)
	require.Empty(t, msg)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.First_name)
	assert.Equal(t, "Doe", claims.Last_name)
	assert.Equal(t, "user-1", claims.Uid)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, msg := ValidateToken("not-a-token")
	assert.NotEmpty(t, msg)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	expired := &SignedDetails{
		Email: "jane@example.com",
		Uid:   "user-1",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(SECRET_KEY))
	require.NoError(t, err)

	_, msg := ValidateToken(token)
	assert.NotEmpty(t, msg)
}
