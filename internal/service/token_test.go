package service

import (
	"testing"
	"time"

	"clubverse/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueToken_ClaimsAndTTL(t *testing.T) {
	tokenString, err := IssueToken(testJWTSecret, models.Principal{
		ID: "u-1", Email: "sam@example.com", Role: models.RoleUser, Name: "Sam",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(_ *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u-1", claims["sub"])
	assert.Equal(t, "sam@example.com", claims["email"])
	assert.Equal(t, models.RoleUser, claims["role"])
	assert.Equal(t, "Sam", claims["name"])
	assert.Equal(t, "clubverse-api", claims["iss"])
	assert.NotEmpty(t, claims["jti"])

	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.Equal(t, int64(TokenTTL/time.Second), exp-iat)
}

func TestIssueToken_EmptySecret(t *testing.T) {
	_, err := IssueToken("", models.Principal{ID: "u-1"})
	assert.Error(t, err)
}

func TestParseToken(t *testing.T) {
	tokenString, err := IssueToken(testJWTSecret, models.Principal{
		ID: "u-1", Email: "sam@example.com", Role: models.RoleAdmin, Name: "Sam",
	})
	require.NoError(t, err)

	t.Run("RoundTrip", func(t *testing.T) {
		principal, err := ParseToken(testJWTSecret, tokenString)
		require.NoError(t, err)
		assert.Equal(t, "u-1", principal.ID)
		assert.Equal(t, models.RoleAdmin, principal.Role)
		assert.True(t, principal.IsAdmin())
	})

	t.Run("WrongSecret", func(t *testing.T) {
		_, err := ParseToken("a-different-secret", tokenString)
		assert.Error(t, err)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "u-1",
			"iss": "someone-else",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte(testJWTSecret))
		require.NoError(t, err)

		_, err = ParseToken(testJWTSecret, foreign)
		assert.Error(t, err)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"iss": "clubverse-api",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte(testJWTSecret))
		require.NoError(t, err)

		_, err = ParseToken(testJWTSecret, noSub)
		assert.Error(t, err)
	})
}
