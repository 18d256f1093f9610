package jwt

import (
	"testing"
	"time"

	"artisthub/internal/domain/models"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken(t *testing.T) {
	user := models.User{
		ID:       uuid.New(),
		Username: "vermeer",
	}

	const secret = "test-secret"
	ttl := 15 * time.Minute
	issuedAt := time.Now()

	tokenString, err := NewToken(user, secret, ttl)
	require.NoError(t, err)

	parsed, err := jwtlib.Parse(tokenString, func(token *jwtlib.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	require.True(t, ok)

	assert.Equal(t, user.ID.String(), claims["uid"])
	assert.Equal(t, user.Username, claims["username"])

	const deltaSeconds = 2
	assert.InDelta(t, issuedAt.Add(ttl).Unix(), claims["exp"].(float64), deltaSeconds)
}

func TestNewToken_WrongSecretRejected(t *testing.T) {
	tokenString, err := NewToken(models.User{ID: uuid.New()}, "right", time.Minute)
	require.NoError(t, err)

	_, err = jwtlib.Parse(tokenString, func(token *jwtlib.Token) (interface{}, error) {
		return []byte("wrong"), nil
	})
	assert.Error(t, err)
}
