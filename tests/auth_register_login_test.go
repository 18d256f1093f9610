package tests

import (
	"testing"
	"time"

	"artisthub/internal/transport/http/dto"
	"artisthub/tests/suite"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passDefaultLen = 12

func TestRegisterLogin_HappyPath(t *testing.T) {
	ctx, st := suite.New(t)

	username := gofakeit.Username()
	email := gofakeit.Email()
	pass := randomFakePassword()

	userID, err := st.Users.Register(ctx, dto.UserRegisterInput{
		Username: username,
		Email:    email,
		Password: pass,
		Name:     gofakeit.Name(),
		IsArtist: true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, userID)

	user, err := st.Users.Authenticate(ctx, username, pass)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)

	loginTime := time.Now()

	pair, err := st.Tokens.GenerateTokens(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	tokenParsed, err := jwt.Parse(pair.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(st.Cfg.TokenSecret), nil
	})
	require.NoError(t, err)

	claims, ok := tokenParsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["uid"].(string))
	assert.Equal(t, username, claims["username"].(string))

	const deltaSeconds = 1
	assert.InDelta(t, loginTime.Add(st.Cfg.AccessTokenTTL).Unix(), claims["exp"].(float64), deltaSeconds)
}

func TestRegisterLogin_DuplicateRegistration(t *testing.T) {
	ctx, st := suite.New(t)

	input := dto.UserRegisterInput{
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
		Password: randomFakePassword(),
	}

	_, err := st.Users.Register(ctx, input)
	require.NoError(t, err)

	_, err = st.Users.Register(ctx, input)
	require.Error(t, err)
}

func TestRegisterLogin_WrongPassword(t *testing.T) {
	ctx, st := suite.New(t)

	username := gofakeit.Username()

	_, err := st.Users.Register(ctx, dto.UserRegisterInput{
		Username: username,
		Email:    gofakeit.Email(),
		Password: randomFakePassword(),
	})
	require.NoError(t, err)

	_, err = st.Users.Authenticate(ctx, username, randomFakePassword())
	require.Error(t, err)
}

func TestRefresh_RotatesTokens(t *testing.T) {
	ctx, st := suite.New(t)

	username := gofakeit.Username()
	pass := randomFakePassword()

	_, err := st.Users.Register(ctx, dto.UserRegisterInput{
		Username: username,
		Email:    gofakeit.Email(),
		Password: pass,
	})
	require.NoError(t, err)

	user, err := st.Users.Authenticate(ctx, username, pass)
	require.NoError(t, err)

	pair, err := st.Tokens.GenerateTokens(ctx, user)
	require.NoError(t, err)

	rotated, err := st.Tokens.RefreshTokens(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// the old refresh token is single use
	_, err = st.Tokens.RefreshTokens(ctx, pair.RefreshToken)
	require.Error(t, err)
}

func randomFakePassword() string {
	return gofakeit.Password(true, true, true, true, false, passDefaultLen)
}
