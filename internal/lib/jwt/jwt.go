package jwt

import (
	"time"

	"artisthub/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NewToken issues an HS256 token carrying the user id and username claims.
// The jti claim keeps tokens minted within the same second distinct, which
// refresh token rotation relies on.
func NewToken(user models.User, secret string, duration time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = user.ID.String()
	claims["username"] = user.Username
	claims["jti"] = uuid.NewString()
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(duration).Unix()

	return token.SignedString([]byte(secret))
}
