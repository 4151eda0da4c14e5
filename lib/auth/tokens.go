package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// TokenMetadata holds the data embedded in a verified access token.
type TokenMetadata struct {
	UserID  uint
	Expires int64
}

// GenerateNewAccessToken creates a signed JWT access token for the given user.
func GenerateNewAccessToken(userID uint) (string, error) {
	secret := viper.GetString("api.auth.jwt_secret_key")
	minutesCount := viper.GetInt("api.auth.jwt_secret_expire_minutes")

	claims := jwt.MapClaims{
		"id":      userID,
		"expires": time.Now().Add(time.Minute * time.Duration(minutesCount)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ExtractTokenMetadata reads the verified JWT stored by the auth middleware.
func ExtractTokenMetadata(c *fiber.Ctx) (*TokenMetadata, error) {
	token, ok := c.Locals("jwt").(*jwt.Token)
	if !ok {
		return nil, errors.New("missing token in request context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, errors.New("token is missing the user id claim")
	}
	expires, ok := claims["expires"].(float64)
	if !ok {
		return nil, errors.New("token is missing the expires claim")
	}

	return &TokenMetadata{
		UserID:  uint(id),
		Expires: int64(expires),
	}, nil
}
