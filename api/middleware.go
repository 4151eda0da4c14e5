package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"

	jwtMiddleware "github.com/gofiber/contrib/jwt"
	"github.com/scanopy/scanopy/lib/auth"
)

// JWTProtected func for specify routes group with JWT authentication.
// See: https://github.com/gofiber/contrib/jwt
func JWTProtected() func(*fiber.Ctx) error {
	jwtSecret := viper.GetString("api.auth.jwt_secret_key")
	config := jwtMiddleware.Config{
		SigningKey:   jwtMiddleware.SigningKey{Key: []byte(jwtSecret)},
		ContextKey:   "jwt", // used in private routes
		ErrorHandler: jwtError,
	}

	return jwtMiddleware.New(config)
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true,
			"msg":   err.Error(),
		})
	}

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": true,
		"msg":   err.Error(),
	})
}

// currentUserID resolves the authenticated caller from the verified JWT.
func currentUserID(c *fiber.Ctx) (uint, error) {
	metadata, err := auth.ExtractTokenMetadata(c)
	if err != nil {
		return 0, err
	}
	if metadata.Expires < time.Now().Unix() {
		return 0, errors.New("token expired")
	}
	return metadata.UserID, nil
}
