package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/scanopy/scanopy/db"
	"github.com/scanopy/scanopy/lib/auth"
)

// SignIn struct to describe login user.
type SignIn struct {
	Email    string `json:"email" validate:"required,email,lte=255"`
	Password string `json:"password" validate:"required,lte=255"`
}

// UserSignIn method to auth user and return an access token.
// @Description Auth user and return access token.
// @Summary auth user and return access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param signIn body SignIn true "SignIn payload"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/auth/user/sign/in [post]
func UserSignIn(c *fiber.Ctx) error {
	signIn := &SignIn{}

	if err := c.BodyParser(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true,
			"msg":   err.Error(),
		})
	}

	validate := validator.New()
	if err := validate.Struct(signIn); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": true,
			"msg":   err.Error(),
		})
	}

	foundedUser, err := db.Connection().GetUserByEmail(signIn.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true,
			"msg":   "wrong user email address or password",
		})
	}

	if !auth.ComparePasswords(foundedUser.PasswordHash, signIn.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": true,
			"msg":   "wrong user email address or password",
		})
	}

	accessToken, err := auth.GenerateNewAccessToken(foundedUser.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": true,
			"msg":   err.Error(),
		})
	}

	log.Info().Uint("user", foundedUser.ID).Msg("Signed in")
	return c.JSON(fiber.Map{
		"error": false,
		"msg":   nil,
		"tokens": fiber.Map{
			"access": accessToken,
		},
	})
}
