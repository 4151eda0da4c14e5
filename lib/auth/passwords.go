package auth

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// NormalizePassword func for a returning the users input as a byte slice.
func NormalizePassword(p string) []byte {
	return []byte(p)
}

// GeneratePassword func for a making hash & salt with user password.
func GeneratePassword(p string) string {
	bytePwd := NormalizePassword(p)

	hash, err := bcrypt.GenerateFromPassword(bytePwd, bcrypt.MinCost)
	if err != nil {
		log.Error().Err(err).Msg("Error generating password hash")
		return err.Error()
	}

	return string(hash)
}

// ComparePasswords func for a comparing password.
func ComparePasswords(hashedPwd, inputPwd string) bool {
	byteHash := NormalizePassword(hashedPwd)
	byteInput := NormalizePassword(inputPwd)

	if err := bcrypt.CompareHashAndPassword(byteHash, byteInput); err != nil {
		log.Error().Err(err).Msg("Error comparing passwords")
		return false
	}

	return true
}

const MinPasswordLength = 7

var ErrEmptyPassword = errors.New("No password provided")
var ErrPasswordTooShort = fmt.Errorf("Password must be at least %d characters", MinPasswordLength)
var ErrMissingLetterOrNumber = errors.New("Password must contain both letters and numbers")

// CheckPasswordPolicy checks if a password meets the minimum requirements.
func CheckPasswordPolicy(password string) error {
	hasLetter := false
	hasNumber := false

	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	switch {
	case password == "":
		return ErrEmptyPassword
	case len(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case !hasLetter || !hasNumber:
		return ErrMissingLetterOrNumber
	}
	return nil
}
