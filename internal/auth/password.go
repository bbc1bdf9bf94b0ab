package auth

import (
	"unicode"

	"freehunt_backend/pkg/apperrors"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// ValidatePasswordStrength enforces the signup password policy: at least
// eight characters with an upper-case letter, a lower-case letter and a digit.
func ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return apperrors.ErrWeakPassword
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return apperrors.ErrWeakPassword
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
