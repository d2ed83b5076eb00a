package utils

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	PasswordCost     = 10
	MaxPasswordBytes = 72
)

func PasswordFits(password string) bool {
	return len(password) <= MaxPasswordBytes
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
