package domain

import (
	"errors"
	"strings"
)

const (
	DefaultCookingSkill = "intermediate"
)

var (
	MessageSuccessRegister = "user registered"
	MessageSuccessLogin    = "login successful"

	MessageFailedRegister = "error registering user"
	MessageFailedLogin    = "login failed"
	MessageUserExists     = "username or email already exists, please login"
	MessageInvalidCreds   = "invalid credentials"

	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

type (
	Preferences struct {
		Diet                []string `json:"diet"`
		ExcludedIngredients []string `json:"excludedIngredients"`
	}

	UserRegisterRequest struct {
		Username     string       `json:"username" validate:"required"`
		Email        string       `json:"email" validate:"required,email"`
		Password     string       `json:"password" validate:"required,pwbytes"`
		Preferences  *Preferences `json:"preferences"`
		CookingSkill string       `json:"cookingSkill"`
	}

	UserRegisterResponse struct {
		UserID string `json:"userId"`
	}

	// UserLoginRequest keeps the original client's convention: Email may hold
	// either an email address or a username.
	UserLoginRequest struct {
		Email    string `json:"email" validate:"required_without=Username"`
		Username string `json:"username" validate:"required_without=Email"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		Token string      `json:"token"`
		User  UserSummary `json:"user"`
	}

	UserSummary struct {
		ID           string      `json:"id"`
		Username     string      `json:"username"`
		Email        string      `json:"email"`
		Preferences  Preferences `json:"preferences"`
		CookingSkill string      `json:"cookingSkill"`
	}
)

// Normalize trims the identifying fields so blank values fail "required".
func (r *UserRegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.CookingSkill = strings.TrimSpace(r.CookingSkill)
}

func (r *UserLoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.Username = strings.TrimSpace(r.Username)
}

// Identifier is the value looked up against both email and username.
func (r UserLoginRequest) Identifier() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Username
}
