package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageUnauthorized         = "unauthorized"
	MessageRouteNotFound        = "route not found"

	ErrUnauthorized  = errors.New("unauthorized")
	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token expired")
	ErrUpstream      = errors.New("external API error")
)
