package jwt

import (
	"Recipe-Finder/domain"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"time"
)

const TokenValidity = time.Hour

type (
	JWTService interface {
		GenerateTokenUser(userID string, username string) (string, error)
		ValidateTokenUser(token string) (string, string, error)
	}

	jwtUserClaim struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}

	Option func(*jwtService)
)

// WithClock replaces time.Now for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(j *jwtService) {
		if now != nil {
			j.now = now
		}
	}
}

func NewJWTService(secretKey string, opts ...Option) JWTService {
	j := &jwtService{
		secretKey: secretKey,
		issuer:    "RECIPE-FINDER",
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *jwtService) GenerateTokenUser(userID string, username string) (string, error) {
	now := j.now()
	claims := jwtUserClaim{
		userID,
		username,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

// ValidateTokenUser returns the user id and username embedded in a token.
// Time-based claims are checked against the service clock rather than the
// library's global one.
func (j *jwtService) ValidateTokenUser(token string) (string, string, error) {
	if token == "" {
		return "", "", domain.ErrTokenInvalid
	}

	claims := &jwtUserClaim{}
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	t_Token, err := parser.ParseWithClaims(token, claims, j.parseToken)
	if err != nil || !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	if !claims.VerifyExpiresAt(j.now(), true) {
		return "", "", domain.ErrTokenExpired
	}
	if claims.UserID == "" {
		return "", "", domain.ErrTokenInvalid
	}

	return claims.UserID, claims.Username, nil
}

// IsAuthError reports whether err came from token validation.
func IsAuthError(err error) bool {
	return errors.Is(err, domain.ErrTokenInvalid) || errors.Is(err, domain.ErrTokenExpired)
}
