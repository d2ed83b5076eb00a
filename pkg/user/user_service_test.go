package user

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/internal/testutil"
	"Recipe-Finder/pkg/jwt"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) (UserService, jwt.JWTService) {
	t.Helper()
	db := testutil.NewDB(t)
	jwtService := jwt.NewJWTService("test-secret")
	return NewUserService(NewUserRepository(db), jwtService), jwtService
}

func registerAlice(t *testing.T, s UserService) domain.UserRegisterResponse {
	t.Helper()
	res, err := s.Register(context.Background(), domain.UserRegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pa55word",
		Preferences: &domain.Preferences{
			Diet:                []string{"vegetarian"},
			ExcludedIngredients: []string{"peanuts"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.UserID)
	return res
}

func TestRegister_DuplicateEmailThenLoginStillWorks(t *testing.T) {
	s, _ := newTestUserService(t)
	ctx := context.Background()
	first := registerAlice(t, s)

	_, err := s.Register(ctx, domain.UserRegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "other",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	res, err := s.Login(ctx, domain.UserLoginRequest{Email: "alice@example.com", Password: "pa55word"})
	require.NoError(t, err)
	assert.Equal(t, first.UserID, res.User.ID)
	assert.NotEmpty(t, res.Token)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s, _ := newTestUserService(t)
	registerAlice(t, s)

	_, err := s.Register(context.Background(), domain.UserRegisterRequest{
		Username: "alice",
		Email:    "someone-else@example.com",
		Password: "x",
	})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestLogin_ByUsernameReturnsPublicFields(t *testing.T) {
	s, jwtService := newTestUserService(t)
	registerAlice(t, s)

	res, err := s.Login(context.Background(), domain.UserLoginRequest{Email: "alice", Password: "pa55word"})
	require.NoError(t, err)

	assert.Equal(t, "alice", res.User.Username)
	assert.Equal(t, "alice@example.com", res.User.Email)
	assert.Equal(t, domain.DefaultCookingSkill, res.User.CookingSkill)
	assert.Equal(t, []string{"vegetarian"}, res.User.Preferences.Diet)
	assert.Equal(t, []string{"peanuts"}, res.User.Preferences.ExcludedIngredients)

	id, username, err := jwtService.ValidateTokenUser(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, id)
	assert.Equal(t, "alice", username)
}

func TestLogin_UsernameField(t *testing.T) {
	s, _ := newTestUserService(t)
	registerAlice(t, s)

	_, err := s.Login(context.Background(), domain.UserLoginRequest{Username: "alice", Password: "pa55word"})
	assert.NoError(t, err)
}

func TestLogin_WrongPasswordAndUnknownUserAreIndistinguishable(t *testing.T) {
	s, _ := newTestUserService(t)
	registerAlice(t, s)
	ctx := context.Background()

	_, errWrong := s.Login(ctx, domain.UserLoginRequest{Email: "alice", Password: "nope"})
	_, errMissing := s.Login(ctx, domain.UserLoginRequest{Email: "ghost", Password: "nope"})

	assert.ErrorIs(t, errWrong, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errMissing, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errMissing.Error())
}

func TestRegister_PasswordTooLong(t *testing.T) {
	s, _ := newTestUserService(t)

	_, err := s.Register(context.Background(), domain.UserRegisterRequest{
		Username: "long",
		Email:    "long@example.com",
		Password: strings.Repeat("x", 73),
	})
	assert.ErrorIs(t, err, domain.ErrPasswordTooLong)
}

func TestLogin_OverlongPasswordIsInvalidCredentials(t *testing.T) {
	s, _ := newTestUserService(t)
	registerAlice(t, s)

	_, err := s.Login(context.Background(), domain.UserLoginRequest{Email: "alice", Password: strings.Repeat("x", 100)})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestRegister_StoresTrimmedIdentifiers(t *testing.T) {
	s, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := s.Register(ctx, domain.UserRegisterRequest{Username: " hana ", Email: "\thana@example.com", Password: "pw"})
	require.NoError(t, err)

	res, err := s.Login(ctx, domain.UserLoginRequest{Username: "hana ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "hana", res.User.Username)
	assert.Equal(t, "hana@example.com", res.User.Email)
}
