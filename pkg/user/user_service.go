package user

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/entities"
	"Recipe-Finder/internal/utils"
	"Recipe-Finder/pkg/jwt"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error)
		Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	req.Normalize()
	if !utils.PasswordFits(req.Password) {
		return domain.UserRegisterResponse{}, domain.ErrPasswordTooLong
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.UserRegisterResponse{}, fmt.Errorf("hash password: %w", err)
	}

	prefs := domain.Preferences{}
	if req.Preferences != nil {
		prefs = *req.Preferences
	}
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return domain.UserRegisterResponse{}, err
	}

	skill := req.CookingSkill
	if skill == "" {
		skill = domain.DefaultCookingSkill
	}

	user := entities.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		Preferences:  string(prefsJSON),
		CookingSkill: skill,
	}

	if err := s.userRepository.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserRegisterResponse{}, domain.ErrUserAlreadyExists
		}
		return domain.UserRegisterResponse{}, err
	}

	return domain.UserRegisterResponse{UserID: user.ID.String()}, nil
}

// Login collapses "no such user" and "wrong password" into one error so
// responses do not reveal which accounts exist.
func (s *userService) Login(ctx context.Context, req domain.UserLoginRequest) (domain.UserLoginResponse, error) {
	req.Normalize()
	if !utils.PasswordFits(req.Password) {
		return domain.UserLoginResponse{}, domain.ErrInvalidCredentials
	}

	user, err := s.userRepository.GetUserByEmailOrUsername(ctx, req.Identifier())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserLoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.UserLoginResponse{}, err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return domain.UserLoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Username)
	if err != nil {
		return domain.UserLoginResponse{}, fmt.Errorf("sign token: %w", err)
	}

	return domain.UserLoginResponse{
		Token: token,
		User:  toUserSummary(user),
	}, nil
}

func toUserSummary(user *entities.User) domain.UserSummary {
	var prefs domain.Preferences
	if user.Preferences != "" {
		// Malformed rows still allow login.
		_ = json.Unmarshal([]byte(user.Preferences), &prefs)
	}
	return domain.UserSummary{
		ID:           user.ID.String(),
		Username:     user.Username,
		Email:        user.Email,
		Preferences:  prefs,
		CookingSkill: user.CookingSkill,
	}
}
