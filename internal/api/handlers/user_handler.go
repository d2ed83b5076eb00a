package handlers

import (
	"Recipe-Finder/domain"
	"Recipe-Finder/internal/api/presenters"
	"Recipe-Finder/pkg/user"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	UserHandler interface {
		Register(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) Register(c *fiber.Ctx) error {
	req := new(domain.UserRegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Normalize()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
	}

	res, err := h.userService.Register(c.UserContext(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageUserExists, err)
		case errors.Is(err, domain.ErrPasswordTooLong):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRegister, err)
		}
		log.Errorw("register failed", "error", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRegister, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRegister)
}

func (h *userHandler) Login(c *fiber.Ctx) error {
	req := new(domain.UserLoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req.Normalize()
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogin, err)
	}

	res, err := h.userService.Login(c.UserContext(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageInvalidCreds, domain.ErrInvalidCredentials)
		}
		log.Errorw("login failed", "error", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}
