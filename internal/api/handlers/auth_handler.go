package handlers

import (
	"errors"

	"baratie/domain"
	"baratie/internal/api/presenters"
	"baratie/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Signup(c *fiber.Ctx) error
		Login(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *authHandler) Signup(c *fiber.Ctx) error {
	req := new(domain.SignupRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingSignupFields, err)
	}

	res, err := h.authService.Signup(c.UserContext(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidRole, err)
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageUserAlreadyExists, err)
		case errors.Is(err, domain.ErrMissingSignupFields):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingSignupFields, err)
		}
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedSignup, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSignup)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingLoginFields, err)
	}

	res, err := h.authService.Login(c.UserContext(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRole):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidRole, err)
		case errors.Is(err, domain.ErrInvalidCredentials):
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageInvalidCredentials, err)
		}
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedLogin, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}
