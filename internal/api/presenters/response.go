package presenters

import (
	"errors"

	"baratie/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}
	return c.Status(statusCode).JSON(res)
}

var statusByError = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidOrderID, fiber.StatusBadRequest},
	{domain.ErrInvalidStatus, fiber.StatusBadRequest},
	{domain.ErrInvalidOrderData, fiber.StatusBadRequest},
	{domain.ErrTotalAmountMismatch, fiber.StatusBadRequest},
	{domain.ErrInvalidRole, fiber.StatusBadRequest},
	{domain.ErrMissingSignupFields, fiber.StatusBadRequest},
	{domain.ErrInvalidFoodItemID, fiber.StatusBadRequest},
	{domain.ErrInvalidCategory, fiber.StatusBadRequest},
	{domain.ErrCategoryRequired, fiber.StatusBadRequest},
	{domain.ErrInvalidPrice, fiber.StatusBadRequest},
	{domain.ErrInvalidImageFormat, fiber.StatusBadRequest},
	{domain.ErrMissingImage, fiber.StatusBadRequest},
	{domain.ErrMissingFoodFields, fiber.StatusBadRequest},
	{domain.ErrDateRequired, fiber.StatusBadRequest},
	{domain.ErrInvalidDate, fiber.StatusBadRequest},
	{domain.ErrMissingUserID, fiber.StatusUnauthorized},
	{domain.ErrInvalidCredentials, fiber.StatusUnauthorized},
	{domain.ErrTokenNotFound, fiber.StatusUnauthorized},
	{domain.ErrTokenExpired, fiber.StatusUnauthorized},
	{domain.ErrTokenInvalid, fiber.StatusUnauthorized},
	{domain.ErrUserNotAllowed, fiber.StatusForbidden},
	{domain.ErrOrderNotFound, fiber.StatusNotFound},
	{domain.ErrFoodItemNotFound, fiber.StatusNotFound},
	{domain.ErrUserAlreadyExists, fiber.StatusConflict},
	{domain.ErrDuplicateOrder, fiber.StatusConflict},
}

// ErrorStatus maps an error returned by a service onto the HTTP status it should produce.
// Unknown errors are server errors.
func ErrorStatus(err error) int {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fiber.StatusBadRequest
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return fiber.StatusInternalServerError
}
