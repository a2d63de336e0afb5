package handlers

import (
	"errors"

	"baratie/domain"
	"baratie/internal/api/presenters"
	"baratie/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const idempotencyHeader = "Idempotency-Key"

type (
	OrderHandler interface {
		PlaceOrder(c *fiber.Ctx) error
		GetOrder(c *fiber.Ctx) error
		GetMyOrders(c *fiber.Ctx) error
		GetChefOrders(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) PlaceOrder(c *fiber.Ctx) error {
	req := new(domain.CreateOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidOrderData, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidOrderData, err)
	}

	res, err := h.orderService.PlaceOrder(c.UserContext(), *req, c.Get(idempotencyHeader))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTotalAmountMismatch), errors.Is(err, domain.ErrInvalidOrderData):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidOrderData, err)
		case errors.Is(err, domain.ErrDuplicateOrder):
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageDuplicateOrderSubmission, err)
		}
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedPlaceOrder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessPlaceOrder)
}

func orderErrorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrInvalidOrderID):
		return domain.MessageInvalidOrderID
	case errors.Is(err, domain.ErrOrderNotFound):
		return domain.MessageOrderNotFound
	case errors.Is(err, domain.ErrInvalidStatus):
		return domain.MessageInvalidStatusPrefix + domain.AllowedStatusesText()
	}
	return fallback
}

func (h *orderHandler) GetOrder(c *fiber.Ctx) error {
	res, err := h.orderService.GetOrderByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), orderErrorMessage(err, domain.MessageFailedGetOrder), err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrder)
}

// requestUserID prefers the userId cookie and falls back to ?userId=.
func requestUserID(c *fiber.Ctx) string {
	if userID := c.Cookies("userId"); userID != "" {
		return userID
	}
	return c.Query("userId")
}

func (h *orderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID := requestUserID(c)
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUserNotAuthenticated, domain.ErrMissingUserID)
	}

	res, err := h.orderService.GetMyOrders(c.UserContext(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) GetChefOrders(c *fiber.Ctx) error {
	res, err := h.orderService.GetAllOrders(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateOrderStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.orderService.UpdateOrderStatus(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), orderErrorMessage(err, domain.MessageFailedUpdateOrderStatus), err)
	}

	message := domain.MessageSuccessUpdateOrderStatus
	if !res.Changed {
		message = domain.MessageOrderStatusNotChanged
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, message)
}
