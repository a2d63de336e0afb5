package handlers

import (
	"baratie/domain"
	"baratie/internal/api/presenters"
	"baratie/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := requestUserID(c)
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUserNotAuthenticated, domain.ErrMissingUserID)
	}

	res, err := h.notificationService.GetNotifications(c.UserContext(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetNotifications, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}
