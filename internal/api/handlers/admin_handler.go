package handlers

import (
	"errors"

	"baratie/domain"
	"baratie/internal/api/presenters"
	"baratie/pkg/admin"

	"github.com/gofiber/fiber/v2"
)

type (
	AdminHandler interface {
		GetOverview(c *fiber.Ctx) error
		GetDashboardData(c *fiber.Ctx) error
	}

	adminHandler struct {
		adminService admin.AdminService
	}
)

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &adminHandler{adminService: adminService}
}

func dateErrorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrDateRequired):
		return domain.MessageDateRequired
	case errors.Is(err, domain.ErrInvalidDate):
		return domain.MessageInvalidDate
	}
	return fallback
}

func (h *adminHandler) GetOverview(c *fiber.Ctx) error {
	res, err := h.adminService.GetOverview(c.UserContext(), c.Query("date"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), dateErrorMessage(err, domain.MessageFailedGetOverview), err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetOverview)
}

func (h *adminHandler) GetDashboardData(c *fiber.Ctx) error {
	res, err := h.adminService.GetDashboardData(c.UserContext(), c.Query("date"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), dateErrorMessage(err, domain.MessageFailedGetDashboardData), err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboardData)
}
