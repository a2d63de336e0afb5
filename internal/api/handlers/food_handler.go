package handlers

import (
	"errors"

	"baratie/domain"
	"baratie/internal/api/presenters"
	"baratie/pkg/menu"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		AddFoodItem(c *fiber.Ctx) error
		DeleteFoodItem(c *fiber.Ctx) error
		GetChefFoodItems(c *fiber.Ctx) error
		GetFoodItems(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetSpecials(c *fiber.Ctx) error
	}

	foodHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewFoodHandler(menuService menu.MenuService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func foodErrorMessage(err error, fallback string) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPrice):
		return domain.MessageInvalidPrice
	case errors.Is(err, domain.ErrInvalidFoodItemID):
		return domain.MessageInvalidFoodItemID
	case errors.Is(err, domain.ErrCategoryRequired):
		return domain.MessageCategoryRequired
	case errors.Is(err, domain.ErrInvalidCategory):
		return domain.MessageInvalidCategory
	case errors.Is(err, domain.ErrFoodItemNotFound):
		return domain.MessageFoodItemNotFound
	case errors.Is(err, domain.ErrMissingFoodFields), errors.Is(err, domain.ErrMissingImage):
		return domain.MessageMissingFoodFields
	}
	return fallback
}

func (h *foodHandler) AddFoodItem(c *fiber.Ctx) error {
	req := new(domain.AddFoodItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingFoodFields, domain.ErrMissingImage)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingFoodFields, err)
	}

	res, err := h.menuService.AddFoodItem(c.UserContext(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), foodErrorMessage(err, domain.MessageFailedAddFoodItem), err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFoodItem)
}

func (h *foodHandler) DeleteFoodItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	req := new(domain.DeleteFoodItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.menuService.DeleteFoodItem(c.UserContext(), itemID, req.Category); err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), foodErrorMessage(err, domain.MessageFailedDeleteFoodItem), err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFoodItem)
}

func (h *foodHandler) GetChefFoodItems(c *fiber.Ctx) error {
	items, err := h.menuService.GetAllFoodItems(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetFoodItems, err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetFoodItems(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		byCategory, err := h.menuService.GetMenu(c.UserContext())
		if err != nil {
			return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetFoodItems, err)
		}
		return presenters.SuccessResponse(c, byCategory, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
	}

	items, err := h.menuService.GetFoodItemsByCategory(c.UserContext(), category)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), foodErrorMessage(err, domain.MessageFailedGetFoodItems), err)
	}
	return presenters.SuccessResponse(c, items, fiber.StatusOK, domain.MessageSuccessGetFoodItems)
}

func (h *foodHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.menuService.GetCategories(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetCategories, err)
	}
	return presenters.SuccessResponse(c, categories, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *foodHandler) GetSpecials(c *fiber.Ctx) error {
	specials, err := h.menuService.GetSpecials(c.UserContext())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.ErrorStatus(err), domain.MessageFailedGetSpecials, err)
	}
	return presenters.SuccessResponse(c, specials, fiber.StatusOK, domain.MessageSuccessGetSpecials)
}
