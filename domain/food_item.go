package domain

import (
	"errors"
	"mime/multipart"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MenuTableSuffix     = "_menu"
	SpecialsTable       = "todays_specials"
	MenuImageRootFolder = "assets"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	validSlug     = regexp.MustCompile(`^[a-z0-9_]+$`)

	// DefaultCategories are provisioned at migration time so the menu is browsable before any chef
	// adds an item.
	DefaultCategories = []string{"Indian", "Korean", "Chinese", "Italian", "Desserts", "Milkshake", "Soft Drinks"}
)

// CategorySlug turns a display category into its storage slug ("Soft Drinks" -> "soft_drinks").
func CategorySlug(category string) (string, error) {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(category)), "_")
	if !validSlug.MatchString(slug) {
		return "", ErrInvalidCategory
	}
	return slug, nil
}

// MenuTable returns the per-category table for a display category.
func MenuTable(category string) (string, error) {
	slug, err := CategorySlug(category)
	if err != nil {
		return "", err
	}
	return slug + MenuTableSuffix, nil
}

// CategoryFromTable reverses MenuTable ("soft_drinks_menu" -> "Soft Drinks").
// ok is false for tables that are not menu tables.
func CategoryFromTable(table string) (string, bool) {
	if !strings.HasSuffix(table, MenuTableSuffix) {
		return "", false
	}
	slug := strings.TrimSuffix(table, MenuTableSuffix)
	if slug == "" || !validSlug.MatchString(slug) {
		return "", false
	}
	words := strings.Split(slug, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " "), true
}

var (
	MessageSuccessAddFoodItem    = "Food item added successfully!"
	MessageSuccessDeleteFoodItem = "Food item deleted successfully"
	MessageSuccessGetFoodItems   = "food items retrieved successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"
	MessageSuccessGetSpecials    = "today's specials retrieved successfully"

	MessageFailedAddFoodItem    = "Failed to add food item"
	MessageFailedDeleteFoodItem = "Failed to delete food item"
	MessageFailedGetFoodItems   = "Failed to fetch food items"
	MessageFailedGetCategories  = "Failed to fetch categories from database"
	MessageFailedGetSpecials    = "Failed to fetch today's specials"
	MessageMissingFoodFields    = "Missing required fields"
	MessageInvalidPrice         = "Invalid price value"
	MessageInvalidFoodItemID    = "Invalid food item ID provided"
	MessageCategoryRequired     = "Category is required in the request body"
	MessageInvalidCategory      = "Invalid category"
	MessageFoodItemNotFound     = "Food item not found"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidFoodItemID  = errors.New("invalid food item id")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrCategoryRequired   = errors.New("category is required")
	ErrInvalidPrice       = errors.New("price must be a positive number")
	ErrInvalidImageFormat = errors.New("invalid image format")
	ErrMissingImage       = errors.New("image is required")
	ErrMissingFoodFields  = errors.New("missing required fields")
)

type (
	AddFoodItemRequest struct {
		Name        string                `form:"name" validate:"required"`
		Category    string                `form:"category" validate:"required"`
		Price       string                `form:"price" validate:"required"`
		Description string                `form:"description" validate:"required"`
		Image       *multipart.FileHeader `form:"image" validate:"required"`
	}

	DeleteFoodItemRequest struct {
		Category string `json:"category"`
	}

	FoodItemResponse struct {
		ID          string          `json:"_id"`
		Name        string          `json:"name"`
		Category    string          `json:"category"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description"`
		ImageSrc    string          `json:"imageSrc"`
		CreatedAt   time.Time       `json:"createdAt"`
	}

	AddFoodItemResponse struct {
		ItemID string           `json:"itemId"`
		Item   FoodItemResponse `json:"item"`
	}

	SpecialResponse struct {
		ID          string          `json:"_id"`
		AltID       string          `json:"id"`
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
		ImageSrc    string          `json:"imageSrc"`
	}
)
