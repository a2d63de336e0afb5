package menu

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"baratie/domain"
	"baratie/entities"
	"baratie/internal/utils"
	"baratie/internal/utils/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.AddFoodItemResponse, error)
		DeleteFoodItem(ctx context.Context, id string, category string) error
		GetAllFoodItems(ctx context.Context) ([]domain.FoodItemResponse, error)
		GetFoodItemsByCategory(ctx context.Context, category string) ([]domain.FoodItemResponse, error)
		GetMenu(ctx context.Context) (map[string][]domain.FoodItemResponse, error)
		GetCategories(ctx context.Context) ([]string, error)
		GetSpecials(ctx context.Context) ([]domain.SpecialResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
		images         storage.ImageStorage
		logger         zerolog.Logger
		now            func() time.Time
	}
)

func NewMenuService(menuRepository MenuRepository, images storage.ImageStorage) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		images:         images,
		logger:         utils.NewLogger("menu"),
		now:            time.Now,
	}
}

func toFoodItemResponse(item entities.MenuItem) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:          item.ID.String(),
		Name:        item.Name,
		Category:    item.Category,
		Price:       item.Price,
		Description: item.Description,
		ImageSrc:    item.ImageSrc,
		CreatedAt:   item.CreatedAt,
	}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !price.IsPositive() {
		return decimal.Zero, domain.ErrInvalidPrice
	}
	return price, nil
}

func (s *menuService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest) (domain.AddFoodItemResponse, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" || strings.TrimSpace(req.Category) == "" {
		return domain.AddFoodItemResponse{}, domain.ErrMissingFoodFields
	}
	if req.Image == nil {
		return domain.AddFoodItemResponse{}, domain.ErrMissingImage
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return domain.AddFoodItemResponse{}, err
	}
	slug, err := domain.CategorySlug(req.Category)
	if err != nil {
		return domain.AddFoodItemResponse{}, err
	}
	table := slug + domain.MenuTableSuffix

	fileName := fmt.Sprintf("%d-%s", s.now().UnixMilli(), storage.SafeFileName(req.Image.Filename))
	objectKey, err := s.images.UploadFile(ctx, fileName, req.Image, domain.MenuImageRootFolder+"/"+slug, storage.AllowImage...)
	if err != nil {
		return domain.AddFoodItemResponse{}, fmt.Errorf("store image: %w", err)
	}

	item := &entities.MenuItem{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Category:    strings.TrimSpace(req.Category),
		Price:       price,
		Description: strings.TrimSpace(req.Description),
		ImageSrc:    s.images.GetPublicLinkKey(objectKey),
	}

	if err := s.menuRepository.EnsureCategoryTable(ctx, table); err != nil {
		s.discardImage(ctx, objectKey)
		return domain.AddFoodItemResponse{}, err
	}
	if err := s.menuRepository.CreateItem(ctx, table, item); err != nil {
		s.discardImage(ctx, objectKey)
		return domain.AddFoodItemResponse{}, fmt.Errorf("insert menu item: %w", err)
	}

	s.logger.Info().Str("item_id", item.ID.String()).Str("table", table).Msg("menu item added")
	return domain.AddFoodItemResponse{
		ItemID: item.ID.String(),
		Item:   toFoodItemResponse(*item),
	}, nil
}

func (s *menuService) discardImage(ctx context.Context, objectKey string) {
	if err := s.images.DeleteFile(ctx, objectKey); err != nil {
		s.logger.Warn().Err(err).Str("key", objectKey).Msg("failed to remove image")
	}
}

func (s *menuService) DeleteFoodItem(ctx context.Context, id string, category string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidFoodItemID
	}
	if strings.TrimSpace(category) == "" {
		return domain.ErrCategoryRequired
	}
	table, err := domain.MenuTable(category)
	if err != nil {
		return err
	}

	exists, err := s.menuRepository.HasCategoryTable(ctx, table)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrFoodItemNotFound
	}

	item, err := s.menuRepository.GetItemByID(ctx, table, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return fmt.Errorf("get menu item: %w", err)
	}

	if err := s.menuRepository.DeleteItem(ctx, table, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return fmt.Errorf("delete menu item: %w", err)
	}

	if item.ImageSrc != "" {
		s.discardImage(ctx, s.images.GetObjectKeyFromLink(item.ImageSrc))
	}
	return nil
}

func (s *menuService) GetAllFoodItems(ctx context.Context) ([]domain.FoodItemResponse, error) {
	tables, err := s.menuRepository.ListMenuTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu tables: %w", err)
	}

	res := make([]domain.FoodItemResponse, 0)
	for _, table := range tables {
		items, err := s.menuRepository.ListItems(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", table, err)
		}
		for _, item := range items {
			res = append(res, toFoodItemResponse(item))
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Category != res[j].Category {
			return res[i].Category < res[j].Category
		}
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func (s *menuService) GetFoodItemsByCategory(ctx context.Context, category string) ([]domain.FoodItemResponse, error) {
	table, err := domain.MenuTable(category)
	if err != nil {
		return nil, err
	}
	exists, err := s.menuRepository.HasCategoryTable(ctx, table)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrInvalidCategory
	}

	items, err := s.menuRepository.ListItems(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	res := make([]domain.FoodItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, toFoodItemResponse(item))
	}
	return res, nil
}

func (s *menuService) GetMenu(ctx context.Context) (map[string][]domain.FoodItemResponse, error) {
	tables, err := s.menuRepository.ListMenuTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu tables: %w", err)
	}

	menu := make(map[string][]domain.FoodItemResponse, len(tables))
	for _, table := range tables {
		name, _ := domain.CategoryFromTable(table)
		items, err := s.menuRepository.ListItems(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", table, err)
		}
		res := make([]domain.FoodItemResponse, 0, len(items))
		for _, item := range items {
			res = append(res, toFoodItemResponse(item))
		}
		menu[name] = res
	}
	return menu, nil
}

func (s *menuService) GetCategories(ctx context.Context) ([]string, error) {
	tables, err := s.menuRepository.ListMenuTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu tables: %w", err)
	}
	categories := make([]string, 0, len(tables))
	for _, table := range tables {
		if name, ok := domain.CategoryFromTable(table); ok {
			categories = append(categories, name)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *menuService) GetSpecials(ctx context.Context) ([]domain.SpecialResponse, error) {
	specials, err := s.menuRepository.ListSpecials(ctx)
	if err != nil {
		return nil, fmt.Errorf("list specials: %w", err)
	}
	res := make([]domain.SpecialResponse, 0, len(specials))
	for _, special := range specials {
		res = append(res, domain.SpecialResponse{
			ID:          special.ID.String(),
			AltID:       special.ID.String(),
			Name:        special.Name,
			Description: special.Description,
			Price:       special.Price,
			ImageSrc:    special.ImageSrc,
		})
	}
	return res, nil
}
