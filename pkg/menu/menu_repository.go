package menu

import (
	"context"
	"fmt"
	"sort"

	"baratie/domain"
	"baratie/entities"
	"baratie/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type (
	// MenuRepository stores menu items in one table per category. Table names must come from
	// domain.MenuTable so they are always valid slugs.
	MenuRepository interface {
		EnsureCategoryTable(ctx context.Context, table string) error
		HasCategoryTable(ctx context.Context, table string) (bool, error)
		ListMenuTables(ctx context.Context) ([]string, error)
		CreateItem(ctx context.Context, table string, item *entities.MenuItem) error
		GetItemByID(ctx context.Context, table string, id uuid.UUID) (*entities.MenuItem, error)
		DeleteItem(ctx context.Context, table string, id uuid.UUID) error
		ListItems(ctx context.Context, table string) ([]entities.MenuItem, error)
		FindItemsByIDs(ctx context.Context, ids []string) (map[string]entities.MenuItem, error)
		ListSpecials(ctx context.Context) ([]entities.Special, error)
	}

	menuRepository struct {
		db     *gorm.DB
		logger zerolog.Logger
	}
)

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{
		db:     db,
		logger: utils.NewLogger("menu"),
	}
}

func (r *menuRepository) EnsureCategoryTable(ctx context.Context, table string) error {
	if err := r.db.WithContext(ctx).Table(table).AutoMigrate(&entities.MenuItem{}); err != nil {
		return fmt.Errorf("create menu table %s: %w", table, err)
	}
	return nil
}

func (r *menuRepository) HasCategoryTable(ctx context.Context, table string) (bool, error) {
	return r.db.WithContext(ctx).Migrator().HasTable(table), nil
}

func (r *menuRepository) ListMenuTables(ctx context.Context) ([]string, error) {
	tables, err := r.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, err
	}
	menus := make([]string, 0, len(tables))
	for _, table := range tables {
		if _, ok := domain.CategoryFromTable(table); ok {
			menus = append(menus, table)
		}
	}
	sort.Strings(menus)
	return menus, nil
}

func (r *menuRepository) CreateItem(ctx context.Context, table string, item *entities.MenuItem) error {
	return r.db.WithContext(ctx).Table(table).Create(item).Error
}

func (r *menuRepository) GetItemByID(ctx context.Context, table string, id uuid.UUID) (*entities.MenuItem, error) {
	var item entities.MenuItem
	if err := r.db.WithContext(ctx).Table(table).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) DeleteItem(ctx context.Context, table string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Delete(&entities.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *menuRepository) ListItems(ctx context.Context, table string) ([]entities.MenuItem, error) {
	var items []entities.MenuItem
	err := r.db.WithContext(ctx).Table(table).Order("name asc").Find(&items).Error
	return items, err
}

// FindItemsByIDs looks ids up in every menu table. Ids that are not UUIDs cannot match and are
// skipped; a failing table is logged and skipped.
func (r *menuRepository) FindItemsByIDs(ctx context.Context, ids []string) (map[string]entities.MenuItem, error) {
	found := map[string]entities.MenuItem{}

	uuids := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if parsed, err := uuid.Parse(id); err == nil {
			uuids = append(uuids, parsed)
		}
	}
	if len(uuids) == 0 {
		return found, nil
	}

	tables, err := r.ListMenuTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu tables: %w", err)
	}

	for _, table := range tables {
		var items []entities.MenuItem
		if err := r.db.WithContext(ctx).Table(table).Where("id IN ?", uuids).Find(&items).Error; err != nil {
			r.logger.Warn().Err(err).Str("table", table).Msg("menu lookup failed")
			continue
		}
		for _, item := range items {
			found[item.ID.String()] = item
		}
	}
	return found, nil
}

func (r *menuRepository) ListSpecials(ctx context.Context) ([]entities.Special, error) {
	var specials []entities.Special
	err := r.db.WithContext(ctx).Order("name asc").Find(&specials).Error
	return specials, err
}
