// repository/menu_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rikoze777/menu-api/entity"
)

// MenuRow is the read projection for a menu: the stored columns plus the
// aggregate counts, which are never persisted and always joined in.
type MenuRow struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	SubmenusCount int64     `json:"submenus_count"`
	DishesCount   int64     `json:"dishes_count"`
}

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// countsQuery joins submenus and dishes onto menus in a single grouped
// query. COUNT(DISTINCT submenus.id) keeps the submenu count honest when a
// submenu fans out over several dish rows, and counting dishes.id (never *)
// keeps empty submenus from contributing phantom dishes through the outer
// join.
func (r *MenuRepository) countsQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&entity.Menu{}).
		Select("menus.id, menus.title, menus.description, " +
			"COUNT(DISTINCT submenus.id) AS submenus_count, " +
			"COUNT(dishes.id) AS dishes_count").
		Joins("LEFT JOIN submenus ON submenus.menu_id = menus.id").
		Joins("LEFT JOIN dishes ON dishes.submenu_id = submenus.id").
		Group("menus.id, menus.title, menus.description")
}

func (r *MenuRepository) List(ctx context.Context) ([]MenuRow, error) {
	var rows []MenuRow
	if err := r.countsQuery(ctx).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list menus")
	}
	return rows, nil
}

func (r *MenuRepository) GetWithCounts(ctx context.Context, id uuid.UUID) (MenuRow, error) {
	var rows []MenuRow
	err := r.countsQuery(ctx).Where("menus.id = ?", id).Scan(&rows).Error
	if err != nil {
		return MenuRow{}, errors.Wrap(err, "get menu")
	}
	if len(rows) == 0 {
		return MenuRow{}, ErrMenuNotFound
	}
	return rows[0], nil
}

func (r *MenuRepository) Create(ctx context.Context, menu *entity.Menu) error {
	if err := r.DB.WithContext(ctx).Create(menu).Error; err != nil {
		return errors.Wrap(err, "create menu")
	}
	return nil
}

func (r *MenuRepository) Update(ctx context.Context, id uuid.UUID, title, description string) error {
	res := r.DB.WithContext(ctx).
		Model(&entity.Menu{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": title, "description": description})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update menu")
	}
	if res.RowsAffected == 0 {
		return ErrMenuNotFound
	}
	return nil
}

// Delete removes the menu row; the store's ON DELETE CASCADE constraints
// take every descendant submenu and dish with it in the same transaction.
func (r *MenuRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).Delete(&entity.Menu{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete menu")
	}
	if res.RowsAffected == 0 {
		return ErrMenuNotFound
	}
	return nil
}

// Exists reports whether a menu row is present without loading it. Child
// repositories use it to scope their lookups to the full ancestor path.
func (r *MenuRepository) Exists(ctx context.Context, id uuid.UUID) error {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&entity.Menu{}).
		Where("id = ?", id).
		Count(&n).Error
	if err != nil {
		return errors.Wrap(err, "check menu")
	}
	if n == 0 {
		return ErrMenuNotFound
	}
	return nil
}
