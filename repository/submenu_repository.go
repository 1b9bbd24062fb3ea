// repository/submenu_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rikoze777/menu-api/entity"
)

// SubmenuRow carries the stored submenu columns plus its derived dish count.
type SubmenuRow struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MenuID      uuid.UUID `json:"menu_id"`
	DishesCount int64     `json:"dishes_count"`
}

type SubmenuRepository struct {
	DB    *gorm.DB
	menus *MenuRepository
}

func NewSubmenuRepository(db *gorm.DB) *SubmenuRepository {
	return &SubmenuRepository{DB: db, menus: NewMenuRepository(db)}
}

func (r *SubmenuRepository) countsQuery(ctx context.Context, menuID uuid.UUID) *gorm.DB {
	return r.DB.WithContext(ctx).
		Model(&entity.Submenu{}).
		Select("submenus.id, submenus.title, submenus.description, submenus.menu_id, "+
			"COUNT(dishes.id) AS dishes_count").
		Joins("LEFT JOIN dishes ON dishes.submenu_id = submenus.id").
		Where("submenus.menu_id = ?", menuID).
		Group("submenus.id, submenus.title, submenus.description, submenus.menu_id")
}

func (r *SubmenuRepository) List(ctx context.Context, menuID uuid.UUID) ([]SubmenuRow, error) {
	var rows []SubmenuRow
	if err := r.countsQuery(ctx, menuID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "list submenus")
	}
	return rows, nil
}

func (r *SubmenuRepository) Get(ctx context.Context, menuID, id uuid.UUID) (SubmenuRow, error) {
	var rows []SubmenuRow
	err := r.countsQuery(ctx, menuID).Where("submenus.id = ?", id).Scan(&rows).Error
	if err != nil {
		return SubmenuRow{}, errors.Wrap(err, "get submenu")
	}
	if len(rows) == 0 {
		return SubmenuRow{}, ErrSubmenuNotFound
	}
	return rows[0], nil
}

func (r *SubmenuRepository) Create(ctx context.Context, menuID uuid.UUID, submenu *entity.Submenu) error {
	if err := r.menus.Exists(ctx, menuID); err != nil {
		return err
	}
	submenu.MenuID = menuID
	if err := r.DB.WithContext(ctx).Create(submenu).Error; err != nil {
		return errors.Wrap(err, "create submenu")
	}
	return nil
}

func (r *SubmenuRepository) Update(ctx context.Context, menuID, id uuid.UUID, title, description string) error {
	res := r.DB.WithContext(ctx).
		Model(&entity.Submenu{}).
		Where("menu_id = ? AND id = ?", menuID, id).
		Updates(map[string]any{"title": title, "description": description})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update submenu")
	}
	if res.RowsAffected == 0 {
		return ErrSubmenuNotFound
	}
	return nil
}

func (r *SubmenuRepository) Delete(ctx context.Context, menuID, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("menu_id = ?", menuID).
		Delete(&entity.Submenu{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete submenu")
	}
	if res.RowsAffected == 0 {
		return ErrSubmenuNotFound
	}
	return nil
}

// Exists scopes the check by menu so a submenu id under the wrong parent is
// indistinguishable from a missing one.
func (r *SubmenuRepository) Exists(ctx context.Context, menuID, id uuid.UUID) error {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&entity.Submenu{}).
		Where("menu_id = ? AND id = ?", menuID, id).
		Count(&n).Error
	if err != nil {
		return errors.Wrap(err, "check submenu")
	}
	if n == 0 {
		return ErrSubmenuNotFound
	}
	return nil
}
