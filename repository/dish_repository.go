// repository/dish_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Rikoze777/menu-api/entity"
)

type DishRepository struct {
	DB       *gorm.DB
	submenus *SubmenuRepository
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db, submenus: NewSubmenuRepository(db)}
}

func (r *DishRepository) List(ctx context.Context, submenuID uuid.UUID) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.WithContext(ctx).
		Where("submenu_id = ?", submenuID).
		Find(&dishes).Error
	if err != nil {
		return nil, errors.Wrap(err, "list dishes")
	}
	return dishes, nil
}

func (r *DishRepository) Get(ctx context.Context, submenuID, id uuid.UUID) (entity.Dish, error) {
	var dish entity.Dish
	err := r.DB.WithContext(ctx).
		Where("submenu_id = ? AND id = ?", submenuID, id).
		First(&dish).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.Dish{}, ErrDishNotFound
		}
		return entity.Dish{}, errors.Wrap(err, "get dish")
	}
	return dish, nil
}

func (r *DishRepository) Create(ctx context.Context, menuID, submenuID uuid.UUID, dish *entity.Dish) error {
	if err := r.submenus.Exists(ctx, menuID, submenuID); err != nil {
		return err
	}
	dish.SubmenuID = submenuID
	if err := r.DB.WithContext(ctx).Create(dish).Error; err != nil {
		return errors.Wrap(err, "create dish")
	}
	return nil
}

// Update overwrites every mutable field; the BeforeSave hook re-rounds the
// price on the way in.
func (r *DishRepository) Update(ctx context.Context, submenuID, id uuid.UUID, dish entity.Dish) (entity.Dish, error) {
	current, err := r.Get(ctx, submenuID, id)
	if err != nil {
		return entity.Dish{}, err
	}
	current.Title = dish.Title
	current.Description = dish.Description
	current.Price = dish.Price
	if err := r.DB.WithContext(ctx).Save(&current).Error; err != nil {
		return entity.Dish{}, errors.Wrap(err, "update dish")
	}
	return current, nil
}

func (r *DishRepository) Delete(ctx context.Context, submenuID, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("submenu_id = ?", submenuID).
		Delete(&entity.Dish{}, "id = ?", id)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete dish")
	}
	if res.RowsAffected == 0 {
		return ErrDishNotFound
	}
	return nil
}
