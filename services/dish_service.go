// services/dish_service.go
package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rikoze777/menu-api/entity"
	"github.com/Rikoze777/menu-api/pkg/cache"
	"github.com/Rikoze777/menu-api/repository"
)

type DishService struct {
	repo  *repository.DishRepository
	cache *cache.Cache
	inv   *Invalidator
	log   *zap.Logger
}

func NewDishService(repo *repository.DishRepository, c *cache.Cache, inv *Invalidator, log *zap.Logger) *DishService {
	return &DishService{repo: repo, cache: c, inv: inv, log: log}
}

func (s *DishService) List(ctx context.Context, menuID, submenuID uuid.UUID) ([]DishResponse, error) {
	return cache.Fetch(ctx, s.cache, cache.DishListKey(menuID, submenuID), func(ctx context.Context) ([]DishResponse, error) {
		dishes, err := s.repo.List(ctx, submenuID)
		if err != nil {
			return nil, err
		}
		out := make([]DishResponse, 0, len(dishes))
		for _, dish := range dishes {
			out = append(out, dishResponse(dish))
		}
		return out, nil
	})
}

func (s *DishService) Get(ctx context.Context, menuID, submenuID, id uuid.UUID) (DishResponse, error) {
	return cache.Fetch(ctx, s.cache, cache.DishKey(menuID, submenuID, id), func(ctx context.Context) (DishResponse, error) {
		dish, err := s.repo.Get(ctx, submenuID, id)
		if err != nil {
			return DishResponse{}, err
		}
		return dishResponse(dish), nil
	})
}

// Create ripples up the hierarchy: both ancestors carry derived dish
// counts, so their keys go stale along with the dish list.
func (s *DishService) Create(ctx context.Context, menuID, submenuID uuid.UUID, input DishInput) (DishResponse, error) {
	dish := entity.Dish{Title: input.Title, Description: input.Description, Price: *input.Price}
	if err := s.repo.Create(ctx, menuID, submenuID, &dish); err != nil {
		return DishResponse{}, err
	}
	s.inv.Enqueue(
		cache.DishListKey(menuID, submenuID),
		cache.SubmenuListKey(menuID),
		cache.SubmenuKey(menuID, submenuID),
		cache.MenuListKey(),
		cache.MenuKey(menuID),
		cache.MenuCountKey(menuID),
	)
	return dishResponse(dish), nil
}

func (s *DishService) Update(ctx context.Context, menuID, submenuID, id uuid.UUID, input DishInput) (DishResponse, error) {
	dish, err := s.repo.Update(ctx, submenuID, id, entity.Dish{
		Title:       input.Title,
		Description: input.Description,
		Price:       *input.Price,
	})
	if err != nil {
		return DishResponse{}, err
	}
	s.inv.Enqueue(
		cache.DishListKey(menuID, submenuID),
		cache.DishKey(menuID, submenuID, id),
	)
	return dishResponse(dish), nil
}

func (s *DishService) Delete(ctx context.Context, menuID, submenuID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, submenuID, id); err != nil {
		return err
	}
	s.inv.Enqueue(
		cache.DishListKey(menuID, submenuID),
		cache.DishKey(menuID, submenuID, id),
		cache.SubmenuListKey(menuID),
		cache.SubmenuKey(menuID, submenuID),
		cache.MenuListKey(),
		cache.MenuKey(menuID),
		cache.MenuCountKey(menuID),
	)
	return nil
}
