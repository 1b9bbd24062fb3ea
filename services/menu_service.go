// services/menu_service.go
package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rikoze777/menu-api/entity"
	"github.com/Rikoze777/menu-api/pkg/cache"
	"github.com/Rikoze777/menu-api/repository"
)

// MenuService fronts the menu repository with the read-through cache and
// owns the invalidation policy for menu-level writes.
type MenuService struct {
	repo  *repository.MenuRepository
	cache *cache.Cache
	inv   *Invalidator
	log   *zap.Logger
}

func NewMenuService(repo *repository.MenuRepository, c *cache.Cache, inv *Invalidator, log *zap.Logger) *MenuService {
	return &MenuService{repo: repo, cache: c, inv: inv, log: log}
}

func (s *MenuService) List(ctx context.Context) ([]MenuResponse, error) {
	return cache.Fetch(ctx, s.cache, cache.MenuListKey(), func(ctx context.Context) ([]MenuResponse, error) {
		rows, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]MenuResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, menuResponse(row))
		}
		return out, nil
	})
}

func (s *MenuService) Get(ctx context.Context, id uuid.UUID) (MenuResponse, error) {
	return cache.Fetch(ctx, s.cache, cache.MenuKey(id), func(ctx context.Context) (MenuResponse, error) {
		row, err := s.repo.GetWithCounts(ctx, id)
		if err != nil {
			return MenuResponse{}, err
		}
		return menuResponse(row), nil
	})
}

// Count serves the aggregate projection from its own key so the count
// endpoint survives invalidation of the plain menu key and vice versa.
func (s *MenuService) Count(ctx context.Context, id uuid.UUID) (MenuResponse, error) {
	return cache.Fetch(ctx, s.cache, cache.MenuCountKey(id), func(ctx context.Context) (MenuResponse, error) {
		row, err := s.repo.GetWithCounts(ctx, id)
		if err != nil {
			return MenuResponse{}, err
		}
		return menuResponse(row), nil
	})
}

func (s *MenuService) Create(ctx context.Context, input MenuInput) (MenuResponse, error) {
	menu := entity.Menu{Title: input.Title, Description: input.Description}
	if err := s.repo.Create(ctx, &menu); err != nil {
		return MenuResponse{}, err
	}
	s.inv.Enqueue(cache.MenuListKey())
	return MenuResponse{
		ID:          menu.ID,
		Title:       menu.Title,
		Description: menu.Description,
	}, nil
}

func (s *MenuService) Update(ctx context.Context, id uuid.UUID, input MenuInput) (MenuResponse, error) {
	if err := s.repo.Update(ctx, id, input.Title, input.Description); err != nil {
		return MenuResponse{}, err
	}
	row, err := s.repo.GetWithCounts(ctx, id)
	if err != nil {
		return MenuResponse{}, err
	}
	s.inv.Enqueue(cache.MenuListKey(), cache.MenuKey(id), cache.MenuCountKey(id))
	return menuResponse(row), nil
}

// Delete removes the menu; the store cascade takes all descendants, and the
// prefix invalidation takes every descendant cache key with them.
func (s *MenuService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.inv.Enqueue(cache.MenuListKey())
	s.inv.EnqueuePrefix(cache.MenuPrefix(id))
	return nil
}
