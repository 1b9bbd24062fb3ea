// services/submenu_service.go
package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rikoze777/menu-api/entity"
	"github.com/Rikoze777/menu-api/pkg/cache"
	"github.com/Rikoze777/menu-api/repository"
)

type SubmenuService struct {
	repo  *repository.SubmenuRepository
	cache *cache.Cache
	inv   *Invalidator
	log   *zap.Logger
}

func NewSubmenuService(repo *repository.SubmenuRepository, c *cache.Cache, inv *Invalidator, log *zap.Logger) *SubmenuService {
	return &SubmenuService{repo: repo, cache: c, inv: inv, log: log}
}

func (s *SubmenuService) List(ctx context.Context, menuID uuid.UUID) ([]SubmenuResponse, error) {
	return cache.Fetch(ctx, s.cache, cache.SubmenuListKey(menuID), func(ctx context.Context) ([]SubmenuResponse, error) {
		rows, err := s.repo.List(ctx, menuID)
		if err != nil {
			return nil, err
		}
		out := make([]SubmenuResponse, 0, len(rows))
		for _, row := range rows {
			out = append(out, submenuResponse(row))
		}
		return out, nil
	})
}

func (s *SubmenuService) Get(ctx context.Context, menuID, id uuid.UUID) (SubmenuResponse, error) {
	return cache.Fetch(ctx, s.cache, cache.SubmenuKey(menuID, id), func(ctx context.Context) (SubmenuResponse, error) {
		row, err := s.repo.Get(ctx, menuID, id)
		if err != nil {
			return SubmenuResponse{}, err
		}
		return submenuResponse(row), nil
	})
}

// Create also invalidates the parent menu's keys: its submenu count is
// derived and already stale.
func (s *SubmenuService) Create(ctx context.Context, menuID uuid.UUID, input SubmenuInput) (SubmenuResponse, error) {
	submenu := entity.Submenu{Title: input.Title, Description: input.Description}
	if err := s.repo.Create(ctx, menuID, &submenu); err != nil {
		return SubmenuResponse{}, err
	}
	s.inv.Enqueue(
		cache.SubmenuListKey(menuID),
		cache.MenuListKey(),
		cache.MenuKey(menuID),
		cache.MenuCountKey(menuID),
	)
	return SubmenuResponse{
		ID:          submenu.ID,
		Title:       submenu.Title,
		Description: submenu.Description,
		MenuID:      submenu.MenuID,
	}, nil
}

func (s *SubmenuService) Update(ctx context.Context, menuID, id uuid.UUID, input SubmenuInput) (SubmenuResponse, error) {
	if err := s.repo.Update(ctx, menuID, id, input.Title, input.Description); err != nil {
		return SubmenuResponse{}, err
	}
	row, err := s.repo.Get(ctx, menuID, id)
	if err != nil {
		return SubmenuResponse{}, err
	}
	s.inv.Enqueue(cache.SubmenuListKey(menuID), cache.SubmenuKey(menuID, id))
	return submenuResponse(row), nil
}

// Delete cascades in the store; the prefix invalidation drops every dish
// key scoped under the submenu along with the submenu's own keys.
func (s *SubmenuService) Delete(ctx context.Context, menuID, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, menuID, id); err != nil {
		return err
	}
	s.inv.Enqueue(
		cache.SubmenuListKey(menuID),
		cache.MenuListKey(),
		cache.MenuKey(menuID),
		cache.MenuCountKey(menuID),
	)
	s.inv.EnqueuePrefix(cache.SubmenuPrefix(menuID, id))
	return nil
}
