package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rikoze777/menu-api/pkg/testsupport"
	"github.com/Rikoze777/menu-api/repository"
	"github.com/Rikoze777/menu-api/services"
)

type serviceFixture struct {
	inv     *services.Invalidator
	menu    *services.MenuService
	submenu *services.SubmenuService
	dish    *services.DishService
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newServiceFixture(t *testing.T) serviceFixture {
	db := testsupport.NewDB(t)
	c := newCache(t)
	log := zap.NewNop()
	inv := services.NewInvalidator(c, log)
	t.Cleanup(inv.Close)

	return serviceFixture{
		inv:     inv,
		menu:    services.NewMenuService(repository.NewMenuRepository(db), c, inv, log),
		submenu: services.NewSubmenuService(repository.NewSubmenuRepository(db), c, inv, log),
		dish:    services.NewDishService(repository.NewDishRepository(db), c, inv, log),
	}
}

func TestMenuService_CreateReturnsZeroCounts(t *testing.T) {
	f := newServiceFixture(t)

	menu, err := f.menu.Create(context.Background(), services.MenuInput{Title: "Test menu", Description: "Test description menu"})
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", menu.ID.String())
	assert.Equal(t, int64(0), menu.SubmenusCount)
	assert.Equal(t, int64(0), menu.DishesCount)
}

// After an update, one invalidation round-trip is enough for the list to
// reflect the new title; no stale read may persist past it.
func TestMenuService_UpdateInvalidatesList(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	menu, err := f.menu.Create(ctx, services.MenuInput{Title: "before"})
	require.NoError(t, err)
	f.inv.Wait()

	// Prime the list key.
	listed, err := f.menu.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, "before", listed[0].Title)

	_, err = f.menu.Update(ctx, menu.ID, services.MenuInput{Title: "after"})
	require.NoError(t, err)
	f.inv.Wait()

	listed, err = f.menu.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "after", listed[0].Title)
}

func TestMenuService_CountReflectsHierarchy(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	menu, err := f.menu.Create(ctx, services.MenuInput{Title: "menu"})
	require.NoError(t, err)
	submenu, err := f.submenu.Create(ctx, menu.ID, services.SubmenuInput{Title: "submenu"})
	require.NoError(t, err)
	for _, title := range []string{"d1", "d2"} {
		_, err := f.dish.Create(ctx, menu.ID, submenu.ID, services.DishInput{
			Title: title,
			Price: price("10.00"),
		})
		require.NoError(t, err)
	}
	f.inv.Wait()

	counted, err := f.menu.Count(ctx, menu.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counted.SubmenusCount)
	assert.Equal(t, int64(2), counted.DishesCount)
}

// Dish writes must ripple invalidation up to the cached menu counts.
func TestDishService_CreateInvalidatesAncestorCounts(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	menu, err := f.menu.Create(ctx, services.MenuInput{Title: "menu"})
	require.NoError(t, err)
	submenu, err := f.submenu.Create(ctx, menu.ID, services.SubmenuInput{Title: "submenu"})
	require.NoError(t, err)
	f.inv.Wait()

	// Prime the count key while the submenu is empty.
	counted, err := f.menu.Count(ctx, menu.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), counted.DishesCount)

	_, err = f.dish.Create(ctx, menu.ID, submenu.ID, services.DishInput{
		Title: "d",
		Price: price("4.20"),
	})
	require.NoError(t, err)
	f.inv.Wait()

	counted, err = f.menu.Count(ctx, menu.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counted.DishesCount)
}

// Deleting a menu must drop every descendant cache entry, not only the
// menu's own keys: a cached dish under it may not outlive the cascade.
func TestMenuService_DeleteDropsDescendantCacheEntries(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	menu, err := f.menu.Create(ctx, services.MenuInput{Title: "menu"})
	require.NoError(t, err)
	submenu, err := f.submenu.Create(ctx, menu.ID, services.SubmenuInput{Title: "submenu"})
	require.NoError(t, err)
	dish, err := f.dish.Create(ctx, menu.ID, submenu.ID, services.DishInput{
		Title: "d",
		Price: price("1.00"),
	})
	require.NoError(t, err)
	f.inv.Wait()

	// Prime descendant keys.
	_, err = f.dish.Get(ctx, menu.ID, submenu.ID, dish.ID)
	require.NoError(t, err)
	_, err = f.submenu.Get(ctx, menu.ID, submenu.ID)
	require.NoError(t, err)

	require.NoError(t, f.menu.Delete(ctx, menu.ID))
	f.inv.Wait()

	_, err = f.dish.Get(ctx, menu.ID, submenu.ID, dish.ID)
	assert.ErrorIs(t, err, repository.ErrDishNotFound)
	_, err = f.submenu.Get(ctx, menu.ID, submenu.ID)
	assert.ErrorIs(t, err, repository.ErrSubmenuNotFound)
	_, err = f.menu.Get(ctx, menu.ID)
	assert.ErrorIs(t, err, repository.ErrMenuNotFound)
}

func TestDishService_PriceFormattedOnEveryRead(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	menu, err := f.menu.Create(ctx, services.MenuInput{Title: "menu"})
	require.NoError(t, err)
	submenu, err := f.submenu.Create(ctx, menu.ID, services.SubmenuInput{Title: "submenu"})
	require.NoError(t, err)

	dish, err := f.dish.Create(ctx, menu.ID, submenu.ID, services.DishInput{
		Title: "d",
		Price: price("16.111"),
	})
	require.NoError(t, err)
	assert.Equal(t, "16.11", dish.Price)
	f.inv.Wait()

	got, err := f.dish.Get(ctx, menu.ID, submenu.ID, dish.ID)
	require.NoError(t, err)
	assert.Equal(t, "16.11", got.Price)

	// Whole prices still carry two decimals.
	whole, err := f.dish.Update(ctx, menu.ID, submenu.ID, dish.ID, services.DishInput{
		Title: "d",
		Price: price("5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "5.00", whole.Price)
}
