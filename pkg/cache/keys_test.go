package cache

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyShapes(t *testing.T) {
	menuID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	submenuID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	dishID := uuid.MustParse("33333333-3333-3333-3333-333333333333")

	assert.Equal(t, "menu", MenuListKey())
	assert.Equal(t, "menu_11111111-1111-1111-1111-111111111111", MenuKey(menuID))
	assert.Equal(t, "menu_11111111-1111-1111-1111-111111111111_count", MenuCountKey(menuID))
	assert.Equal(t,
		"menu_11111111-1111-1111-1111-111111111111_submenu",
		SubmenuListKey(menuID))
	assert.Equal(t,
		"menu_11111111-1111-1111-1111-111111111111_submenu_22222222-2222-2222-2222-222222222222",
		SubmenuKey(menuID, submenuID))
	assert.Equal(t,
		"menu_11111111-1111-1111-1111-111111111111_submenu_22222222-2222-2222-2222-222222222222_dish",
		DishListKey(menuID, submenuID))
	assert.Equal(t,
		"menu_11111111-1111-1111-1111-111111111111_submenu_22222222-2222-2222-2222-222222222222_dish_33333333-3333-3333-3333-333333333333",
		DishKey(menuID, submenuID, dishID))
}

// The prefix helpers are what cascading invalidation leans on: every key
// scoped under an entity must start with that entity's prefix, and keys for
// unrelated entities must not.
func TestPrefixesCoverDescendants(t *testing.T) {
	menuID := uuid.New()
	otherMenu := uuid.New()
	submenuID := uuid.New()
	dishID := uuid.New()

	under := []string{
		MenuKey(menuID),
		MenuCountKey(menuID),
		SubmenuListKey(menuID),
		SubmenuKey(menuID, submenuID),
		DishListKey(menuID, submenuID),
		DishKey(menuID, submenuID, dishID),
	}
	for _, key := range under {
		assert.True(t, strings.HasPrefix(key, MenuPrefix(menuID)), key)
	}

	assert.False(t, strings.HasPrefix(MenuListKey(), MenuPrefix(menuID)),
		"the global list key must survive a single menu's invalidation")
	assert.False(t, strings.HasPrefix(MenuKey(otherMenu), MenuPrefix(menuID)))

	dishKeys := []string{
		DishListKey(menuID, submenuID),
		DishKey(menuID, submenuID, dishID),
	}
	for _, key := range dishKeys {
		assert.True(t, strings.HasPrefix(key, SubmenuPrefix(menuID, submenuID)), key)
	}
}
