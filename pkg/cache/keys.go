package cache

import (
	"fmt"

	"github.com/google/uuid"
)

// Typed key builders for every entity/operation pair. All keys for a given
// scope share the scope's prefix, so MenuPrefix and SubmenuPrefix double as
// the wildcard arguments to InvalidatePrefix.
//
// Key shapes:
//
//	menu
//	menu_{id}
//	menu_{id}_count
//	menu_{id}_submenu
//	menu_{id}_submenu_{sid}
//	menu_{id}_submenu_{sid}_dish
//	menu_{id}_submenu_{sid}_dish_{did}

func MenuListKey() string {
	return "menu"
}

func MenuKey(menuID uuid.UUID) string {
	return fmt.Sprintf("menu_%s", menuID)
}

func MenuCountKey(menuID uuid.UUID) string {
	return fmt.Sprintf("menu_%s_count", menuID)
}

// MenuPrefix covers the menu key itself and every descendant key.
func MenuPrefix(menuID uuid.UUID) string {
	return MenuKey(menuID)
}

func SubmenuListKey(menuID uuid.UUID) string {
	return fmt.Sprintf("menu_%s_submenu", menuID)
}

func SubmenuKey(menuID, submenuID uuid.UUID) string {
	return fmt.Sprintf("menu_%s_submenu_%s", menuID, submenuID)
}

// SubmenuPrefix covers the submenu key and every dish key under it.
func SubmenuPrefix(menuID, submenuID uuid.UUID) string {
	return SubmenuKey(menuID, submenuID)
}

func DishListKey(menuID, submenuID uuid.UUID) string {
	return fmt.Sprintf("menu_%s_submenu_%s_dish", menuID, submenuID)
}

func DishKey(menuID, submenuID, dishID uuid.UUID) string {
	return fmt.Sprintf("menu_%s_submenu_%s_dish_%s", menuID, submenuID, dishID)
}
