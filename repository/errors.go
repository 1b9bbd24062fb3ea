package repository

import "github.com/pkg/errors"

// Sentinel lookup errors, one per entity. Controllers map these to 404
// bodies with errors.Is, so every repository wraps rather than replaces
// them.
var (
	ErrMenuNotFound    = errors.New("menu not found")
	ErrSubmenuNotFound = errors.New("submenu not found")
	ErrDishNotFound    = errors.New("dish not found")
)
