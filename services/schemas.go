package services

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Rikoze777/menu-api/entity"
	"github.com/Rikoze777/menu-api/repository"
)

// Request and response shapes for the API boundary. Counts are derived at
// read time and never stored; dish prices are rendered as fixed two-decimal
// strings regardless of how the client sent them.

type MenuInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

type SubmenuInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// Price is a pointer so a body without the field fails validation while an
// explicit zero price still binds.
type DishInput struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
}

type MenuResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	SubmenusCount int64     `json:"submenus_count"`
	DishesCount   int64     `json:"dishes_count"`
}

type SubmenuResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	MenuID      uuid.UUID `json:"menu_id"`
	DishesCount int64     `json:"dishes_count"`
}

type DishResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
}

func menuResponse(row repository.MenuRow) MenuResponse {
	return MenuResponse{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		SubmenusCount: row.SubmenusCount,
		DishesCount:   row.DishesCount,
	}
}

func submenuResponse(row repository.SubmenuRow) SubmenuResponse {
	return SubmenuResponse{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		MenuID:      row.MenuID,
		DishesCount: row.DishesCount,
	}
}

func dishResponse(dish entity.Dish) DishResponse {
	return DishResponse{
		ID:          dish.ID,
		Title:       dish.Title,
		Description: dish.Description,
		Price:       dish.Price.StringFixed(2),
	}
}
