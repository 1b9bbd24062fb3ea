// Package tasks holds the scheduled spreadsheet reconciliation job: a
// workbook describing the full menu hierarchy is parsed and, when its
// content hash changes, replaces the table contents wholesale.
package tasks

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type MenuRow struct {
	ID          uuid.UUID
	Title       string
	Description string
}

type SubmenuRow struct {
	ID          uuid.UUID
	MenuID      uuid.UUID
	Title       string
	Description string
}

type DishRow struct {
	ID          uuid.UUID
	SubmenuID   uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal
}

// ParseWorkbook reads the first sheet and splits its rows into the three
// entity sets using the positional convention:
//
//	cols 0 and 1 populated  -> new menu:    id, title, description
//	only col 1 populated    -> submenu:     id, title, description (under the current menu)
//	neither populated       -> dish:        id, title, description, price, discount (under the current submenu)
//
// The dish discount is applied in place: price = price * discount / 100.
func ParseWorkbook(path string) ([]MenuRow, []SubmenuRow, []DishRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "read workbook rows")
	}
	return parseRows(rows)
}

func parseRows(rows [][]string) ([]MenuRow, []SubmenuRow, []DishRow, error) {
	var (
		menus    []MenuRow
		submenus []SubmenuRow
		dishes   []DishRow

		currentMenu    uuid.UUID
		currentSubmenu uuid.UUID
	)

	for i, row := range rows {
		switch {
		case cell(row, 0) != "" && cell(row, 1) != "":
			id, err := uuid.Parse(cell(row, 0))
			if err != nil {
				return nil, nil, nil, errors.Wrapf(err, "row %d: menu id", i+1)
			}
			currentMenu = id
			menus = append(menus, MenuRow{
				ID:          id,
				Title:       cell(row, 1),
				Description: cell(row, 2),
			})

		case cell(row, 1) != "":
			if currentMenu == uuid.Nil {
				return nil, nil, nil, errors.Errorf("row %d: submenu before any menu", i+1)
			}
			id, err := uuid.Parse(cell(row, 1))
			if err != nil {
				return nil, nil, nil, errors.Wrapf(err, "row %d: submenu id", i+1)
			}
			currentSubmenu = id
			submenus = append(submenus, SubmenuRow{
				ID:          id,
				MenuID:      currentMenu,
				Title:       cell(row, 2),
				Description: cell(row, 3),
			})

		case cell(row, 2) != "":
			if currentSubmenu == uuid.Nil {
				return nil, nil, nil, errors.Errorf("row %d: dish before any submenu", i+1)
			}
			id, err := uuid.Parse(cell(row, 2))
			if err != nil {
				return nil, nil, nil, errors.Wrapf(err, "row %d: dish id", i+1)
			}
			price, err := decimal.NewFromString(cell(row, 5))
			if err != nil {
				return nil, nil, nil, errors.Wrapf(err, "row %d: dish price", i+1)
			}
			if raw := cell(row, 6); raw != "" {
				discount, err := decimal.NewFromString(raw)
				if err != nil {
					return nil, nil, nil, errors.Wrapf(err, "row %d: dish discount", i+1)
				}
				price = price.Mul(discount).Div(decimal.NewFromInt(100))
			}
			dishes = append(dishes, DishRow{
				ID:          id,
				SubmenuID:   currentSubmenu,
				Title:       cell(row, 3),
				Description: cell(row, 4),
				Price:       price.Round(2),
			})
		}
	}
	return menus, submenus, dishes, nil
}

// cell indexes a row defensively: excelize trims trailing empty cells.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
