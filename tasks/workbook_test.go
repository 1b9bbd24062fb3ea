package tasks

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var (
	menuA    = uuid.MustParse("a0000000-0000-0000-0000-00000000000a")
	menuB    = uuid.MustParse("b0000000-0000-0000-0000-00000000000b")
	submenu1 = uuid.MustParse("a1000000-0000-0000-0000-0000000000a1")
	submenu2 = uuid.MustParse("a2000000-0000-0000-0000-0000000000a2")
	dish1    = uuid.MustParse("d1000000-0000-0000-0000-0000000000d1")
	dish2    = uuid.MustParse("d2000000-0000-0000-0000-0000000000d2")
)

// writeWorkbook lays out the positional convention: a menu row fills
// columns A and B, a submenu row starts at column B, a dish row at C.
func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	rows := [][]any{
		{menuA.String(), "Menu A", "first menu"},
		{"", submenu1.String(), "Submenu 1", "first submenu"},
		{"", "", dish1.String(), "Dish 1", "tasty", "100.00", "50"},
		{"", "", dish2.String(), "Dish 2", "tastier", "16.111", ""},
		{"", submenu2.String(), "Submenu 2", "second submenu"},
		{menuB.String(), "Menu B", "second menu"},
	}
	for i, row := range rows {
		for j, v := range row {
			cellName, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellName, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
}

func TestParseWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Menu.xlsx")
	writeWorkbook(t, path)

	menus, submenus, dishes, err := ParseWorkbook(path)
	require.NoError(t, err)

	require.Len(t, menus, 2)
	assert.Equal(t, menuA, menus[0].ID)
	assert.Equal(t, "Menu A", menus[0].Title)
	assert.Equal(t, "first menu", menus[0].Description)
	assert.Equal(t, menuB, menus[1].ID)

	require.Len(t, submenus, 2)
	assert.Equal(t, submenu1, submenus[0].ID)
	assert.Equal(t, menuA, submenus[0].MenuID)
	assert.Equal(t, submenu2, submenus[1].ID)
	assert.Equal(t, menuA, submenus[1].MenuID)

	require.Len(t, dishes, 2)
	assert.Equal(t, dish1, dishes[0].ID)
	assert.Equal(t, submenu1, dishes[0].SubmenuID)
	assert.Equal(t, "Dish 1", dishes[0].Title)
	// 100.00 * 50 / 100
	assert.Equal(t, "50.00", dishes[0].Price.StringFixed(2))
	// No discount column: price passes through rounded.
	assert.Equal(t, "16.11", dishes[1].Price.StringFixed(2))
}

func TestParseRows_OrphanRows(t *testing.T) {
	_, _, _, err := parseRows([][]string{
		{"", submenu1.String(), "orphan submenu", "d"},
	})
	assert.Error(t, err)

	_, _, _, err = parseRows([][]string{
		{"", "", dish1.String(), "orphan dish", "d", "1.00", "100"},
	})
	assert.Error(t, err)
}

func TestParseRows_BadCells(t *testing.T) {
	_, _, _, err := parseRows([][]string{
		{"not-a-uuid", "Menu", "d"},
	})
	assert.Error(t, err)

	_, _, _, err = parseRows([][]string{
		{menuA.String(), "Menu", "d"},
		{"", submenu1.String(), "Submenu", "d"},
		{"", "", dish1.String(), "Dish", "d", "not-a-price", "10"},
	})
	assert.Error(t, err)
}

func TestParseRows_SkipsBlankRows(t *testing.T) {
	menus, submenus, dishes, err := parseRows([][]string{
		{menuA.String(), "Menu", "d"},
		{},
		{"", "", ""},
	})
	require.NoError(t, err)
	assert.Len(t, menus, 1)
	assert.Empty(t, submenus)
	assert.Empty(t, dishes)
}
