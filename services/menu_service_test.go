package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/serdvr66/orderQPro/entity"
)

func TestDefaultSelectionSingles(t *testing.T) {
	item := testMargherita()
	sel := DefaultSelection(item)

	require.Equal(t, []string{"Klein"}, sel["Größe"])
	require.Empty(t, sel["Extras"])
	_, present := sel["Extras"]
	require.True(t, present, "multiple groups stay present even when empty")
}

func TestDefaultSelectionFixedPreselectionFallsBackToFirstOption(t *testing.T) {
	item := entity.MenuItem{
		UUID: "item-steak", Title: "Steak",
		Configurations: []entity.ItemConfiguration{
			{
				Title: "Garstufe", Type: entity.ConfigurationSingle, FixedPreselection: true,
				Options: []entity.ConfigurationOption{
					{Title: "Medium"},
					{Title: "Well Done"},
				},
			},
		},
	}
	sel := DefaultSelection(item)
	require.Equal(t, []string{"Medium"}, sel["Garstufe"])
}

func TestDefaultSelectionNoPreselectionLeavesSingleUnset(t *testing.T) {
	item := entity.MenuItem{
		Configurations: []entity.ItemConfiguration{
			{
				Title: "Sauce", Type: entity.ConfigurationSingle,
				Options: []entity.ConfigurationOption{{Title: "Ketchup"}, {Title: "Mayo"}},
			},
		},
	}
	_, present := DefaultSelection(item)["Sauce"]
	require.False(t, present)
}

func TestSelectionDeltaSumsChosenOptions(t *testing.T) {
	item := testMargherita()
	sel := entity.Selection{
		"Größe":  {"Groß"},
		"Extras": {"Extra Käse", "Knoblauch"},
	}
	// 1.50 + 1.00 + 0.50
	require.True(t, SelectionDelta(item, sel).Equal(entity.PriceFromString("3.00")))

	// a unit of that configuration prices at 8.50 + 3.00
	unit := item.Price.Add(SelectionDelta(item, sel))
	require.True(t, unit.Equal(entity.PriceFromString("11.50")))
}

func TestSelectionDeltaIgnoresUnknownTitles(t *testing.T) {
	item := testMargherita()
	sel := entity.Selection{"Größe": {"Riesig"}, "Beilagen": {"Pommes"}}
	require.True(t, SelectionDelta(item, sel).IsZero())
}

func TestToggleOptionSingleSwitches(t *testing.T) {
	item := testMargherita()
	sel := DefaultSelection(item)

	out := ToggleOption(item, sel, "Größe", "Groß")
	require.Equal(t, []string{"Groß"}, out["Größe"])
	require.Equal(t, []string{"Klein"}, sel["Größe"], "input selection untouched")
}

func TestToggleOptionMultipleTogglesMembership(t *testing.T) {
	item := testMargherita()
	sel := DefaultSelection(item)

	on := ToggleOption(item, sel, "Extras", "Extra Käse")
	require.Equal(t, []string{"Extra Käse"}, on["Extras"])

	off := ToggleOption(item, on, "Extras", "Extra Käse")
	require.Empty(t, off["Extras"])
}

func TestToggleOptionFixedIsInert(t *testing.T) {
	item := entity.MenuItem{
		Configurations: []entity.ItemConfiguration{
			{
				Title: "Basis", Type: entity.ConfigurationMultiple,
				Options: []entity.ConfigurationOption{
					{Title: "Teig", FixedPreselection: true},
				},
			},
		},
	}
	sel := entity.Selection{"Basis": {}}
	out := ToggleOption(item, sel, "Basis", "Teig")
	require.Empty(t, out["Basis"])
}

func TestProcessCategoriesFlattensAndFilters(t *testing.T) {
	soldOut := testCola()
	soldOut.SoldOut = true // sold out still shows on the board

	disabled := testCola()
	disabled.UUID = "item-off"
	disabled.IsEnabled = false

	categories := []entity.MenuCategory{
		{
			ID: 2, Title: "Getränke", Order: 2, IsEnabled: true,
			Items: []entity.MenuItem{soldOut, disabled},
		},
		{
			ID: 1, Title: "Speisen", Order: 1, IsEnabled: true,
			Items: []entity.MenuItem{testMargherita()},
			Subcategories: []entity.MenuCategory{
				{ID: 3, Title: "Vegan", Order: 1, IsEnabled: false, Items: []entity.MenuItem{testCola()}},
				{ID: 4, Title: "Wochenkarte", Order: 2, IsEnabled: true, Items: []entity.MenuItem{testCola()}},
			},
		},
		{ID: 5, Title: "Leer", Order: 0, IsEnabled: true},
	}

	processed := ProcessCategories(categories)
	require.Len(t, processed, 3)
	require.Equal(t, "Speisen", processed[0].Title)
	require.Equal(t, "Wochenkarte", processed[1].Title)
	require.Equal(t, "Getränke", processed[2].Title)
	require.Len(t, processed[2].Items, 1, "disabled item dropped, sold-out kept")
	require.Nil(t, processed[0].Subcategories)
}

func TestSearch(t *testing.T) {
	svc := NewMenuService(nil, testLogger())
	soldOut := testMargherita()
	soldOut.UUID = "item-gone"
	soldOut.Title = "Pizza Diavolo"
	soldOut.SoldOut = true

	svc.categories = []entity.MenuCategory{
		{Title: "Pizza", Items: []entity.MenuItem{testMargherita(), soldOut}},
		{Title: "Getränke", Items: []entity.MenuItem{testCola()}},
	}

	require.Len(t, svc.Search("pizza"), 1, "sold-out excluded from search")
	require.Len(t, svc.Search("MARGHERITA"), 1)
	require.Len(t, svc.Search("mozzarella"), 1, "description matches too")
	require.Empty(t, svc.Search("p"), "minimum two characters")
	require.Empty(t, svc.Search("  "))
}

func TestToggleable(t *testing.T) {
	free := entity.ItemConfiguration{}
	fixedGroup := entity.ItemConfiguration{FixedPreselection: true}
	fixedOpt := entity.ConfigurationOption{FixedPreselection: true}

	require.True(t, Toggleable(free, entity.ConfigurationOption{}))
	require.False(t, Toggleable(fixedGroup, entity.ConfigurationOption{}))
	require.False(t, Toggleable(free, fixedOpt))
}
