package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdsretail/stockroom/internal/model"
)

func catalogFixture(t *testing.T) *Engine {
	t.Helper()
	e := newTestEngine(t)
	_, err := e.AddStockItem("Milk", model.CategoryLiquid, "", 5000, 1000)
	require.NoError(t, err)
	_, err = e.AddStockItem("Chocolate", model.CategoryPowder, "", 1000, 200)
	require.NoError(t, err)
	return e
}

func TestAddMenuItem(t *testing.T) {
	e := catalogFixture(t)

	item, err := e.AddMenuItem("Iced Chocolate", "https://img.example/ic.jpg", []model.RecipeIngredient{
		{StockItemID: "s1", Quantity: 250},
		{StockItemID: "s2", Quantity: 40, Unit: model.UnitGram},
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", item.ID)
	assert.True(t, item.IsActive, "new items default to active")
	require.Len(t, item.Ingredients, 2)
	assert.Equal(t, model.UnitMilliliter, item.Ingredients[0].Unit, "empty unit copied from the stock item")
	assert.Equal(t, model.UnitGram, item.Ingredients[1].Unit)
}

func TestAddMenuItem_Validation(t *testing.T) {
	e := catalogFixture(t)

	tests := []struct {
		name        string
		itemName    string
		ingredients []model.RecipeIngredient
	}{
		{"empty name", "", []model.RecipeIngredient{{StockItemID: "s1", Quantity: 1}}},
		{"empty recipe", "Latte", nil},
		{"zero quantity", "Latte", []model.RecipeIngredient{{StockItemID: "s1", Quantity: 0}}},
		{"negative quantity", "Latte", []model.RecipeIngredient{{StockItemID: "s1", Quantity: -5}}},
		{"unknown stock item", "Latte", []model.RecipeIngredient{{StockItemID: "s404", Quantity: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.AddMenuItem(tt.itemName, "", tt.ingredients)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
	assert.Empty(t, e.Menu())
}

func TestAddMenuItem_DuplicateLinesKeptAsAuthored(t *testing.T) {
	e := catalogFixture(t)

	item, err := e.AddMenuItem("Double Milk", "", []model.RecipeIngredient{
		{StockItemID: "s1", Quantity: 10},
		{StockItemID: "s1", Quantity: 5},
	})
	require.NoError(t, err)
	// Stored as two lines; summing happens only at demand aggregation.
	require.Len(t, item.Ingredients, 2)
	assert.Equal(t, float64(10), item.Ingredients[0].Quantity)
	assert.Equal(t, float64(5), item.Ingredients[1].Quantity)
}

func TestUpdateMenuItem_PartialMerge(t *testing.T) {
	e := catalogFixture(t)
	_, err := e.AddMenuItem("Latte", "old.jpg", []model.RecipeIngredient{{StockItemID: "s1", Quantity: 200}})
	require.NoError(t, err)

	name := "Caffe Latte"
	inactive := false
	got, err := e.UpdateMenuItem("m1", MenuItemUpdate{Name: &name, IsActive: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "Caffe Latte", got.Name)
	assert.False(t, got.IsActive)
	assert.Equal(t, "old.jpg", got.ImageURL, "unset fields are untouched")
	assert.Len(t, got.Ingredients, 1)
}

func TestUpdateMenuItem_IngredientsFullyReplaced(t *testing.T) {
	e := catalogFixture(t)
	_, err := e.AddMenuItem("Latte", "", []model.RecipeIngredient{{StockItemID: "s1", Quantity: 200}})
	require.NoError(t, err)

	recipe := []model.RecipeIngredient{{StockItemID: "s2", Quantity: 30}}
	got, err := e.UpdateMenuItem("m1", MenuItemUpdate{Ingredients: &recipe})
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "s2", got.Ingredients[0].StockItemID)
	assert.Equal(t, model.UnitGram, got.Ingredients[0].Unit, "unit re-copied when re-pointed")
}

func TestUpdateMenuItem_RejectedUpdateLeavesItemUntouched(t *testing.T) {
	e := catalogFixture(t)
	_, err := e.AddMenuItem("Latte", "", []model.RecipeIngredient{{StockItemID: "s1", Quantity: 200}})
	require.NoError(t, err)

	name := "Renamed"
	bad := []model.RecipeIngredient{{StockItemID: "s404", Quantity: 1}}
	_, err = e.UpdateMenuItem("m1", MenuItemUpdate{Name: &name, Ingredients: &bad})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	got, err := e.MenuItem("m1")
	require.NoError(t, err)
	assert.Equal(t, "Latte", got.Name, "partial merge must not survive a rejected update")
	assert.Equal(t, "s1", got.Ingredients[0].StockItemID)
}

func TestUpdateMenuItem_NotFound(t *testing.T) {
	e := catalogFixture(t)
	name := "Ghost"
	_, err := e.UpdateMenuItem("m404", MenuItemUpdate{Name: &name})
	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))
}

func TestRemoveMenuItem(t *testing.T) {
	e := catalogFixture(t)
	_, err := e.AddMenuItem("Latte", "", []model.RecipeIngredient{{StockItemID: "s1", Quantity: 200}})
	require.NoError(t, err)

	require.NoError(t, e.RemoveMenuItem("m1"))
	_, err = e.MenuItem("m1")
	assert.True(t, IsNotFoundError(err))

	err = e.RemoveMenuItem("m1")
	assert.True(t, IsNotFoundError(err))
}

func TestRemoveMenuItem_SalesKeepTheirID(t *testing.T) {
	e := catalogFixture(t)
	_, err := e.AddMenuItem("Latte", "", []model.RecipeIngredient{{StockItemID: "s1", Quantity: 200}})
	require.NoError(t, err)
	_, err = e.RecordSale([]model.SaleLine{{MenuItemID: "m1", Quantity: 2}})
	require.NoError(t, err)

	require.NoError(t, e.RemoveMenuItem("m1"))

	sales := e.Sales()
	require.Len(t, sales, 1)
	assert.Equal(t, "m1", sales[0].Items[0].MenuItemID)
}

func TestSetMenuItemActive(t *testing.T) {
	e := catalogFixture(t)
	_, err := e.AddMenuItem("Latte", "", []model.RecipeIngredient{{StockItemID: "s1", Quantity: 200}})
	require.NoError(t, err)

	require.NoError(t, e.SetMenuItemActive("m1", false))
	got, err := e.MenuItem("m1")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Len(t, got.Ingredients, 1, "toggling activity must not touch the recipe")

	assert.True(t, IsNotFoundError(e.SetMenuItemActive("m404", true)))
}
