package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), "category %q should be valid", c)
	}
	assert.False(t, Category("Gas").Valid())
	assert.False(t, Category("").Valid())
}

func TestUnit_Valid(t *testing.T) {
	for _, u := range Units {
		assert.True(t, u.Valid(), "unit %q should be valid", u)
	}
	assert.False(t, Unit("oz").Valid())
	assert.False(t, Unit("").Valid())
}

func TestDefaultUnit(t *testing.T) {
	assert.Equal(t, UnitMilliliter, DefaultUnit(CategoryLiquid))
	assert.Equal(t, UnitGram, DefaultUnit(CategoryPowder))
	assert.Equal(t, UnitGram, DefaultUnit(CategorySolid))
	assert.Equal(t, UnitPiece, DefaultUnit(CategoryPiece))
}

func TestStockItem_LowStock(t *testing.T) {
	s := StockItem{RemainingQuantity: 100, AlertThreshold: 100}
	assert.True(t, s.LowStock(), "at threshold counts as low")

	s.RemainingQuantity = 100.5
	assert.False(t, s.LowStock())

	s.RemainingQuantity = 0
	assert.True(t, s.LowStock())
}

func TestState_Clone_Independent(t *testing.T) {
	st := State{
		Stock: []StockItem{{ID: "s1", Name: "Milk", RemainingQuantity: 500}},
		Menu: []MenuItem{{
			ID:          "m1",
			Name:        "Latte",
			Ingredients: []RecipeIngredient{{StockItemID: "s1", Quantity: 200, Unit: UnitMilliliter}},
		}},
		Sales: []Sale{{ID: "sl1", Timestamp: 1000, Items: []SaleLine{{MenuItemID: "m1", Quantity: 2}}}},
	}

	clone := st.Clone()
	require.Equal(t, st, clone)

	// Mutating the clone must not reach back into the original.
	clone.Stock[0].RemainingQuantity = 0
	clone.Menu[0].Ingredients[0].Quantity = 999
	clone.Sales[0].Items[0].Quantity = 999

	assert.Equal(t, float64(500), st.Stock[0].RemainingQuantity)
	assert.Equal(t, float64(200), st.Menu[0].Ingredients[0].Quantity)
	assert.Equal(t, float64(2), st.Sales[0].Items[0].Quantity)
}

func TestState_Find(t *testing.T) {
	st := State{
		Stock: []StockItem{{ID: "s1"}, {ID: "s2"}},
		Menu:  []MenuItem{{ID: "m1"}},
	}

	got, ok := st.FindStock("s2")
	require.True(t, ok)
	assert.Equal(t, "s2", got.ID)

	_, ok = st.FindStock("s9")
	assert.False(t, ok)

	_, ok = st.FindMenu("m1")
	assert.True(t, ok)
	_, ok = st.FindMenu("m9")
	assert.False(t, ok)
}

func TestSequenceGenerator(t *testing.T) {
	g := NewSequenceGenerator()
	assert.Equal(t, "s1", g.NewID(IDKindStock))
	assert.Equal(t, "s2", g.NewID(IDKindStock))
	assert.Equal(t, "m1", g.NewID(IDKindMenu))
	assert.Equal(t, "sl1", g.NewID(IDKindSale))
	assert.Equal(t, "s3", g.NewID(IDKindStock))
}

func TestUUIDGenerator_PrefixAndUniqueness(t *testing.T) {
	g := UUIDGenerator{}
	a := g.NewID(IDKindStock)
	b := g.NewID(IDKindStock)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^s_[0-9a-f-]{36}$`, a)
	assert.Regexp(t, `^sl_[0-9a-f-]{36}$`, g.NewID(IDKindSale))
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Whole Milk", NormalizeName("  Whole Milk "))
	// NFD "é" (e + combining acute) normalizes to the NFC single rune.
	assert.Equal(t, "Café", NormalizeName("Café"))
}
