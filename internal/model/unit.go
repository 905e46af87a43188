package model

// Category classifies a stock item by physical form. The set is closed;
// anything not listed here is rejected at creation time.
type Category string

const (
	CategoryLiquid Category = "Liquid"
	CategoryPowder Category = "Powder"
	CategorySolid  Category = "Solid"
	CategoryPiece  Category = "Piece"
)

// Categories lists the valid categories in display order.
var Categories = []Category{CategoryLiquid, CategoryPowder, CategorySolid, CategoryPiece}

// Valid reports whether c is one of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryLiquid, CategoryPowder, CategorySolid, CategoryPiece:
		return true
	}
	return false
}

// Unit is an opaque measurement label. Units are copied from their owning
// stock item when a recipe line is authored and never converted — there is
// no ml-to-ltr arithmetic anywhere in the engine.
type Unit string

const (
	UnitMilliliter Unit = "ml"
	UnitLiter      Unit = "ltr"
	UnitGram       Unit = "gm"
	UnitKilogram   Unit = "kg"
	UnitPiece      Unit = "pcs"
)

// Units lists the valid unit labels.
var Units = []Unit{UnitMilliliter, UnitLiter, UnitGram, UnitKilogram, UnitPiece}

// Valid reports whether u is one of the known unit labels.
func (u Unit) Valid() bool {
	switch u {
	case UnitMilliliter, UnitLiter, UnitGram, UnitKilogram, UnitPiece:
		return true
	}
	return false
}

// DefaultUnit returns the conventional unit for a category. The unit is
// derived once at creation and stored independently afterwards; callers may
// override it with any valid unit.
func DefaultUnit(c Category) Unit {
	switch c {
	case CategoryLiquid:
		return UnitMilliliter
	case CategoryPowder, CategorySolid:
		return UnitGram
	case CategoryPiece:
		return UnitPiece
	}
	return UnitPiece
}
