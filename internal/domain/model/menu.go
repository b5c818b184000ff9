package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuCategory is the closed set of menu sections.
type MenuCategory string

const (
	CategoryAppetizer  MenuCategory = "Appetizer"
	CategoryMainCourse MenuCategory = "Main Course"
	CategoryDessert    MenuCategory = "Dessert"
	CategoryBeverage   MenuCategory = "Beverage"
)

// Categories lists every valid menu category.
func Categories() []MenuCategory {
	return []MenuCategory{CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage}
}

// Valid reports whether the category is one of the known labels.
func (c MenuCategory) Valid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage:
		return true
	}
	return false
}

// MenuItem describes a sellable catalog entry.
type MenuItem struct {
	ID              int64
	Name            string
	Description     string
	Category        MenuCategory
	Price           decimal.Decimal
	Ingredients     []string
	IsAvailable     bool
	PreparationTime *int
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MenuFilter narrows catalog listings. Nil fields impose no constraint.
type MenuFilter struct {
	Category  *MenuCategory
	Available *bool
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
}

// MenuItemPatch carries a partial update. Nil fields keep the stored value.
type MenuItemPatch struct {
	Name            *string
	Description     *string
	Category        *MenuCategory
	Price           *decimal.Decimal
	Ingredients     []string
	IsAvailable     *bool
	PreparationTime *int
	ImageURL        *string
}
