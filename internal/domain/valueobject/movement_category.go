package valueobject

import "fmt"

// MovementCategory classifies a movement as income or expense, and as belonging
// to the normal or fixed side of a pocket. The Spanish category names are the
// wire values the tracker has always stored.
type MovementCategory string

const (
	CategoryIngresoNormal MovementCategory = "INGRESO_NORMAL"
	CategoryIngresoFijo   MovementCategory = "INGRESO_FIJO"
	CategoryEgresoNormal  MovementCategory = "EGRESO_NORMAL"
	CategoryEgresoFijo    MovementCategory = "EGRESO_FIJO"
)

// validCategories contains all valid movement categories for validation.
var validCategories = map[MovementCategory]bool{
	CategoryIngresoNormal: true,
	CategoryIngresoFijo:   true,
	CategoryEgresoNormal:  true,
	CategoryEgresoFijo:    true,
}

// NewMovementCategory creates a validated MovementCategory from a string.
func NewMovementCategory(s string) (MovementCategory, error) {
	c := MovementCategory(s)
	if !validCategories[c] {
		return "", fmt.Errorf("invalid movement category: %q", s)
	}
	return c, nil
}

// String returns the string representation of the MovementCategory.
func (c MovementCategory) String() string {
	return string(c)
}

// IsIncome returns true if the category adds to a pocket's balance.
func (c MovementCategory) IsIncome() bool {
	return c == CategoryIngresoNormal || c == CategoryIngresoFijo
}

// IsExpense returns true if the category subtracts from a pocket's balance.
func (c MovementCategory) IsExpense() bool {
	return c == CategoryEgresoNormal || c == CategoryEgresoFijo
}
