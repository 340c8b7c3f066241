package grocery

import "fmt"

// DuplicateItemError is returned when a manual add targets a name that
// already exists in the category (case-insensitive).
type DuplicateItemError struct {
	Category Category
	Name     string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("item %q already exists in category %s", e.Name, e.Category)
}

// InvalidQuantityError is returned when a quantity edit is zero, negative
// or not a finite number.
type InvalidQuantityError struct {
	Quantity float64
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %v: must be a finite positive number", e.Quantity)
}

// InvalidPriceError is returned when a price edit is negative.
type InvalidPriceError struct {
	Price float64
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price %v: must be non-negative", e.Price)
}
