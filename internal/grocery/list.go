package grocery

import (
	"math"
	"strings"
)

// Item is a single named, quantified, optionally priced line in a grocery
// list.
type Item struct {
	Name     string   `json:"name"`
	Quantity float64  `json:"quantity"`
	Price    *float64 `json:"price,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Notes    string   `json:"notes,omitempty"`
	Checked  bool     `json:"checked"`
}

// TotalCost returns the item's contribution to its category total. Unpriced
// items contribute zero; that is a normal state while lookups are pending.
func (i Item) TotalCost() float64 {
	if i.Price == nil {
		return 0
	}
	return *i.Price * i.Quantity
}

// List maps category names to their ordered item sequences. It is keyed by
// string rather than Category so that unknown categories found in persisted
// payloads survive a load/save round trip untouched; new items are only ever
// routed into the closed category set.
type List map[string][]Item

// NewList returns an empty grocery list.
func NewList() List {
	return List{}
}

// normalizeName produces the canonical display label for an item name.
func normalizeName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return displayForm(strings.ToLower(trimmed))
}

// findItem locates an item by case-insensitive name within a category.
func (l List) findItem(category, name string) (int, bool) {
	lower := strings.ToLower(name)
	for i, item := range l[category] {
		if strings.ToLower(item.Name) == lower {
			return i, true
		}
	}
	return 0, false
}

// routeCategory maps a target category into the closed set. Adds aimed at a
// category outside the set fall back to Other.
func routeCategory(category Category) string {
	if IsKnown(category) {
		return string(category)
	}
	return string(CategoryOther)
}

// AddItem appends a new unpriced item with quantity 1 to the category.
// It fails with a DuplicateItemError when the name is already present
// (case-insensitive) in that category.
func (l List) AddItem(category Category, name string) error {
	key := routeCategory(category)
	canonical := normalizeName(name)
	if canonical == "" {
		return nil
	}
	if _, exists := l.findItem(key, canonical); exists {
		return &DuplicateItemError{Category: Category(key), Name: canonical}
	}
	l[key] = append(l[key], Item{Name: canonical, Quantity: 1})
	return nil
}

// RemoveItem deletes the named item from the category. Removing an absent
// item is a no-op; removal is idempotent.
func (l List) RemoveItem(category Category, name string) {
	key := string(category)
	idx, ok := l.findItem(key, name)
	if !ok {
		return
	}
	l[key] = append(l[key][:idx], l[key][idx+1:]...)
}

// SetQuantity replaces the item's quantity. Quantities must be finite and
// strictly positive; fractional values are allowed.
func (l List) SetQuantity(category Category, name string, quantity float64) error {
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return &InvalidQuantityError{Quantity: quantity}
	}
	key := string(category)
	idx, ok := l.findItem(key, name)
	if !ok {
		return nil
	}
	l[key][idx].Quantity = quantity
	return nil
}

// SetPrice sets the item's per-unit price and unit label, overwriting any
// previous values. Negative prices are rejected.
func (l List) SetPrice(category Category, name string, price float64, unit string) error {
	if price < 0 {
		return &InvalidPriceError{Price: price}
	}
	key := string(category)
	idx, ok := l.findItem(key, name)
	if !ok {
		return nil
	}
	l[key][idx].Price = &price
	l[key][idx].Unit = unit
	return nil
}

// SetNotes replaces the item's free-text annotation.
func (l List) SetNotes(category Category, name, notes string) {
	key := string(category)
	if idx, ok := l.findItem(key, name); ok {
		l[key][idx].Notes = notes
	}
}

// ToggleChecked flips the item's shopping-progress flag.
func (l List) ToggleChecked(category Category, name string) {
	key := string(category)
	if idx, ok := l.findItem(key, name); ok {
		l[key][idx].Checked = !l[key][idx].Checked
	}
}

// ApplyQuote applies a fetched price to the named item within the category.
// Unmatched or negative quotes are discarded silently; partial pricing is an
// expected steady state. The last applied quote wins. The return value
// reports whether a matching item was updated.
func (l List) ApplyQuote(category Category, name string, price float64, unit string) bool {
	if price < 0 {
		return false
	}
	key := string(category)
	idx, ok := l.findItem(key, name)
	if !ok {
		return false
	}
	l[key][idx].Price = &price
	l[key][idx].Unit = unit
	return true
}

// Reconcile merges duplicate names within every stored category, restoring
// the uniqueness invariant on lists persisted before deduplication was
// enforced. Quantities of merged duplicates are summed; the first occurrence
// keeps its price, unit, notes and checked state. Reconciling an already
// clean list changes nothing, so the pass is idempotent.
func (l List) Reconcile() {
	for category, items := range l {
		if len(items) < 2 {
			continue
		}

		merged := make([]Item, 0, len(items))
		index := make(map[string]int, len(items))
		for _, item := range items {
			lower := strings.ToLower(item.Name)
			if at, seen := index[lower]; seen {
				merged[at].Quantity += item.Quantity
				continue
			}
			index[lower] = len(merged)
			merged = append(merged, item)
		}
		l[category] = merged
	}
}

// Items returns the ordered item sequence for a category. Categories missing
// from the list are treated as empty.
func (l List) Items(category Category) []Item {
	return l[string(category)]
}

// Len returns the total number of items across all categories.
func (l List) Len() int {
	n := 0
	for _, items := range l {
		n += len(items)
	}
	return n
}
