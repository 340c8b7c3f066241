package grocery

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestListMutations(t *testing.T) {
	t.Run("AddItem", func(t *testing.T) {
		list := NewList()
		if err := list.AddItem(CategoryProteins, "salmon"); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}

		items := list.Items(CategoryProteins)
		if len(items) != 1 || items[0].Name != "Salmon" {
			t.Fatalf("Expected normalized 'Salmon', got %v", items)
		}
		if items[0].Quantity != 1 || items[0].Price != nil {
			t.Errorf("Expected default quantity 1 and no price, got %v", items[0])
		}
	})

	t.Run("AddItemDuplicate", func(t *testing.T) {
		list := NewList()
		_ = list.AddItem(CategoryProteins, "Salmon")

		err := list.AddItem(CategoryProteins, "SALMON")
		var dup *DuplicateItemError
		if !errors.As(err, &dup) {
			t.Fatalf("Expected DuplicateItemError, got %v", err)
		}
		if dup.Name != "Salmon" {
			t.Errorf("Expected error to carry the canonical name, got %q", dup.Name)
		}
		// Same name in a different category is fine.
		if err := list.AddItem(CategoryOther, "Salmon"); err != nil {
			t.Errorf("Expected no error for other category, got %v", err)
		}
	})

	t.Run("AddItemUnknownCategoryRoutesToOther", func(t *testing.T) {
		list := NewList()
		if err := list.AddItem(Category("Frozen"), "Waffles"); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		if len(list.Items(CategoryOther)) != 1 {
			t.Errorf("Expected item routed into Other, got %v", list)
		}
	})

	t.Run("RemoveItemIdempotent", func(t *testing.T) {
		list := NewList()
		_ = list.AddItem(CategoryProteins, "Salmon")

		list.RemoveItem(CategoryProteins, "salmon")
		if len(list.Items(CategoryProteins)) != 0 {
			t.Fatal("Expected item removed")
		}
		// Removing again must not error or panic.
		list.RemoveItem(CategoryProteins, "salmon")
		list.RemoveItem(Category("NoSuchCategory"), "salmon")
	})

	t.Run("SetQuantity", func(t *testing.T) {
		list := NewList()
		_ = list.AddItem(CategoryProteins, "Salmon")

		if err := list.SetQuantity(CategoryProteins, "Salmon", 0.5); err != nil {
			t.Fatalf("Expected fractional quantity to be accepted, got %v", err)
		}
		if got := list.Items(CategoryProteins)[0].Quantity; got != 0.5 {
			t.Errorf("Expected quantity 0.5, got %v", got)
		}

		for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			err := list.SetQuantity(CategoryProteins, "Salmon", bad)
			var invalid *InvalidQuantityError
			if !errors.As(err, &invalid) {
				t.Errorf("Expected InvalidQuantityError for %v, got %v", bad, err)
			}
		}
		if got := list.Items(CategoryProteins)[0].Quantity; got != 0.5 {
			t.Errorf("Rejected edits must not change quantity, got %v", got)
		}
	})

	t.Run("SetPrice", func(t *testing.T) {
		list := NewList()
		_ = list.AddItem(CategoryProteins, "Salmon")

		if err := list.SetPrice(CategoryProteins, "Salmon", 12.99, "per lb"); err != nil {
			t.Fatalf("SetPrice failed: %v", err)
		}
		item := list.Items(CategoryProteins)[0]
		if item.Price == nil || *item.Price != 12.99 || item.Unit != "per lb" {
			t.Errorf("Expected price 12.99 per lb, got %v", item)
		}

		err := list.SetPrice(CategoryProteins, "Salmon", -1, "")
		var invalid *InvalidPriceError
		if !errors.As(err, &invalid) {
			t.Errorf("Expected InvalidPriceError, got %v", err)
		}

		// Zero is a valid price, distinct from "no price".
		if err := list.SetPrice(CategoryProteins, "Salmon", 0, "each"); err != nil {
			t.Errorf("Expected zero price to be accepted, got %v", err)
		}
	})

	t.Run("NotesAndChecked", func(t *testing.T) {
		list := NewList()
		_ = list.AddItem(CategoryFruits, "Berries")

		list.SetNotes(CategoryFruits, "Berries", "frozen is fine")
		list.ToggleChecked(CategoryFruits, "Berries")

		item := list.Items(CategoryFruits)[0]
		if item.Notes != "frozen is fine" || !item.Checked {
			t.Errorf("Expected notes and checked set, got %v", item)
		}

		list.ToggleChecked(CategoryFruits, "Berries")
		if list.Items(CategoryFruits)[0].Checked {
			t.Error("Expected checked toggled back off")
		}
	})

	t.Run("ApplyQuote", func(t *testing.T) {
		list := NewList()
		_ = list.AddItem(CategoryProteins, "Salmon")

		if !list.ApplyQuote(CategoryProteins, "salmon", 9.5, "per lb") {
			t.Fatal("Expected quote to be applied")
		}
		if item := list.Items(CategoryProteins)[0]; item.Price == nil || *item.Price != 9.5 {
			t.Errorf("Expected price 9.5, got %v", item)
		}

		// Unmatched lookups are discarded silently.
		if list.ApplyQuote(CategoryProteins, "Tuna", 3.0, "each") {
			t.Error("Expected unmatched quote to be discarded")
		}
		if list.ApplyQuote(CategoryProteins, "Salmon", -3.0, "each") {
			t.Error("Expected negative quote to be discarded")
		}

		// Last write wins on overlapping lookups.
		list.ApplyQuote(CategoryProteins, "Salmon", 11.0, "per lb")
		if item := list.Items(CategoryProteins)[0]; *item.Price != 11.0 {
			t.Errorf("Expected last quote to win, got %v", *item.Price)
		}
	})
}

func TestReconcile(t *testing.T) {
	t.Run("MergesDuplicates", func(t *testing.T) {
		price := 2.5
		list := List{
			"Proteins": {
				{Name: "Chicken", Quantity: 2, Price: &price, Unit: "per lb", Checked: true},
				{Name: "Salmon", Quantity: 1},
				{Name: "chicken", Quantity: 3},
			},
		}

		list.Reconcile()

		items := list.Items(CategoryProteins)
		if len(items) != 2 {
			t.Fatalf("Expected 2 items after reconcile, got %d", len(items))
		}
		chicken := items[0]
		if chicken.Name != "Chicken" || chicken.Quantity != 5 {
			t.Errorf("Expected Chicken x5, got %v", chicken)
		}
		if chicken.Price == nil || *chicken.Price != 2.5 || !chicken.Checked {
			t.Errorf("Expected first occurrence to keep price and checked state, got %v", chicken)
		}
		if items[1].Name != "Salmon" {
			t.Errorf("Expected insertion order preserved, got %v", items)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		list := List{
			"Proteins": {
				{Name: "Chicken", Quantity: 1},
				{Name: "chicken", Quantity: 2},
			},
			"Fruits": {{Name: "Berries", Quantity: 1}},
		}

		list.Reconcile()
		after := make(List, len(list))
		for k, v := range list {
			after[k] = append([]Item(nil), v...)
		}

		list.Reconcile()
		if !reflect.DeepEqual(list, after) {
			t.Errorf("Expected reconcile to be idempotent, got %v then %v", after, list)
		}
	})

	t.Run("PreservesUnknownCategories", func(t *testing.T) {
		list := List{
			"Frozen": {
				{Name: "Waffles", Quantity: 1},
				{Name: "waffles", Quantity: 1},
			},
		}
		list.Reconcile()
		if len(list["Frozen"]) != 1 || list["Frozen"][0].Quantity != 2 {
			t.Errorf("Expected unknown category deduplicated in place, got %v", list["Frozen"])
		}
	})
}

func TestTotals(t *testing.T) {
	t.Run("ScenarioTotals", func(t *testing.T) {
		list := NewList()
		_ = list.AddItem(CategoryProteins, "Salmon")
		_ = list.AddItem(CategoryVegetables, "Broccoli")

		if err := list.SetPrice(CategoryProteins, "Salmon", 12.99, "per lb"); err != nil {
			t.Fatalf("SetPrice failed: %v", err)
		}
		if err := list.SetQuantity(CategoryProteins, "Salmon", 2); err != nil {
			t.Fatalf("SetQuantity failed: %v", err)
		}

		if got := list.CategoryTotal(CategoryProteins); !almostEqual(got, 25.98) {
			t.Errorf("Expected category total 25.98, got %v", got)
		}
		// Broccoli is unpriced and contributes nothing.
		if got := list.PlanTotal(); !almostEqual(got, 25.98) {
			t.Errorf("Expected plan total 25.98, got %v", got)
		}
	})

	t.Run("MonotonicUnderPartialPricing", func(t *testing.T) {
		list := NewList()
		_ = list.AddItem(CategoryProteins, "Salmon")
		_ = list.AddItem(CategoryProteins, "Chicken")

		before := list.CategoryTotal(CategoryProteins)
		list.ApplyQuote(CategoryProteins, "Chicken", 4.0, "per lb")
		after := list.CategoryTotal(CategoryProteins)
		if after < before {
			t.Errorf("Expected total to not decrease when a price lands, got %v -> %v", before, after)
		}

		list.RemoveItem(CategoryProteins, "Chicken")
		if got := list.CategoryTotal(CategoryProteins); got > after {
			t.Errorf("Expected total to not increase after removal, got %v -> %v", after, got)
		}
	})

	t.Run("DiffFromEstimate", func(t *testing.T) {
		list := NewList()
		_ = list.AddItem(CategoryProteins, "Salmon")
		list.ApplyQuote(CategoryProteins, "Salmon", 30, "per lb")

		if got := list.DiffFromEstimate(25); !almostEqual(got, 5) {
			t.Errorf("Expected diff +5 (over budget), got %v", got)
		}
		if got := list.DiffFromEstimate(40); !almostEqual(got, -10) {
			t.Errorf("Expected diff -10 (under budget), got %v", got)
		}
	})
}
