package grocery

import (
	"strings"

	"grocery-planner/internal/mealplan"
)

// BuildList derives a fresh grocery list from a meal plan. Every meal name
// is tokenized and each token categorized; within a category the first
// occurrence of a name creates an item with quantity 1 and every later
// occurrence increments that item's quantity. Insertion order is preserved,
// so the list reads in the order items first appeared in the week.
//
// BuildList is only used when no persisted list exists for the plan; loaded
// lists go through Reconcile instead so manual edits survive.
func BuildList(plan *mealplan.MealPlan, categorizer *Categorizer) List {
	list := NewList()
	if plan == nil {
		return list
	}

	for _, mealName := range plan.MealNames() {
		for _, label := range Tokenize(mealName) {
			category := categorizer.Categorize(label)
			list.addOccurrence(category, label)
		}
	}
	return list
}

// addOccurrence merges one token occurrence into the list under
// construction.
func (l List) addOccurrence(category Category, label string) {
	key := routeCategory(category)
	lower := strings.ToLower(label)
	for i, item := range l[key] {
		if strings.ToLower(item.Name) == lower {
			l[key][i].Quantity++
			return
		}
	}
	l[key] = append(l[key], Item{Name: label, Quantity: 1})
}
