package telegram

import (
	"fmt"
	"strings"

	"grocery-planner/internal/grocery"
	"grocery-planner/internal/mealplan"
)

// formatListMarkdown renders a grocery list as Telegram markdown, one
// section per non-empty category with a subtotal, followed by the plan
// total and, when an estimate exists, the budget difference.
func formatListMarkdown(list grocery.List, plan *mealplan.MealPlan) string {
	var sb strings.Builder
	sb.WriteString("🛒 *Grocery List*\n")

	for _, category := range grocery.Categories {
		items := list.Items(category)
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n*%s*\n", category)
		for _, item := range items {
			mark := "•"
			if item.Checked {
				mark = "✅"
			}
			fmt.Fprintf(&sb, "%s %s x%v", mark, item.Name, item.Quantity)
			if item.Price != nil {
				fmt.Fprintf(&sb, " — $%.2f %s", *item.Price, item.Unit)
			}
			sb.WriteString("\n")
		}
		if total := list.CategoryTotal(category); total > 0 {
			fmt.Fprintf(&sb, "_Subtotal: $%.2f_\n", total)
		}
	}

	if total := list.PlanTotal(); total > 0 {
		fmt.Fprintf(&sb, "\n💰 *Total: $%.2f*\n", total)
	}
	if plan != nil && plan.EstimatedCost != nil {
		diff := list.DiffFromEstimate(*plan.EstimatedCost)
		if diff > 0 {
			fmt.Fprintf(&sb, "⚠️ $%.2f over the $%.2f estimate\n", diff, *plan.EstimatedCost)
		} else {
			fmt.Fprintf(&sb, "👍 $%.2f under the $%.2f estimate\n", -diff, *plan.EstimatedCost)
		}
	}
	return sb.String()
}

// formatPlanMarkdown renders the week's meals.
func formatPlanMarkdown(planID int64, plan *mealplan.MealPlan) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 *Meal Plan %d*\n", planID)

	for _, day := range plan.Days {
		fmt.Fprintf(&sb, "\n*%s*\n", day.Day)
		slots := []struct {
			label string
			meal  *mealplan.Meal
		}{
			{"Breakfast", day.Breakfast},
			{"Lunch", day.Lunch},
			{"Dinner", day.Dinner},
			{"Snacks", day.Snacks},
		}
		for _, slot := range slots {
			if slot.meal == nil || slot.meal.Name == "" {
				continue
			}
			fmt.Fprintf(&sb, "%s: %s\n", slot.label, slot.meal.Name)
		}
	}
	return sb.String()
}
