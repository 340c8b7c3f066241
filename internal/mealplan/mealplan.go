package mealplan

// Meal represents a single meal slot in a day. Macros are optional and
// come straight from whatever generated the plan.
type Meal struct {
	Name     string   `json:"name"`
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`
}

// Day holds up to four meal slots. Any slot may be nil.
type Day struct {
	Day       string `json:"day"`
	Breakfast *Meal  `json:"breakfast,omitempty"`
	Lunch     *Meal  `json:"lunch,omitempty"`
	Dinner    *Meal  `json:"dinner,omitempty"`
	Snacks    *Meal  `json:"snacks,omitempty"`
}

// Meals returns the day's meal slots in their fixed order. Nil slots are
// included so callers can skip them explicitly.
func (d Day) Meals() []*Meal {
	return []*Meal{d.Breakfast, d.Lunch, d.Dinner, d.Snacks}
}

// MealPlan is a read-only weekly plan used as the input for grocery list
// generation.
type MealPlan struct {
	ID            int64    `json:"id,omitempty"`
	Days          []Day    `json:"days"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
}

// MealNames returns every non-empty meal name in the plan, walking days in
// order and slots in breakfast/lunch/dinner/snacks order. Repeated names are
// kept; consolidation counts on seeing every occurrence.
func (p *MealPlan) MealNames() []string {
	var names []string
	for _, day := range p.Days {
		for _, meal := range day.Meals() {
			if meal == nil || meal.Name == "" {
				continue
			}
			names = append(names, meal.Name)
		}
	}
	return names
}
