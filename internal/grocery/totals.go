package grocery

// CategoryTotal sums price × quantity across the category's items. Unpriced
// items contribute nothing. The value is derived on demand and never stored,
// so it cannot drift out of sync with the items.
func (l List) CategoryTotal(category Category) float64 {
	total := 0.0
	for _, item := range l[string(category)] {
		total += item.TotalCost()
	}
	return total
}

// PlanTotal sums the totals of every stored category, unknown ones included.
func (l List) PlanTotal() float64 {
	total := 0.0
	for category := range l {
		total += l.CategoryTotal(Category(category))
	}
	return total
}

// DiffFromEstimate returns how far the plan total sits from an externally
// supplied cost estimate. Positive means over budget, negative under.
func (l List) DiffFromEstimate(estimate float64) float64 {
	return l.PlanTotal() - estimate
}
