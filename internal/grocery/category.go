package grocery

// Category is one of the fixed grocery groupings an item can land in.
type Category string

const (
	CategoryProteins   Category = "Proteins"
	CategoryVegetables Category = "Vegetables"
	CategoryFruits     Category = "Fruits"
	CategoryGrains     Category = "Grains"
	CategoryDairy      Category = "Dairy/Alternatives"
	CategoryOther      Category = "Other"
)

// Categories lists the closed category set in display and matching priority
// order. CategoryOther is last and acts as the fallback.
var Categories = []Category{
	CategoryProteins,
	CategoryVegetables,
	CategoryFruits,
	CategoryGrains,
	CategoryDairy,
	CategoryOther,
}

// IsKnown reports whether c belongs to the closed category set.
func IsKnown(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
