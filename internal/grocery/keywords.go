package grocery

// KeywordRule pairs a category with the keywords that file an item under it.
// Matching is case-insensitive substring containment.
type KeywordRule struct {
	Category Category
	Keywords []string
}

// DefaultKeywordRules returns the built-in categorization rules in matching
// priority order. The order matters: an item matching keywords from two
// rules is filed under the earlier rule.
func DefaultKeywordRules() []KeywordRule {
	return []KeywordRule{
		{
			Category: CategoryProteins,
			Keywords: []string{
				"chicken", "beef", "pork", "turkey", "salmon", "tuna",
				"shrimp", "fish", "steak", "bacon", "sausage", "tofu",
				"lamb", "eggs", "tempeh", "meatball", "cod", "tilapia",
			},
		},
		{
			Category: CategoryVegetables,
			Keywords: []string{
				"broccoli", "spinach", "carrot", "pepper", "onion",
				"tomato", "lettuce", "kale", "cucumber", "zucchini",
				"asparagus", "cauliflower", "mushroom", "celery",
				"cabbage", "salad", "veggie", "vegetable", "squash",
				"green",
			},
		},
		{
			Category: CategoryFruits,
			Keywords: []string{
				"apple", "banana", "berries", "berry", "orange", "mango",
				"peach", "grape", "melon", "pineapple", "avocado",
				"lemon", "lime", "strawberr", "blueberr", "fruit",
			},
		},
		{
			Category: CategoryGrains,
			Keywords: []string{
				"rice", "pasta", "bread", "quinoa", "oats", "oatmeal",
				"noodle", "tortilla", "cereal", "bagel", "wrap", "toast",
				"granola", "couscous", "barley",
			},
		},
		{
			Category: CategoryDairy,
			Keywords: []string{
				"milk", "cheese", "yogurt", "greek", "butter", "cream",
				"parmesan", "mozzarella", "feta", "cheddar", "ricotta",
				"cottage",
			},
		},
	}
}
