package grocery

import "strings"

// Categorizer assigns item labels to categories using ordered keyword rules.
// It holds no mutable state, so a single instance is safe to share.
type Categorizer struct {
	rules []KeywordRule
}

// NewCategorizer creates a Categorizer from the given rules. The rule order
// is the matching priority order.
func NewCategorizer(rules []KeywordRule) *Categorizer {
	return &Categorizer{rules: rules}
}

// NewDefaultCategorizer creates a Categorizer with the built-in rules.
func NewDefaultCategorizer() *Categorizer {
	return NewCategorizer(DefaultKeywordRules())
}

// Categorize maps a label to exactly one category. The label is lowercased
// and tested for substring containment against each rule's keywords in
// priority order; the first matching rule wins regardless of how many later
// rules would also match. Labels matching nothing land in CategoryOther.
func (c *Categorizer) Categorize(label string) Category {
	lower := strings.ToLower(label)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category
			}
		}
	}
	return CategoryOther
}
