package grocery

import (
	"strings"
	"unicode"
)

// stopwords are connective words that show up in meal names but never name
// a grocery item on their own.
var stopwords = map[string]struct{}{
	"with": {},
	"and":  {},
	"the":  {},
	"for":  {},
	"from": {},
	"over": {},
	"your": {},
	"then": {},
}

// Tokenize extracts candidate grocery item labels from a meal's free-text
// name. The string is split on whitespace and commas; words of more than
// three characters that are not stopwords survive, in display form (first
// rune upper, remainder lower). Duplicate words within the same meal name
// collapse to one token. Tokenize never fails; empty or malformed input
// simply yields no tokens.
func Tokenize(mealName string) []string {
	if mealName == "" {
		return nil
	}

	fields := strings.FieldsFunc(mealName, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	seen := make(map[string]struct{}, len(fields))
	var tokens []string
	for _, field := range fields {
		lower := strings.ToLower(field)
		if len(lower) <= 3 {
			continue
		}
		if _, stop := stopwords[lower]; stop {
			continue
		}

		label := displayForm(lower)
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		tokens = append(tokens, label)
	}
	return tokens
}

// displayForm capitalizes the first rune of an already-lowercased word.
func displayForm(word string) string {
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
