package recipesearch

import "strings"

// FilterExcluded drops recipes whose full serialized record contains any
// of the excluded terms as a case-insensitive substring. The match runs
// over every field, so a term appearing inside an unrelated value also
// excludes the recipe; that over-exclusion mirrors the upstream product
// behavior.
func FilterExcluded(recipes []Recipe, excluded []string) []Recipe {
	terms := make([]string, 0, len(excluded))
	for _, term := range excluded {
		if t := strings.ToLower(strings.TrimSpace(term)); t != "" {
			terms = append(terms, t)
		}
	}
	if len(terms) == 0 {
		return recipes
	}

	kept := make([]Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		text := strings.ToLower(string(recipe.Raw))
		if !containsAny(text, terms) {
			kept = append(kept, recipe)
		}
	}
	return kept
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
