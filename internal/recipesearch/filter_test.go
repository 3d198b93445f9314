package recipesearch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRecipe(title, raw string) Recipe {
	return Recipe{Title: title, Raw: json.RawMessage(raw)}
}

func TestFilterExcluded(t *testing.T) {
	recipes := []Recipe{
		testRecipe("Lentil Soup", `{"Recipe_title":"Lentil Soup","ingredients":"lentils, onion"}`),
		testRecipe("Satay", `{"Recipe_title":"Satay","ingredients":"chicken, Peanut sauce"}`),
		testRecipe("Caprese", `{"Recipe_title":"Caprese","ingredients":"tomato, mozzarella"}`),
	}

	kept := FilterExcluded(recipes, []string{"peanut"})

	assert.Len(t, kept, 2)
	assert.Equal(t, "Lentil Soup", kept[0].Title)
	assert.Equal(t, "Caprese", kept[1].Title)
}

func TestFilterExcludedMatchesAnyField(t *testing.T) {
	// The match runs over the whole serialized record, so a term inside
	// the title alone also excludes the recipe.
	recipes := []Recipe{
		testRecipe("Peanut-Free Granola", `{"Recipe_title":"Peanut-Free Granola","ingredients":"oats, honey"}`),
	}

	kept := FilterExcluded(recipes, []string{"peanut"})
	assert.Empty(t, kept)
}

func TestFilterExcludedNoTerms(t *testing.T) {
	recipes := []Recipe{
		testRecipe("Lentil Soup", `{"Recipe_title":"Lentil Soup"}`),
	}

	assert.Equal(t, recipes, FilterExcluded(recipes, nil))
	assert.Equal(t, recipes, FilterExcluded(recipes, []string{"", "   "}))
}

func TestFilterExcludedCaseInsensitive(t *testing.T) {
	recipes := []Recipe{
		testRecipe("Shrimp Pad Thai", `{"Recipe_title":"Shrimp Pad Thai","ingredients":"SHRIMP, noodles"}`),
	}

	kept := FilterExcluded(recipes, []string{"Shrimp"})
	assert.Empty(t, kept)
}
