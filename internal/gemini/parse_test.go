package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripCodeFences(tt.input))
		})
	}
}

func TestParseNutritionEstimate(t *testing.T) {
	estimate, ok := ParseNutritionEstimate("```json\n{\"name\":\"Dal Tadka\",\"calories\":180,\"protein\":9,\"vitaminC\":4}\n```")
	assert.True(t, ok)
	assert.Equal(t, "Dal Tadka", estimate.Name)
	assert.Equal(t, 180.0, estimate.Calories)
	assert.Equal(t, 9.0, estimate.Protein)
	assert.Equal(t, 4.0, estimate.VitaminC)
}

func TestParseNutritionEstimateMalformed(t *testing.T) {
	estimate, ok := ParseNutritionEstimate("Sorry, I can't tell what this is.")
	assert.False(t, ok)
	assert.Equal(t, DefaultNutritionEstimate(), estimate)
	assert.Equal(t, "Unknown Food", estimate.Name)
	assert.Zero(t, estimate.Calories)
}

func TestParseDishNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			"json array",
			`["Biryani", "Pulao", "Khichdi"]`,
			[]string{"Biryani", "Pulao", "Khichdi"},
		},
		{
			"fenced json array",
			"```json\n[\"Biryani\", \"Pulao\"]\n```",
			[]string{"Biryani", "Pulao"},
		},
		{
			"numbered lines fallback",
			"1. Biryani\n2. Pulao\n3. Khichdi",
			[]string{"Biryani", "Pulao", "Khichdi"},
		},
		{
			"bulleted lines fallback",
			"- Biryani\n- Pulao",
			[]string{"Biryani", "Pulao"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseDishNames(tt.input))
		})
	}
}

func TestParseDishSuggestionsSkipsEmptyLines(t *testing.T) {
	suggestions := ParseDishSuggestions("1. Masala Dosa\n\n2) Uttapam\n   \n* Idli")
	assert.Equal(t, []string{"Masala Dosa", "Uttapam", "Idli"}, suggestions)
}
