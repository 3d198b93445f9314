package gemini

import (
	"encoding/json"
	"strings"
)

// NutritionEstimate is the typed result of a food-image analysis. Values
// are per single portion.
type NutritionEstimate struct {
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fats      float64 `json:"fats"`
	Fiber     float64 `json:"fiber"`
	Iron      float64 `json:"iron"`
	Calcium   float64 `json:"calcium"`
	Potassium float64 `json:"potassium"`
	VitaminA  float64 `json:"vitaminA"`
	VitaminC  float64 `json:"vitaminC"`
}

// DefaultNutritionEstimate is the fallback payload used when the model
// returns something that is not parseable JSON.
func DefaultNutritionEstimate() NutritionEstimate {
	return NutritionEstimate{Name: "Unknown Food"}
}

// StripCodeFences removes markdown ```json fences the model sometimes
// wraps its output in.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// ParseNutritionEstimate parses the model's JSON nutrition payload.
// Parsing is best-effort: malformed output yields the default estimate
// and ok=false rather than an error.
func ParseNutritionEstimate(text string) (NutritionEstimate, bool) {
	var estimate NutritionEstimate
	if err := json.Unmarshal([]byte(StripCodeFences(text)), &estimate); err != nil {
		return DefaultNutritionEstimate(), false
	}
	return estimate, true
}

// ParseDishNames parses a JSON array of dish names. Falls back to
// line-delimited parsing when the payload is not a JSON array.
func ParseDishNames(text string) []string {
	cleaned := StripCodeFences(text)

	var names []string
	if err := json.Unmarshal([]byte(cleaned), &names); err == nil {
		return trimEmpty(names)
	}
	return ParseDishSuggestions(cleaned)
}

// ParseDishSuggestions splits line-delimited suggestions, dropping list
// numbering like "1. " and empty lines.
func ParseDishSuggestions(text string) []string {
	lines := strings.Split(text, "\n")
	suggestions := make([]string, 0, len(lines))
	for _, line := range lines {
		suggestions = append(suggestions, stripListPrefix(line))
	}
	return trimEmpty(suggestions)
}

func stripListPrefix(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-*• ")

	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		line = line[i+1:]
	}
	return strings.TrimSpace(line)
}

func trimEmpty(items []string) []string {
	out := items[:0]
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
