package models

// Nutrients holds the ten nutrient values tracked per meal and per dish.
// For a Dish the values are per single portion; for a Meal they are the
// absolute values already scaled by the portion count.
type Nutrients struct {
	Calories  float64 `json:"calories" example:"200"`
	Protein   float64 `json:"protein" example:"10"`
	Carbs     float64 `json:"carbs" example:"25"`
	Fats      float64 `json:"fats" example:"8"`
	Fiber     float64 `json:"fiber" example:"3"`
	Iron      float64 `json:"iron" example:"1.5"`
	Calcium   float64 `json:"calcium" example:"120"`
	Potassium float64 `json:"potassium" example:"300"`
	VitaminA  float64 `json:"vitamin_a" example:"450"`
	VitaminC  float64 `json:"vitamin_c" example:"12"`
}

// Scale returns a copy with every value multiplied by the portion count.
func (n Nutrients) Scale(portions float64) Nutrients {
	return Nutrients{
		Calories:  n.Calories * portions,
		Protein:   n.Protein * portions,
		Carbs:     n.Carbs * portions,
		Fats:      n.Fats * portions,
		Fiber:     n.Fiber * portions,
		Iron:      n.Iron * portions,
		Calcium:   n.Calcium * portions,
		Potassium: n.Potassium * portions,
		VitaminA:  n.VitaminA * portions,
		VitaminC:  n.VitaminC * portions,
	}
}

// Add returns the element-wise sum of two nutrient sets.
func (n Nutrients) Add(other Nutrients) Nutrients {
	return Nutrients{
		Calories:  n.Calories + other.Calories,
		Protein:   n.Protein + other.Protein,
		Carbs:     n.Carbs + other.Carbs,
		Fats:      n.Fats + other.Fats,
		Fiber:     n.Fiber + other.Fiber,
		Iron:      n.Iron + other.Iron,
		Calcium:   n.Calcium + other.Calcium,
		Potassium: n.Potassium + other.Potassium,
		VitaminA:  n.VitaminA + other.VitaminA,
		VitaminC:  n.VitaminC + other.VitaminC,
	}
}
