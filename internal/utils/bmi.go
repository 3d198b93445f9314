package utils

import "math"

// CalculateBMI expects height in centimeters and weight in kilograms and
// returns weight / height(m)^2 rounded to 2 decimals.
func CalculateBMI(weightKg, heightCm float64) float64 {
	heightInMeters := heightCm / 100.0
	bmi := weightKg / (heightInMeters * heightInMeters)
	return math.Round(bmi*100) / 100
}
