package utils

import "math"

// RoundWithTwoDecimalPlace arredonda valores monetários e percentuais do
// relatório para duas casas decimais.
func RoundWithTwoDecimalPlace(value float64) float64 {
	return math.Round(value*100) / 100
}
