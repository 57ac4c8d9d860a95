package analyzer

import "math"

// roundTo2 rounds a savings figure to 2 decimal places, matching the
// precision the persistence layer stores.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
