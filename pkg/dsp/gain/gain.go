// Package gain provides amplitude and level conversion helpers.
package gain

import (
	"math"
)

// MinDB is the floor for dB conversions, treated as silence.
const MinDB = -120.0

// LinearToDb converts a linear amplitude to decibels. Values <= 0 return
// MinDB.
func LinearToDb(linear float32) float32 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * float32(math.Log10(float64(linear)))
}

// DbToLinear converts a decibel value to linear amplitude. Values <= MinDB
// return 0.
func DbToLinear(db float32) float32 {
	if db <= MinDB {
		return 0
	}
	return float32(math.Pow(10.0, float64(db)/20.0))
}

// Peak returns the largest absolute sample across all channels of a block.
func Peak(block [][]float32) float32 {
	var peak float32
	for ch := range block {
		for _, s := range block[ch] {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
	}
	return peak
}
