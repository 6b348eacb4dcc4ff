package param

import (
	"fmt"
)

// Common parameter formatters

// DecimalFormatter formats a plain value with three decimal places, the
// display format hosts expect for an unlabeled continuous control.
func DecimalFormatter(v float32) string {
	return fmt.Sprintf("%.3f", v)
}

// PercentFormatter formats a 0-1 plain value as a percentage
func PercentFormatter(v float32) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

// DecibelFormatter formats dB values
func DecibelFormatter(db float32) string {
	if db <= -60 {
		return "-∞ dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}
