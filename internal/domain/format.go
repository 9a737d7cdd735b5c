package domain

import (
	"fmt"
	"math"
)

// FormatTimeRemaining renders an hour count the way the dashboard shows it.
// Anything under two hours renders as whole minutes ("119 phút"); longer
// spans render as "Xh" with a " Yp" minute part that is omitted when it
// rounds to zero. A minute part that rounds to 60 promotes to the next hour.
func FormatTimeRemaining(hours float64) string {
	if hours <= 0 {
		return "0 phút"
	}

	if hours < 2 {
		return fmt.Sprintf("%d phút", int(math.Round(hours*60)))
	}

	whole := math.Floor(hours)
	minutes := int(math.Round((hours - whole) * 60))
	if minutes == 60 {
		whole++
		minutes = 0
	}
	if minutes == 0 {
		return fmt.Sprintf("%dh", int(whole))
	}
	return fmt.Sprintf("%dh %dp", int(whole), minutes)
}
