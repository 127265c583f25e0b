package explorer

import (
	"fmt"
	"math"
)

// sizeUnits are the display units in ascending order. Anything at or above
// a terabyte stays in TB.
var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count for humans using a 1024 divisor. Plain
// bytes print as an integer; every larger unit carries two decimals.
// Negative values format as their absolute value.
func FormatSize(bytes int64) string {
	size := math.Abs(float64(bytes))

	if size < 1024 {
		return fmt.Sprintf("%d B", int64(size))
	}

	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	return fmt.Sprintf("%.2f %s", size, sizeUnits[unit])
}
