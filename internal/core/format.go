package core

import "fmt"

// sizeUnits are binary-prefixed unit labels, index = power of 1024.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize converts a byte count into a human-readable string like "1.50 MB".
// Negative input renders as "0.00 B".
func FormatSize(size int64) string {
	if size < 0 {
		return "0.00 B"
	}
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}
