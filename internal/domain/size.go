package domain

import "fmt"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// FormatSize renders a byte count for humans using base-1024 units. Byte
// values print as integers, everything larger with one decimal place.
func FormatSize(sizeBytes int64) string {
	if sizeBytes == 0 {
		return "0 B"
	}

	size := float64(sizeBytes)
	index := 0
	for size >= 1024.0 && index < len(sizeUnits)-1 {
		size /= 1024.0
		index++
	}

	if index == 0 {
		return fmt.Sprintf("%d %s", int64(size), sizeUnits[index])
	}
	return fmt.Sprintf("%.1f %s", size, sizeUnits[index])
}
