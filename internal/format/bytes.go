package format

import "fmt"

// FormatBytes formats a byte count into a human-readable string with a
// binary-scaled unit suffix (KB, MB, GB, ...).
//
// Parameters:
//   - b: The byte count to format.
//
// Returns:
//   - string: A formatted string such as "512 B" or "2.1 MB".
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}
