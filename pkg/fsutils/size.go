package fsutils

import "strconv"

var sizeUnits = [...]string{"KB", "MB", "GB", "TB"}

// GetSizeShortText returns a compact human readable size, e.g. "3KB".
func GetSizeShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < len(sizeUnits)-1; n /= unit {
		div *= unit
		exp++
	}
	// Round to nearest; rounding up may push the value into the next unit.
	val := (size + div/2) / div
	if val >= unit && exp < len(sizeUnits)-1 {
		val /= unit
		exp++
	}
	return strconv.FormatInt(val, 10) + sizeUnits[exp]
}
