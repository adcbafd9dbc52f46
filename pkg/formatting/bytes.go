// Package formatting converts byte sizes between configuration strings and display text.
package formatting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

const kibibyte = 1024

// multipliers maps accepted unit suffixes to base-1024 byte multipliers.
var multipliers = map[string]int64{
	"":    1,
	"B":   1,
	"KB":  kibibyte,
	"KIB": kibibyte,
	"MB":  kibibyte * kibibyte,
	"MIB": kibibyte * kibibyte,
	"GB":  kibibyte * kibibyte * kibibyte,
	"GIB": kibibyte * kibibyte * kibibyte,
}

var display = []string{"B", "KB", "MB", "GB"}

// ParseBytes converts a size such as "64KB", "1.5 MiB", or "512" into a byte count.
// Units are case-insensitive and base-1024; a bare number is bytes.
func ParseBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty byte size")
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	number, unit := s, ""
	if split >= 0 {
		number, unit = s[:split], strings.TrimSpace(s[split:])
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q", s)
	}

	mult, ok := multipliers[strings.ToUpper(unit)]
	if !ok {
		return 0, fmt.Errorf("unknown byte size unit %q", unit)
	}

	total := value * float64(mult)
	if total > math.MaxInt64 {
		return 0, fmt.Errorf("byte size %q overflows", s)
	}
	return int64(total), nil
}

// FormatBytes renders n with the largest unit that keeps the value at or above one,
// dropping a zero fraction ("64 KB", "1.5 MB").
func FormatBytes(n int64) string {
	if n < kibibyte {
		return strconv.FormatInt(n, 10) + " B"
	}

	value := float64(n)
	unit := 0
	for value >= kibibyte && unit < len(display)-1 {
		value /= kibibyte
		unit++
	}

	return strconv.FormatFloat(value, 'f', -1, 64) + " " + display[unit]
}
