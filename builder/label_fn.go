// File: label_fn.go
// Role: Tip labeling schemes for tree constructors.
package builder

import (
	"fmt"
	"strconv"
)

// LabelFn renders a tip label from the tip's zero-based creation index.
// Implementations must be pure: the same index always yields the same
// string. Panics indicate a configuration programming error.
type LabelFn func(idx int) string

// DefaultLabelFn returns the decimal string of idx: 0 -> "0", 42 -> "42".
func DefaultLabelFn(idx int) string {
	return strconv.Itoa(idx)
}

// AlphaLabelFn returns spreadsheet-style letters: 0 -> "A", 25 -> "Z",
// 26 -> "AA". Panics if idx is negative.
func AlphaLabelFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("builder: AlphaLabelFn: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixLabelFn returns prefix + decimal index: PrefixLabelFn("t") labels
// tips "t0", "t1", ...
func PrefixLabelFn(prefix string) LabelFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithAlphaLabels sets the labeling scheme to AlphaLabelFn.
func WithAlphaLabels() Option {
	return WithLabelFn(AlphaLabelFn)
}

// WithPrefixLabels sets the labeling scheme to PrefixLabelFn(prefix).
func WithPrefixLabels(prefix string) Option {
	return WithLabelFn(PrefixLabelFn(prefix))
}
