// Package units scales values by SI metric prefixes. It covers the prefixes
// that appear in hardware timing specifications, femto through peta.
package units

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"
)

var (
	// ErrUnknownPrefix indicates that a unit string starts with a character
	// that is not a supported metric prefix.
	ErrUnknownPrefix = errors.New("units: unknown metric prefix")

	// ErrOutOfRange indicates that a value cannot be expressed with the
	// supported metric prefixes.
	ErrOutOfRange = errors.New("units: value is out of range")
)

var prefixFactors = map[rune]float64{
	'f': 1e-15,
	'p': 1e-12,
	'n': 1e-9,
	'u': 1e-6,
	'µ': 1e-6,
	'm': 1e-3,
	'k': 1e3,
	'M': 1e6,
	'G': 1e9,
	'T': 1e12,
	'P': 1e15,
}

var powerPrefixes = map[int]string{
	-15: "f",
	-12: "p",
	-9:  "n",
	-6:  "µ",
	-3:  "m",
	0:   "",
	3:   "k",
	6:   "M",
	9:   "G",
	12:  "T",
	15:  "P",
}

// ApplyPrefix scales a value to the base unit according to the metric prefix
// that leads the unit string. A unit of a single character carries no prefix
// and leaves the value unchanged. ApplyPrefix(5, "ms") returns 0.005.
func ApplyPrefix(value float64, unit string) (float64, error) {
	if utf8.RuneCountInString(unit) <= 1 {
		return value, nil
	}

	prefix, _ := utf8.DecodeRuneInString(unit)

	factor, ok := prefixFactors[prefix]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPrefix, unit)
	}

	return value * factor, nil
}

// DetachPrefix rescales a value into the [1, 1000) range and returns the
// metric prefix that preserves its magnitude. DetachPrefix(1e4) returns
// (10, "k", nil). Zero detaches to zero with no prefix.
func DetachPrefix(value float64) (float64, string, error) {
	if value == 0 {
		return 0, "", nil
	}

	pow10 := int(math.Floor(math.Log10(math.Abs(value))/3.0) * 3)

	prefix, ok := powerPrefixes[pow10]
	if !ok {
		return 0, "", fmt.Errorf("%w: %g", ErrOutOfRange, value)
	}

	return value / math.Pow(10, float64(pow10)), prefix, nil
}
