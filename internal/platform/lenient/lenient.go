// Package lenient reads numbers and flags the way the back-office forms submit them:
// anything that cannot be read becomes zero (or false) instead of an error.
package lenient

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Parse returns the leading decimal number in raw. "12.5kg" is 12.5; "", "abc" and
// out-of-range values are 0.
func Parse(raw string) float64 {
	match := leadingNumber.FindString(strings.TrimSpace(raw))
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return Finite(value)
}

// Finite maps NaN and infinities to 0.
func Finite(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// NonNegative maps NaN, infinities and negative values to 0.
func NonNegative(value float64) float64 {
	value = Finite(value)
	if value < 0 {
		return 0
	}
	return value
}

// Number decodes from a JSON number, a numeric string, or anything else (as 0).
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*n = 0
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case '"':
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err == nil {
			*n = Number(Parse(raw))
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var value float64
		if err := json.Unmarshal(trimmed, &value); err == nil {
			*n = Number(Finite(value))
		}
	}
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// Flag decodes checkbox-style values: true, "true", "on", "yes", "1" and non-zero numbers.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	*f = false
	if len(trimmed) == 0 {
		return nil
	}
	switch trimmed[0] {
	case 't':
		*f = Flag(bytes.Equal(trimmed, []byte("true")))
	case '"':
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err == nil {
			switch strings.ToLower(strings.TrimSpace(raw)) {
			case "true", "on", "yes", "1":
				*f = true
			}
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var value float64
		if err := json.Unmarshal(trimmed, &value); err == nil {
			*f = Flag(value != 0 && !math.IsNaN(value))
		}
	}
	return nil
}

func (f Flag) Bool() bool {
	return bool(f)
}
