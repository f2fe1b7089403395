// Package timecodec converts between decimal hours and the H:MM form shown on
// attendance and payroll screens.
package timecodec

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"backoffice/internal/platform/lenient"
)

// DecimalToTime renders decimal hours as "H:MM". Minutes are rounded, so 1.9999
// renders as "1:60"; callers that need a clock value must normalize themselves.
func DecimalToTime(hours float64) string {
	if hours == 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return "0:00"
	}
	whole := math.Floor(hours)
	minutes := math.Round((hours - whole) * 60)
	return fmt.Sprintf("%d:%02d", int64(whole), int64(minutes))
}

// TimeToDecimal reads "H:MM" (missing parts count as 0) or a plain decimal.
// Unreadable input is 0.
func TimeToDecimal(value string) float64 {
	if !strings.Contains(value, ":") {
		return lenient.Parse(value)
	}
	parts := strings.Split(value, ":")
	hours := lenient.Parse(parts[0])
	minutes := 0.0
	if len(parts) > 1 {
		minutes = lenient.Parse(parts[1])
	}
	return hours + minutes/60
}

var durationPattern = regexp.MustCompile(`(?i)^\s*(?:(\d+(?:\.\d+)?)\s*h)?\s*(?:(\d+(?:\.\d+)?)\s*m(?:in)?)?\s*$`)

// ParseDuration reads worked-time strings recorded by the attendance screen:
// "8h 30m", "8h", "45m", "8:30" or "8.5". Unreadable input is 0.
func ParseDuration(value string) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0
	}
	match := durationPattern.FindStringSubmatch(trimmed)
	if match == nil || (match[1] == "" && match[2] == "") {
		return lenient.NonNegative(TimeToDecimal(trimmed))
	}
	return lenient.Parse(match[1]) + lenient.Parse(match[2])/60
}
