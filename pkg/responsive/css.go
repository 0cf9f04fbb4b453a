package responsive

import (
	"fmt"
	"math"
	"strconv"
)

// Unit selects the length unit of a CSS expression.
type Unit string

const (
	UnitPx  Unit = "px"
	UnitRem Unit = "rem"
)

// RootFontSize is the px size of 1rem used for rem conversions.
const RootFontSize = 16.0

// CSSClamp renders the same linear ramp as Compute as a CSS clamp()
// expression, where the browser supplies the viewport width through vw.
//
//	clamp(14px, 8px + 1.6667vw, 32px)
//
// Descending screen sizes make Compute a step at the breakpoints, which one
// clamp() cannot express; they are rejected unless both sizes are equal.
func (r Request) CSSClamp(unit Unit) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	if r.SmallestScreenSize > r.LargestScreenSize && r.Smallest != r.Largest {
		return "", &ConfigurationError{
			SmallestScreenSize: r.SmallestScreenSize,
			LargestScreenSize:  r.LargestScreenSize,
			Reason:             "css clamp() needs ascending screen sizes",
		}
	}
	switch unit {
	case UnitPx, UnitRem:
	default:
		return "", fmt.Errorf("unsupported css unit %q", unit)
	}

	slope := (r.Largest - r.Smallest) / (r.LargestScreenSize - r.SmallestScreenSize)
	intercept := r.Smallest - slope*r.SmallestScreenSize
	lo := math.Min(r.Smallest, r.Largest)
	hi := math.Max(r.Smallest, r.Largest)

	if slope == 0 {
		return length(r.Smallest, unit), nil
	}

	sign := "+"
	if slope < 0 {
		sign = "-"
		slope = -slope
	}
	return fmt.Sprintf("clamp(%s, %s %s %svw, %s)",
		length(lo, unit),
		length(intercept, unit), sign, trim(slope*100, 4),
		length(hi, unit),
	), nil
}

func length(px float64, unit Unit) string {
	if unit == UnitRem {
		return trim(px/RootFontSize, 4) + "rem"
	}
	return trim(px, 3) + "px"
}

func trim(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	// strip trailing zeros and a dangling point
	for len(s) > 1 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
