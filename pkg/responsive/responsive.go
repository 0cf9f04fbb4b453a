// Package responsive computes font sizes that scale linearly with the
// viewport width between two reference breakpoints.
//
// The calculation is pure: callers supply the current width explicitly, so the
// package has no dependency on any UI framework. Hosts (the demo TUI, the MCP
// server, a web exporter) own the job of measuring the viewport.
package responsive

import (
	"errors"
	"fmt"
	"math"
)

// Default reference breakpoints, in logical pixels.
const (
	DefaultSmallestScreenSize = 360.0
	DefaultLargestScreenSize  = 1440.0
)

// ErrInvalidRange is matched by every ConfigurationError via errors.Is.
var ErrInvalidRange = errors.New("invalid screen size range")

// ConfigurationError reports a breakpoint range the interpolation cannot use.
type ConfigurationError struct {
	SmallestScreenSize float64
	LargestScreenSize  float64
	Reason             string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: screen sizes %g..%g: %s",
		e.SmallestScreenSize, e.LargestScreenSize, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidRange) true for any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidRange
}

// Request describes one font scale: the sizes to use at the two breakpoints.
type Request struct {
	Smallest           float64 `json:"smallest" yaml:"smallest"`
	Largest            float64 `json:"largest" yaml:"largest"`
	SmallestScreenSize float64 `json:"smallest_screen_size" yaml:"smallest_screen_size"`
	LargestScreenSize  float64 `json:"largest_screen_size" yaml:"largest_screen_size"`
}

// NewRequest returns a Request over the default 360..1440 range.
func NewRequest(smallest, largest float64) Request {
	return Request{
		Smallest:           smallest,
		Largest:            largest,
		SmallestScreenSize: DefaultSmallestScreenSize,
		LargestScreenSize:  DefaultLargestScreenSize,
	}
}

// Validate checks that the breakpoint range is computable.
// Font sizes themselves are unconstrained; inverse scales are allowed.
func (r Request) Validate() error {
	return validateRange(r.SmallestScreenSize, r.LargestScreenSize)
}

func validateRange(smallest, largest float64) error {
	if !isFinite(smallest) || !isFinite(largest) {
		return &ConfigurationError{
			SmallestScreenSize: smallest,
			LargestScreenSize:  largest,
			Reason:             "screen sizes must be finite",
		}
	}
	if smallest == largest {
		return &ConfigurationError{
			SmallestScreenSize: smallest,
			LargestScreenSize:  largest,
			Reason:             "smallest and largest screen sizes must differ",
		}
	}
	return nil
}

// ValidateRange reports whether a breakpoint pair can be interpolated over.
func ValidateRange(smallestScreenSize, largestScreenSize float64) error {
	return validateRange(smallestScreenSize, largestScreenSize)
}

// Option overrides a default of FontSize.
type Option func(*Request)

// WithScreenRange sets the reference breakpoints.
func WithScreenRange(smallestScreenSize, largestScreenSize float64) Option {
	return func(r *Request) {
		r.SmallestScreenSize = smallestScreenSize
		r.LargestScreenSize = largestScreenSize
	}
}

// FontSize returns the font size for currentWidth, interpolating between
// smallest and largest over the 360..1440 range unless overridden.
func FontSize(currentWidth, smallest, largest float64, opts ...Option) (float64, error) {
	req := NewRequest(smallest, largest)
	for _, opt := range opts {
		opt(&req)
	}
	return Compute(currentWidth, req)
}

// Compute evaluates req at currentWidth.
//
// At or below SmallestScreenSize the result is exactly Smallest, at or above
// LargestScreenSize it is exactly Largest, and in between it moves linearly.
func Compute(currentWidth float64, req Request) (float64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	if currentWidth <= req.SmallestScreenSize {
		return req.Smallest, nil
	}
	if currentWidth >= req.LargestScreenSize {
		return req.Largest, nil
	}
	t := Normalize(currentWidth, req.SmallestScreenSize, req.LargestScreenSize)
	return Interpolate(t, req.Smallest, req.Largest), nil
}

// MustCompute is Compute for ranges known to be valid at compile time.
func MustCompute(currentWidth float64, req Request) float64 {
	v, err := Compute(currentWidth, req)
	if err != nil {
		panic(err)
	}
	return v
}

// Normalize maps v from [lo, hi] onto [0, 1] without clamping.
func Normalize(v, lo, hi float64) float64 {
	return (v - lo) / (hi - lo)
}

// Interpolate returns a + t*(b-a).
func Interpolate(t, a, b float64) float64 {
	return a + t*(b-a)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
