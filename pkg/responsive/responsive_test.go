package responsive

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontSize_ConcreteScenario(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		small float64
		large float64
		want  float64
	}{
		{"at smallest breakpoint", 360, 14, 32, 14},
		{"at largest breakpoint", 1440, 14, 32, 32},
		{"midpoint", 900, 14, 32, 23},
		{"reverse scale midpoint", 900, 32, 14, 23},
		{"below range", 200, 14, 32, 14},
		{"above range", 2560, 14, 32, 32},
		{"negative width", -50, 14, 32, 14},
		{"zero width", 0, 14, 32, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FontSize(tt.width, tt.small, tt.large)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompute_PinnedOutsideRange(t *testing.T) {
	req := Request{Smallest: 12.5, Largest: 40.25, SmallestScreenSize: 320, LargestScreenSize: 1280}

	for _, w := range []float64{-1e9, -1, 0, 100, 319.999, 320} {
		got, err := Compute(w, req)
		require.NoError(t, err)
		assert.Equal(t, req.Smallest, got, "width %v", w)
	}
	for _, w := range []float64{1280, 1280.001, 1920, 1e9, math.Inf(1)} {
		got, err := Compute(w, req)
		require.NoError(t, err)
		assert.Equal(t, req.Largest, got, "width %v", w)
	}
}

func TestCompute_Monotonic(t *testing.T) {
	t.Run("growing scale never decreases", func(t *testing.T) {
		req := NewRequest(14, 32)
		prev := req.Smallest
		for w := 361.0; w < 1440; w += 7 {
			got, err := Compute(w, req)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, prev, "width %v", w)
			prev = got
		}
	})

	t.Run("shrinking scale never increases", func(t *testing.T) {
		req := NewRequest(32, 14)
		prev := req.Smallest
		for w := 361.0; w < 1440; w += 7 {
			got, err := Compute(w, req)
			require.NoError(t, err)
			assert.LessOrEqual(t, got, prev, "width %v", w)
			prev = got
		}
	})
}

func TestCompute_Midpoint(t *testing.T) {
	tests := []Request{
		{Smallest: 14, Largest: 32, SmallestScreenSize: 360, LargestScreenSize: 1440},
		{Smallest: 10, Largest: 20, SmallestScreenSize: 0, LargestScreenSize: 1000},
		{Smallest: 48, Largest: 16, SmallestScreenSize: 400, LargestScreenSize: 1200},
		{Smallest: 11, Largest: 57, SmallestScreenSize: 768, LargestScreenSize: 1024},
	}

	for _, req := range tests {
		mid := (req.SmallestScreenSize + req.LargestScreenSize) / 2
		got, err := Compute(mid, req)
		require.NoError(t, err)
		assert.Equal(t, (req.Smallest+req.Largest)/2, got)
	}
}

func TestCompute_ConstantScale(t *testing.T) {
	for _, w := range []float64{-10, 0, 360, 500, 900, 1439, 1440, 4000} {
		got, err := FontSize(w, 14, 14, WithScreenRange(360, 1440))
		require.NoError(t, err)
		assert.Equal(t, 14.0, got)
	}
}

func TestCompute_EqualBreakpoints(t *testing.T) {
	_, err := FontSize(800, 14, 24, WithScreenRange(500, 500))
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, 500.0, cfgErr.SmallestScreenSize)
	assert.Equal(t, 500.0, cfgErr.LargestScreenSize)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestCompute_EqualBreakpointsFailsForEveryWidth(t *testing.T) {
	req := Request{Smallest: 14, Largest: 24, SmallestScreenSize: 500, LargestScreenSize: 500}
	for _, w := range []float64{0, 499, 500, 501, 2000} {
		_, err := Compute(w, req)
		assert.ErrorIs(t, err, ErrInvalidRange, "width %v", w)
	}
}

func TestCompute_NonFiniteBreakpoints(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
	}{
		{"nan smallest", math.NaN(), 1440},
		{"nan largest", 360, math.NaN()},
		{"inf largest", 360, math.Inf(1)},
		{"negative inf smallest", math.Inf(-1), 1440},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FontSize(800, 14, 24, WithScreenRange(tt.lo, tt.hi))
			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	req := Request{Smallest: 13.7, Largest: 29.3, SmallestScreenSize: 375, LargestScreenSize: 1366}
	first, err := Compute(811.3, req)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		got, err := Compute(811.3, req)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestMustCompute(t *testing.T) {
	assert.Equal(t, 23.0, MustCompute(900, NewRequest(14, 32)))
	assert.Panics(t, func() {
		MustCompute(900, Request{Smallest: 14, Largest: 32, SmallestScreenSize: 1, LargestScreenSize: 1})
	})
}

func TestConfigurationError_Message(t *testing.T) {
	err := ValidateRange(500, 500)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500..500")
	assert.Contains(t, err.Error(), "must differ")

	assert.NoError(t, ValidateRange(360, 1440))
}
