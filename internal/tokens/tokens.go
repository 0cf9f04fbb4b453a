// Package tokens holds the design-token tables: sizes, spacing, radii,
// animation durations and per-device font-size presets.
//
// Values are logical pixels unless noted. The tables are read-only; use the
// registry functions (All, ByGroup, Lookup) for name-based access.
package tokens

import "time"

// Size is the general sizing scale (icons, borders, small components).
var Size = struct {
	XXS  float64
	XS   float64
	SM   float64
	MD   float64
	LG   float64
	XL   float64
	XXL  float64
	XXXL float64
}{
	XXS:  4,
	XS:   8,
	SM:   10,
	MD:   12,
	LG:   16,
	XL:   20,
	XXL:  24,
	XXXL: 32,
}

// Space is the spacing scale for padding, margins and gaps.
var Space = struct {
	None float64
	XXS  float64
	XS   float64
	SM   float64
	MD   float64
	LG   float64
	XL   float64
	XXL  float64
	XXXL float64
}{
	None: 0,
	XXS:  2,
	XS:   4,
	SM:   8,
	MD:   12,
	LG:   16,
	XL:   24,
	XXL:  32,
	XXXL: 48,
}

// Radius defines corner radius presets. Full is large enough to produce a
// pill or circle on any reasonable component.
var Radius = struct {
	None float64
	XS   float64
	SM   float64
	MD   float64
	LG   float64
	XL   float64
	XXL  float64
	Full float64
}{
	None: 0,
	XS:   2,
	SM:   4,
	MD:   8,
	LG:   12,
	XL:   16,
	XXL:  24,
	Full: 999,
}

// Duration defines animation timings.
var Duration = struct {
	Instant time.Duration
	Fastest time.Duration
	Fast    time.Duration
	Normal  time.Duration
	Slow    time.Duration
	Slowest time.Duration
}{
	Instant: 0,
	Fastest: 50 * time.Millisecond,
	Fast:    150 * time.Millisecond,
	Normal:  250 * time.Millisecond,
	Slow:    400 * time.Millisecond,
	Slowest: 700 * time.Millisecond,
}

// FontPreset is one device class's font-size table.
type FontPreset struct {
	Display  float64
	Headline float64
	Title    float64
	Body     float64
	Label    float64
	Caption  float64
}

// Font presets per device class.
var (
	Mobile = FontPreset{
		Display:  32,
		Headline: 24,
		Title:    18,
		Body:     14,
		Label:    12,
		Caption:  10,
	}

	Tablet = FontPreset{
		Display:  40,
		Headline: 28,
		Title:    20,
		Body:     15,
		Label:    13,
		Caption:  11,
	}

	Desktop = FontPreset{
		Display:  48,
		Headline: 32,
		Title:    22,
		Body:     16,
		Label:    14,
		Caption:  12,
	}
)

// Get returns the size for role, and false for an unknown role.
func (p FontPreset) Get(role Role) (float64, bool) {
	switch role {
	case RoleDisplay:
		return p.Display, true
	case RoleHeadline:
		return p.Headline, true
	case RoleTitle:
		return p.Title, true
	case RoleBody:
		return p.Body, true
	case RoleLabel:
		return p.Label, true
	case RoleCaption:
		return p.Caption, true
	default:
		return 0, false
	}
}
