package tokens

import (
	"fmt"
	"strings"

	"github.com/asteroid-belt/typekit/pkg/responsive"
)

// Role is a typographic role in the type scale.
type Role string

const (
	RoleDisplay  Role = "display"
	RoleHeadline Role = "headline"
	RoleTitle    Role = "title"
	RoleBody     Role = "body"
	RoleLabel    Role = "label"
	RoleCaption  Role = "caption"
)

// Roles returns every role from largest to smallest.
func Roles() []Role {
	return []Role{RoleDisplay, RoleHeadline, RoleTitle, RoleBody, RoleLabel, RoleCaption}
}

// ParseRole resolves a role name case-insensitively.
func ParseRole(name string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := Mobile.Get(r); !ok {
		return "", fmt.Errorf("%w: role %q", ErrUnknownToken, name)
	}
	return r, nil
}

// Breakpoints are the reference viewport widths the type scale ramps between.
type Breakpoints struct {
	Smallest float64 `json:"smallest" yaml:"smallest"`
	Largest  float64 `json:"largest" yaml:"largest"`
}

// DefaultBreakpoints returns the 360..1440 range.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Smallest: responsive.DefaultSmallestScreenSize,
		Largest:  responsive.DefaultLargestScreenSize,
	}
}

// Validate reports whether the breakpoints can be interpolated over.
func (b Breakpoints) Validate() error {
	return responsive.ValidateRange(b.Smallest, b.Largest)
}

// ScaleFor builds the responsive request for role: the Mobile preset at the
// smallest breakpoint, the Desktop preset at the largest.
func ScaleFor(role Role, bp Breakpoints) (responsive.Request, error) {
	small, ok := Mobile.Get(role)
	if !ok {
		return responsive.Request{}, fmt.Errorf("%w: role %q", ErrUnknownToken, role)
	}
	large, _ := Desktop.Get(role)
	return responsive.Request{
		Smallest:           small,
		Largest:            large,
		SmallestScreenSize: bp.Smallest,
		LargestScreenSize:  bp.Largest,
	}, nil
}

// Resolve returns the font size of role at width.
func Resolve(role Role, width float64, bp Breakpoints) (float64, error) {
	req, err := ScaleFor(role, bp)
	if err != nil {
		return 0, err
	}
	return responsive.Compute(width, req)
}

// ResolvedFont is one role's size at a given width.
type ResolvedFont struct {
	Role     Role    `json:"role" yaml:"role"`
	Size     float64 `json:"size" yaml:"size"`
	Smallest float64 `json:"smallest" yaml:"smallest"`
	Largest  float64 `json:"largest" yaml:"largest"`
}

// ResolveAll resolves every role at width.
func ResolveAll(width float64, bp Breakpoints) ([]ResolvedFont, error) {
	if err := bp.Validate(); err != nil {
		return nil, err
	}
	out := make([]ResolvedFont, 0, len(Roles()))
	for _, role := range Roles() {
		req, err := ScaleFor(role, bp)
		if err != nil {
			return nil, err
		}
		size, err := responsive.Compute(width, req)
		if err != nil {
			return nil, err
		}
		out = append(out, ResolvedFont{
			Role:     role,
			Size:     size,
			Smallest: req.Smallest,
			Largest:  req.Largest,
		})
	}
	return out, nil
}
