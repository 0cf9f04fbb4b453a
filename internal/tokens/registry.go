package tokens

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Group names a token table.
type Group string

const (
	GroupSize        Group = "size"
	GroupSpace       Group = "space"
	GroupRadius      Group = "radius"
	GroupDuration    Group = "duration"
	GroupFontMobile  Group = "font-mobile"
	GroupFontTablet  Group = "font-tablet"
	GroupFontDesktop Group = "font-desktop"
)

// Units attached to token values.
const (
	UnitPx = "px"
	UnitMs = "ms"
)

var (
	ErrUnknownGroup = errors.New("unknown token group")
	ErrUnknownToken = errors.New("unknown token")
)

// Token is a single named design decision.
type Token struct {
	Group Group   `json:"group" yaml:"group"`
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit" yaml:"unit"`
}

// Key returns the dotted identifier, e.g. "space.md".
func (t Token) Key() string {
	return string(t.Group) + "." + t.Name
}

// String formats the value with its unit, e.g. "12px".
func (t Token) String() string {
	return fmt.Sprintf("%g%s", t.Value, t.Unit)
}

// Groups returns every group in display order.
func Groups() []Group {
	return []Group{
		GroupSize,
		GroupSpace,
		GroupRadius,
		GroupDuration,
		GroupFontMobile,
		GroupFontTablet,
		GroupFontDesktop,
	}
}

// ParseGroup resolves a group name case-insensitively.
func ParseGroup(name string) (Group, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, g := range Groups() {
		if string(g) == name {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGroup, name)
}

// All returns every token, ordered by group then declaration order.
func All() []Token {
	var out []Token
	for _, g := range Groups() {
		out = append(out, groupTokens(g)...)
	}
	return out
}

// ByGroup returns the tokens of one group.
func ByGroup(g Group) ([]Token, error) {
	toks := groupTokens(g)
	if toks == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
	}
	return toks, nil
}

// Lookup finds a single token.
func Lookup(g Group, name string) (Token, error) {
	toks, err := ByGroup(g)
	if err != nil {
		return Token{}, err
	}
	name = strings.ToLower(name)
	for _, t := range toks {
		if t.Name == name {
			return t, nil
		}
	}
	return Token{}, fmt.Errorf("%w: %s.%s", ErrUnknownToken, g, name)
}

func groupTokens(g Group) []Token {
	switch g {
	case GroupSize:
		return px(g, []named{
			{"xxs", Size.XXS},
			{"xs", Size.XS},
			{"sm", Size.SM},
			{"md", Size.MD},
			{"lg", Size.LG},
			{"xl", Size.XL},
			{"xxl", Size.XXL},
			{"xxxl", Size.XXXL},
		})
	case GroupSpace:
		return px(g, []named{
			{"none", Space.None},
			{"xxs", Space.XXS},
			{"xs", Space.XS},
			{"sm", Space.SM},
			{"md", Space.MD},
			{"lg", Space.LG},
			{"xl", Space.XL},
			{"xxl", Space.XXL},
			{"xxxl", Space.XXXL},
		})
	case GroupRadius:
		return px(g, []named{
			{"none", Radius.None},
			{"xs", Radius.XS},
			{"sm", Radius.SM},
			{"md", Radius.MD},
			{"lg", Radius.LG},
			{"xl", Radius.XL},
			{"xxl", Radius.XXL},
			{"full", Radius.Full},
		})
	case GroupDuration:
		return []Token{
			ms(g, "instant", Duration.Instant),
			ms(g, "fastest", Duration.Fastest),
			ms(g, "fast", Duration.Fast),
			ms(g, "normal", Duration.Normal),
			ms(g, "slow", Duration.Slow),
			ms(g, "slowest", Duration.Slowest),
		}
	case GroupFontMobile:
		return fontTokens(g, Mobile)
	case GroupFontTablet:
		return fontTokens(g, Tablet)
	case GroupFontDesktop:
		return fontTokens(g, Desktop)
	default:
		return nil
	}
}

func fontTokens(g Group, p FontPreset) []Token {
	out := make([]Token, 0, len(Roles()))
	for _, r := range Roles() {
		v, _ := p.Get(r)
		out = append(out, Token{Group: g, Name: string(r), Value: v, Unit: UnitPx})
	}
	return out
}

type named struct {
	name  string
	value float64
}

func px(g Group, entries []named) []Token {
	out := make([]Token, 0, len(entries))
	for _, e := range entries {
		out = append(out, Token{Group: g, Name: e.name, Value: e.value, Unit: UnitPx})
	}
	return out
}

func ms(g Group, name string, d time.Duration) Token {
	return Token{Group: g, Name: name, Value: float64(d.Milliseconds()), Unit: UnitMs}
}
