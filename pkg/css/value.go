package css

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// All stored lengths are fixed-point pixels (26.6, the same unit font metrics
// arrive in). Floating point exists only at parse time and at the drawing
// boundary.

// Px converts a floating-point pixel count to the fixed-point unit.
func Px(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// PxFloat converts a fixed-point length back to floating-point pixels.
// Only renderers and debug output should need this.
func PxFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// ValueKind tags the Value union.
type ValueKind int

const (
	Auto ValueKind = iota
	Length
	Keyword
	ColorValue
)

// Value is a declared property value: the `auto` sentinel, a pixel length,
// a bare keyword, or a color. Every use site switches on Kind.
type Value struct {
	Kind  ValueKind
	Px    fixed.Int26_6 // valid when Kind == Length
	Kw    string        // valid when Kind == Keyword
	Color Color         // valid when Kind == ColorValue
}

// AutoValue is the `auto` sentinel.
var AutoValue = Value{Kind: Auto}

// PxValue returns a length value of v pixels.
func PxValue(v float64) Value {
	return Value{Kind: Length, Px: Px(v)}
}

// ZeroLength is the default for margin, border and padding properties.
var ZeroLength = Value{Kind: Length, Px: 0}

// IsAuto reports whether the value is the `auto` sentinel.
func (v Value) IsAuto() bool {
	return v.Kind == Auto
}

// ToPx returns the pixel length of the value. Non-lengths (auto included)
// contribute zero; the layout solver relies on this when summing edges.
func (v Value) ToPx() fixed.Int26_6 {
	if v.Kind == Length {
		return v.Px
	}
	return 0
}

// ParseValue parses a declaration value string.
// Recognized forms: "auto", "<number>px", "<number>", "#rrggbb", "#rgb",
// and named colors. Anything else is kept as a keyword.
func ParseValue(s string) Value {
	s = strings.TrimSpace(s)
	if s == "auto" {
		return AutoValue
	}
	num := strings.TrimSuffix(s, "px")
	if f, err := strconv.ParseFloat(num, 64); err == nil {
		return Value{Kind: Length, Px: Px(f)}
	}
	if c, ok := ParseColor(s); ok {
		return Value{Kind: ColorValue, Color: c}
	}
	return Value{Kind: Keyword, Kw: s}
}

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

var namedColors = map[string]Color{
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"blue":    {0, 0, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"white":   {255, 255, 255},
	"black":   {0, 0, 0},
	"gray":    {128, 128, 128},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"pink":    {255, 192, 203},
	"brown":   {165, 42, 42},
	"lime":    {0, 255, 0},
	"navy":    {0, 0, 128},
	"teal":    {0, 128, 128},
	"silver":  {192, 192, 192},
}

// ParseColor parses a named color or a #rgb/#rrggbb hex color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if n, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return Color{uint8(n >> 16), uint8(n >> 8), uint8(n)}, true
			}
		}
	}
	return Color{}, false
}
