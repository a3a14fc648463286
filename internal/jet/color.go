package jet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an opaque sRGB colour with 8-bit channels.
type Color struct {
	R, G, B uint8
}

type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex color %q: %s", e.Input, e.Reason)
}

// ParseHex accepts exactly six hex digits with an optional leading '#'.
func ParseHex(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return Color{}, &FormatError{Input: hex, Reason: "must be 6 hex digits"}
	}

	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, &FormatError{Input: hex, Reason: fmt.Sprintf("bad byte %q", digits[i*2:i*2+2])}
		}
		channels[i] = uint8(v)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func MustParseHex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// RGBA renders the colour with the given alpha, e.g. "rgba(40, 43, 49, 0.975)".
func (c Color) RGBA(alpha float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(alpha))
}

// formatAlpha keeps at most three decimals and drops trailing zeros and a
// dangling point, so 1.0 is "1" and 0.900 is "0.9".
func formatAlpha(alpha float64) string {
	s := strconv.FormatFloat(alpha, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// to8bit scales a normalized channel to 0-255 using round-half-to-even.
func to8bit(v float64) uint8 {
	return uint8(math.RoundToEven(clamp01(v) * 255))
}
