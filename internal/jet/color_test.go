package jet

import (
	"errors"
	"math"
	"testing"
)

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// gridColors walks the RGB cube in steps of 17, covering 0x00 and 0xff.
func gridColors() []Color {
	var colors []Color
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 17 {
				colors = append(colors, Color{R: uint8(r), G: uint8(g), B: uint8(b)})
			}
		}
	}
	return colors
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Color
	}{
		{
			name:     "black with hash",
			input:    "#000000",
			expected: Color{R: 0, G: 0, B: 0},
		},
		{
			name:     "white with hash",
			input:    "#ffffff",
			expected: Color{R: 255, G: 255, B: 255},
		},
		{
			name:     "red without hash",
			input:    "ff0000",
			expected: Color{R: 255, G: 0, B: 0},
		},
		{
			name:     "uppercase",
			input:    "#23262B",
			expected: Color{R: 0x23, G: 0x26, B: 0x2b},
		},
		{
			name:     "purple",
			input:    "#625690",
			expected: Color{R: 0x62, G: 0x56, B: 0x90},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%s) error = %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("ParseHex(%s) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "hash only", input: "#"},
		{name: "short form", input: "#fff"},
		{name: "with alpha", input: "#23262bff"},
		{name: "non hex digits", input: "#23262g"},
		{name: "double hash", input: "##23262b"},
		{name: "signed byte", input: "+12345"},
		{name: "spaces", input: " 23262b"},
		{name: "color name", input: "purple"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			var fmtErr *FormatError
			if !errors.As(err, &fmtErr) {
				t.Fatalf("ParseHex(%q) error = %v, expected *FormatError", tt.input, err)
			}
			if fmtErr.Input != tt.input {
				t.Errorf("FormatError.Input = %q, expected %q", fmtErr.Input, tt.input)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	tests := []struct {
		name     string
		input    Color
		expected string
	}{
		{name: "black", input: Color{}, expected: "#000000"},
		{name: "white", input: Color{R: 255, G: 255, B: 255}, expected: "#ffffff"},
		{name: "zero padded", input: Color{R: 1, G: 2, B: 10}, expected: "#01020a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.input.Hex(); result != tt.expected {
				t.Errorf("Hex(%v) = %s, expected %s", tt.input, result, tt.expected)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range gridColors() {
		parsed, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%s) error = %v", c.Hex(), err)
		}
		again, err := ParseHex(parsed.Hex())
		if err != nil || again != c {
			t.Errorf("round trip of %s gave %v (err %v)", c.Hex(), again, err)
		}
	}
}

func TestFormatAlpha(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{1.0, "1"},
		{0.0, "0"},
		{0.975, "0.975"},
		{0.9, "0.9"},
		{0.5, "0.5"},
		{0.12345, "0.123"},
		{0.9999, "1"},
	}

	for _, tt := range tests {
		if result := formatAlpha(tt.input); result != tt.expected {
			t.Errorf("formatAlpha(%v) = %s, expected %s", tt.input, result, tt.expected)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	c := Color{R: 40, G: 43, B: 49}
	if got := c.RGBA(0.975); got != "rgba(40, 43, 49, 0.975)" {
		t.Errorf("RGBA() = %s", got)
	}
}
