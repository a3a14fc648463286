package jet

import "math"

const (
	oneThird = 1.0 / 3.0
	oneSixth = 1.0 / 6.0
	twoThird = 2.0 / 3.0
)

// HLS holds hue in turns [0,1), lightness and saturation in [0,1].
type HLS struct {
	H, L, S float64
}

// HLS converts with channels normalized by 255. Products are wrapped in
// float64() throughout this file so the compiler cannot fuse them into FMA
// instructions; output colours depend on the exact rounding.
func (c Color) HLS() HLS {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255
	return rgbToHLS(r, g, b)
}

func rgbToHLS(r, g, b float64) HLS {
	maxc := math.Max(math.Max(r, g), b)
	minc := math.Min(math.Min(r, g), b)
	sumc := maxc + minc
	rangec := maxc - minc
	l := sumc / 2.0

	if minc == maxc {
		return HLS{H: 0, L: l, S: 0}
	}

	var s float64
	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2.0 - maxc - minc)
	}

	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec

	var h float64
	switch {
	case r == maxc:
		h = bc - gc
	case g == maxc:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}

	return HLS{H: floorMod1(h / 6.0), L: l, S: s}
}

// FromHLS clamps l and s into [0,1] before converting, so out-of-range
// lightness or saturation saturates to the nearest valid colour.
func FromHLS(h, l, s float64) Color {
	l = clamp01(l)
	s = clamp01(s)

	if s == 0 {
		v := to8bit(l)
		return Color{R: v, G: v, B: v}
	}

	var m2 float64
	if l <= 0.5 {
		m2 = float64(l * (1.0 + s))
	} else {
		m2 = l + s - float64(l*s)
	}
	m1 := float64(2.0*l) - m2

	return Color{
		R: to8bit(hueToChannel(m1, m2, h+oneThird)),
		G: to8bit(hueToChannel(m1, m2, h)),
		B: to8bit(hueToChannel(m1, m2, h-oneThird)),
	}
}

func (h HLS) Color() Color {
	return FromHLS(h.H, h.L, h.S)
}

func hueToChannel(m1, m2, hue float64) float64 {
	hue = floorMod1(hue)
	switch {
	case hue < oneSixth:
		return m1 + float64(float64((m2-m1)*hue)*6.0)
	case hue < 0.5:
		return m2
	case hue < twoThird:
		return m1 + float64(float64((m2-m1)*(twoThird-hue))*6.0)
	default:
		return m1
	}
}

// floorMod1 is x mod 1 with the sign of the divisor, matching floored
// modulo rather than math.Mod's truncated one.
func floorMod1(x float64) float64 {
	m := math.Mod(x, 1.0)
	if m < 0 {
		m += 1.0
	}
	if m == 0 {
		return 0
	}
	return m
}
