package jet

import "math"

// Lighten raises HLS lightness by amount, capped at 1.
func Lighten(c Color, amount float64) Color {
	hls := c.HLS()
	return FromHLS(hls.H, math.Min(1, hls.L+amount), hls.S)
}

// Darken lowers HLS lightness by amount, floored at 0.
func Darken(c Color, amount float64) Color {
	hls := c.HLS()
	return FromHLS(hls.H, math.Max(0, hls.L-amount), hls.S)
}

// DesaturateToGray is Sass desaturate(c, 100%).
func DesaturateToGray(c Color) Color {
	hls := c.HLS()
	return FromHLS(hls.H, hls.L, 0)
}

// Mix blends per channel in gamma-encoded space, weight applying to c1:
// weight 1 yields c1, weight 0 yields c2.
func Mix(c1, c2 Color, weight float64) Color {
	w := clamp01(weight)
	blend := func(a, b uint8) uint8 {
		v := float64(float64(a)*w) + float64(float64(b)*(1-w))
		return uint8(math.RoundToEven(v))
	}
	return Color{
		R: blend(c1.R, c2.R),
		G: blend(c1.G, c2.G),
		B: blend(c1.B, c2.B),
	}
}

// TransparentAlpha is the alpha left after Sass transparentize(c, amount).
func TransparentAlpha(amount float64) float64 {
	return clamp01(1 - amount)
}

func Transparentize(c Color, amount float64) string {
	return c.RGBA(TransparentAlpha(amount))
}
