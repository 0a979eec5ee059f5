package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSL-space lighten/darken. Scale generation depends on these producing
// actually graduated ramps; non-hex inputs pass through unchanged.

type hsl struct {
	h, s, l float64 // h in [0,360), s and l in [0,1]
}

// parseHex accepts #rgb and #rrggbb
func parseHex(value string) (r, g, b uint8, ok bool) {
	v := strings.TrimSpace(strings.ToLower(value))
	if !strings.HasPrefix(v, "#") {
		return 0, 0, 0, false
	}
	v = v[1:]
	switch len(v) {
	case 3:
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(n >> 16), uint8(n >> 8), uint8(n), true
}

func rgbToHSL(r, g, b uint8) hsl {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l := (max + min) / 2

	if max == min {
		return hsl{0, 0, l} // achromatic
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	return hsl{h * 60, s, l}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func hslToHex(c hsl) string {
	var r, g, b float64
	if c.s == 0 {
		r, g, b = c.l, c.l, c.l
	} else {
		var q float64
		if c.l < 0.5 {
			q = c.l * (1 + c.s)
		} else {
			q = c.l + c.s - c.l*c.s
		}
		p := 2*c.l - q
		h := c.h / 360
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}
	return fmt.Sprintf("#%02x%02x%02x", uint8(math.Round(r*255)), uint8(math.Round(g*255)), uint8(math.Round(b*255)))
}

// Lighten shifts a hex color's HSL lightness up by amount (0..1), clamped
func Lighten(value string, amount float64) string {
	r, g, b, ok := parseHex(value)
	if !ok {
		return value
	}
	c := rgbToHSL(r, g, b)
	c.l = math.Min(1, c.l+amount)
	return hslToHex(c)
}

// Darken shifts a hex color's HSL lightness down by amount (0..1), clamped
func Darken(value string, amount float64) string {
	r, g, b, ok := parseHex(value)
	if !ok {
		return value
	}
	c := rgbToHSL(r, g, b)
	c.l = math.Max(0, c.l-amount)
	return hslToHex(c)
}

// saturation returns the HSL saturation of a hex color, ok=false for
// values that are not parseable hex.
func saturation(value string) (float64, bool) {
	r, g, b, ok := parseHex(value)
	if !ok {
		return 0, false
	}
	return rgbToHSL(r, g, b).s, true
}
