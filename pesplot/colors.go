package pesplot

import "math"

//hsv converts a hue in degrees and saturation and value in [0,1] to
//8-bit RGB, via the chroma form of the conversion.
func hsv(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(math.Mod(h, 360)+360, 360) / 60
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h, 2)-1))
	var r, g, b float64
	switch {
	case h < 1:
		r, g, b = c, x, 0
	case h < 2:
		r, g, b = x, c, 0
	case h < 3:
		r, g, b = 0, c, x
	case h < 4:
		r, g, b = 0, x, c
	case h < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	m := v - c
	return uint8(255 * (r + m)), uint8(255 * (g + m)), uint8(255 * (b + m))
}

//colors gives path number key of total a fully saturated hue, spread
//evenly over the circle minus a gap: the gap keeps the first and last
//paths apart, and it is placed on the yellow band, which reads badly
//over the contour palette.
func colors(key, total int) (r, g, b uint8) {
	if total < 1 {
		total = 1
	}
	h := 300 * float64(key) / float64(total)
	if h > 45 {
		h += 45 //jump the yellows
	}
	return hsv(h, 1, 1)
}
