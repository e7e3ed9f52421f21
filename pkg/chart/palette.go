package chart

import "fmt"

// Fixed donut slice colors: soft red for the missing slice, light blue for
// the present slice.
const (
	fillMissing = "#ff9999"
	fillPresent = "#66b3ff"
)

// Endpoints of the blues ramp used for bars and heatmap cells.
var (
	bluesDark  = [3]int{0x08, 0x30, 0x6b} // saturated navy
	bluesLight = [3]int{0xde, 0xeb, 0xf7} // near-white blue
)

// Blues returns n hex colors running from the most saturated blue to the
// lightest. Bar charts assign Blues(n)[rank] so the most frequent category
// gets the strongest color.
func Blues(n int) []string {
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = lerpHex(bluesDark, bluesLight, t)
	}
	return out
}

// BluesScale maps t in [0, 1] onto the blues ramp, light to dark.
// Out-of-range values are clamped.
func BluesScale(t float64) string {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lerpHex(bluesLight, bluesDark, t)
}

func lerpHex(from, to [3]int, t float64) string {
	c := [3]int{}
	for i := range c {
		c[i] = from[i] + int(t*float64(to[i]-from[i]))
	}
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
