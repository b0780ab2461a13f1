package icon

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// Lighten: raises every channel of a hex color by amount (0-255 scale),
// clamping at white. Invalid input is returned unchanged.
func Lighten(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	d := amount / 255.0
	return colorful.Color{
		R: clamp01(c.R + d),
		G: clamp01(c.G + d),
		B: clamp01(c.B + d),
	}.Hex()
}

// Darken: lowers every channel of a hex color by amount (0-255 scale),
// clamping at black. Invalid input is returned unchanged.
func Darken(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	d := amount / 255.0
	return colorful.Color{
		R: clamp01(c.R - d),
		G: clamp01(c.G - d),
		B: clamp01(c.B - d),
	}.Hex()
}

// Border: the standard border tone for a filled shape
func Border(hex string) string {
	return Darken(hex, 40)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// HueGenerator: hands out evenly spaced hues at a fixed saturation and
// lightness, so the colors it derives are distinct but share one tone
type HueGenerator struct {
	saturation float64
	lightness  float64
	counter    int
	mu         sync.Mutex
}

func NewHueGenerator(saturation, lightness float64) *HueGenerator {
	return &HueGenerator{
		saturation: saturation,
		lightness:  lightness,
	}
}

// NextColor: returns the next color in the golden ratio hue sequence
func (hg *HueGenerator) NextColor() string {
	hg.mu.Lock()
	defer hg.mu.Unlock()

	const goldenRatio = 0.618033988749895
	hue := float64(hg.counter) * goldenRatio
	hue = hue - float64(int(hue)) // Keep fractional part
	hg.counter++

	return colorful.Hsl(hue*360, hg.saturation, hg.lightness).Hex()
}
