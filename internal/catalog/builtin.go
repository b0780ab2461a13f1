package catalog

import (
	"math"

	"main/internal/icon"
)

// Built-in resource icon set. Every icon is authored on the standard
// 100x100 canvas as a filled base disc with a darker border and an
// inner motif per resource type.

const (
	canvasCenter = 50.0
	baseRadius   = 48.0
)

// Base color per resource icon
var resourceColors = map[string]string{
	"stone":                "#808080",
	"iron":                 "#b0c4de",
	"copper":               "#b87333",
	"thorium":              "#4b0082",
	"monster-coin":         "#d4af37",
	"force-core":           "#ff0000",
	"spirit-core":          "#00ced1",
	"magic-core":           "#8a2be2",
	"void-core":            "#191919",
	"unstoppable-force":    "#ff4500",
	"serene-spirit":        "#32cd32",
	"multitudation-vortex": "#9664ff",
}

// Builtins: returns the full built-in resource icon set
func Builtins() []*icon.Icon {
	return []*icon.Icon{
		buildStone(),
		buildIron(),
		buildCopper(),
		buildThorium(),
		buildMonsterCoin(),
		buildForceCore(),
		buildSpiritCore(),
		buildMagicCore(),
		buildVoidCore(),
		buildUnstoppableForce(),
		buildSereneSpirit(),
		buildMultitudationVortex(),
	}
}

// baseDisc: the filled circle with darker border every icon starts from
func baseDisc(color string) *icon.Circle {
	return &icon.Circle{
		Type: icon.KindCircle,
		CX:   canvasCenter,
		CY:   canvasCenter,
		R:    baseRadius,
		Style: icon.Style{
			Fill:        color,
			Stroke:      icon.Border(color),
			StrokeWidth: 2,
		},
	}
}

// ringPoints: n points on a circle around the canvas center, with a
// per-point radius and a phase offset in radians
func ringPoints(n int, phase float64, radius func(i int) float64) []icon.Point {
	points := make([]icon.Point, 0, n)
	for i := 0; i < n; i++ {
		angle := phase + 2*math.Pi*float64(i)/float64(n)
		r := radius(i)
		points = append(points, icon.Point{
			X: canvasCenter + r*math.Cos(angle),
			Y: canvasCenter + r*math.Sin(angle),
		})
	}
	return points
}

func buildStone() *icon.Icon {
	color := resourceColors["stone"]

	// Irregular 7-sided rock face
	rock := &icon.Polygon{
		Type: icon.KindPolygon,
		Points: ringPoints(7, 0, func(i int) float64 {
			return baseRadius * (0.6 + 0.2*float64(i%3))
		}),
		Style: icon.Style{Fill: icon.Lighten(color, 30)},
	}

	return icon.New("stone", baseDisc(color), rock)
}

func buildIron() *icon.Icon {
	color := resourceColors["iron"]

	// Centered ingot bar
	ingot := &icon.Rect{
		Type:   icon.KindRect,
		X:      canvasCenter - baseRadius*0.6,
		Y:      canvasCenter - baseRadius*0.4,
		Width:  baseRadius * 1.2,
		Height: baseRadius * 0.8,
		Style: icon.Style{
			Fill:        icon.Lighten(color, 30),
			Stroke:      icon.Border(color),
			StrokeWidth: 1,
		},
	}

	return icon.New("iron", baseDisc(color), ingot)
}

func buildCopper() *icon.Icon {
	color := resourceColors["copper"]

	hexagon := &icon.Polygon{
		Type: icon.KindPolygon,
		Points: ringPoints(6, 0, func(int) float64 {
			return baseRadius * 0.7
		}),
		Style: icon.Style{Fill: icon.Lighten(color, 40)},
	}

	center := &icon.Circle{
		Type:  icon.KindCircle,
		CX:    canvasCenter,
		CY:    canvasCenter,
		R:     baseRadius / 4,
		Style: icon.Style{Fill: icon.Lighten(color, 60)},
	}

	return icon.New("copper", baseDisc(color), hexagon, center)
}

func buildThorium() *icon.Icon {
	color := resourceColors["thorium"]
	glow := icon.Lighten(color, 60)

	shapes := []icon.Shape{baseDisc(color)}

	// Radiation-style tri-dot arrangement
	for i := 0; i < 3; i++ {
		angle := 2 * math.Pi * float64(i) / 3
		offset := baseRadius * 0.4
		shapes = append(shapes, &icon.Circle{
			Type:  icon.KindCircle,
			CX:    canvasCenter + offset*math.Cos(angle),
			CY:    canvasCenter + offset*math.Sin(angle),
			R:     baseRadius / 5,
			Style: icon.Style{Fill: glow},
		})
	}

	shapes = append(shapes, &icon.Circle{
		Type:  icon.KindCircle,
		CX:    canvasCenter,
		CY:    canvasCenter,
		R:     baseRadius / 4,
		Style: icon.Style{Fill: glow},
	})

	return icon.New("thorium", shapes...)
}

func buildMonsterCoin() *icon.Icon {
	color := resourceColors["monster-coin"]

	head := &icon.Ellipse{
		Type:  icon.KindEllipse,
		CX:    canvasCenter,
		CY:    canvasCenter,
		RX:    baseRadius / 2,
		RY:    baseRadius / 2,
		Style: icon.Style{Fill: "#8b0000"},
	}

	eyeRadius := baseRadius / 6
	leftEye := &icon.Circle{
		Type:  icon.KindCircle,
		CX:    canvasCenter - baseRadius/4,
		CY:    canvasCenter - baseRadius/6,
		R:     eyeRadius,
		Style: icon.Style{Fill: "#ffffff"},
	}
	rightEye := &icon.Circle{
		Type:  icon.KindCircle,
		CX:    canvasCenter + baseRadius/4,
		CY:    canvasCenter - baseRadius/6,
		R:     eyeRadius,
		Style: icon.Style{Fill: "#ffffff"},
	}

	return icon.New("monster-coin", baseDisc(color), head, leftEye, rightEye)
}

func buildForceCore() *icon.Icon {
	color := resourceColors["force-core"]

	// White arrow pointing right
	arrow := &icon.Polygon{
		Type: icon.KindPolygon,
		Points: []icon.Point{
			{X: canvasCenter - baseRadius/2, Y: canvasCenter - baseRadius/3},
			{X: canvasCenter + baseRadius/2, Y: canvasCenter},
			{X: canvasCenter - baseRadius/2, Y: canvasCenter + baseRadius/3},
		},
		Style: icon.Style{Fill: "#ffffff"},
	}

	return icon.New("force-core", baseDisc(color), arrow)
}

func buildSpiritCore() *icon.Icon {
	color := resourceColors["spirit-core"]

	// Wispy curve through the disc
	points := make([]icon.Point, 0, 6)
	for i := 0; i < 6; i++ {
		t := float64(i) / 5
		points = append(points, icon.Point{
			X: canvasCenter - baseRadius/2 + baseRadius*t,
			Y: canvasCenter + baseRadius/3*math.Sin(t*math.Pi),
		})
	}

	wisp := &icon.Polyline{
		Type:        icon.KindPolyline,
		Points:      points,
		StrokeStyle: icon.StrokeStyle{Stroke: "#e0ffff", StrokeWidth: 3},
	}

	return icon.New("spirit-core", baseDisc(color), wisp)
}

func buildMagicCore() *icon.Icon {
	color := resourceColors["magic-core"]

	// Five-pointed star, alternating outer/inner radius
	star := &icon.Polygon{
		Type: icon.KindPolygon,
		Points: ringPoints(10, math.Pi/2, func(i int) float64 {
			if i%2 == 0 {
				return baseRadius * 0.7
			}
			return baseRadius * 0.4
		}),
		Style: icon.Style{Fill: "#ffd700"},
	}

	return icon.New("magic-core", baseDisc(color), star)
}

func buildVoidCore() *icon.Icon {
	color := resourceColors["void-core"]
	swirl := icon.Lighten(color, 120)

	shapes := []icon.Shape{baseDisc(color)}

	for i := 0; i < 4; i++ {
		shapes = append(shapes, &icon.Arc{
			Type:        icon.KindArc,
			CX:          canvasCenter,
			CY:          canvasCenter,
			R:           baseRadius * (0.8 - float64(i)*0.15),
			StartAngle:  float64(i) * 90,
			EndAngle:    float64(i+1) * 90,
			StrokeStyle: icon.StrokeStyle{Stroke: swirl, StrokeWidth: 2},
		})
	}

	// Black hole center
	shapes = append(shapes, &icon.Circle{
		Type:  icon.KindCircle,
		CX:    canvasCenter,
		CY:    canvasCenter,
		R:     baseRadius / 3,
		Style: icon.Style{Fill: color},
	})

	return icon.New("void-core", shapes...)
}

func buildUnstoppableForce() *icon.Icon {
	color := resourceColors["unstoppable-force"]

	shield := &icon.Ellipse{
		Type:  icon.KindEllipse,
		CX:    canvasCenter,
		CY:    canvasCenter,
		RX:    baseRadius / 2,
		RY:    baseRadius / 2,
		Style: icon.Style{Fill: "#ffffff"},
	}

	bar := &icon.Line{
		Type:        icon.KindLine,
		X1:          canvasCenter - baseRadius/1.5,
		Y1:          canvasCenter,
		X2:          canvasCenter + baseRadius/1.5,
		Y2:          canvasCenter,
		StrokeStyle: icon.StrokeStyle{Stroke: "#ffd700", StrokeWidth: 3},
	}

	return icon.New("unstoppable-force", baseDisc(color), shield, bar)
}

func buildSereneSpirit() *icon.Icon {
	color := resourceColors["serene-spirit"]

	vertical := &icon.Rect{
		Type:   icon.KindRect,
		X:      canvasCenter - baseRadius/8,
		Y:      canvasCenter - baseRadius/2,
		Width:  baseRadius / 4,
		Height: baseRadius,
		Style:  icon.Style{Fill: "#ffffff"},
	}
	horizontal := &icon.Rect{
		Type:   icon.KindRect,
		X:      canvasCenter - baseRadius/2,
		Y:      canvasCenter - baseRadius/8,
		Width:  baseRadius,
		Height: baseRadius / 4,
		Style:  icon.Style{Fill: "#ffffff"},
	}

	return icon.New("serene-spirit", baseDisc(color), vertical, horizontal)
}

func buildMultitudationVortex() *icon.Icon {
	color := resourceColors["multitudation-vortex"]

	shapes := []icon.Shape{baseDisc(color)}

	// Overlapping spiral arcs
	for i := 0; i < 4; i++ {
		shapes = append(shapes, &icon.Arc{
			Type:        icon.KindArc,
			CX:          canvasCenter,
			CY:          canvasCenter,
			R:           baseRadius * (0.7 - float64(i)*0.1),
			StartAngle:  float64(i) * 90,
			EndAngle:    float64(i+2) * 90,
			StrokeStyle: icon.StrokeStyle{Stroke: "#ffffff", StrokeWidth: 3},
		})
	}

	// Bouncing projectile dots
	for i := 0; i < 3; i++ {
		angle := 2*math.Pi*float64(i)/3 + math.Pi/6
		dist := baseRadius * 0.6
		shapes = append(shapes, &icon.Circle{
			Type:  icon.KindCircle,
			CX:    canvasCenter + dist*math.Cos(angle),
			CY:    canvasCenter + dist*math.Sin(angle),
			R:     baseRadius / 7,
			Style: icon.Style{Fill: "#dcdcff"},
		})
	}

	return icon.New("multitudation-vortex", shapes...)
}

// buildPlaceholder: question-mark icon for unknown identifiers.
// Each unknown ID gets its own generated hue so placeholders stay
// distinguishable next to each other.
func buildPlaceholder(id, color string) *icon.Icon {
	hook := &icon.Polyline{
		Type: icon.KindPolyline,
		Points: []icon.Point{
			{X: 42, Y: 38},
			{X: 45, Y: 31},
			{X: 55, Y: 31},
			{X: 58, Y: 38},
			{X: 50, Y: 47},
			{X: 50, Y: 54},
		},
		StrokeStyle: icon.StrokeStyle{Stroke: "#ffffff", StrokeWidth: 5},
	}

	dot := &icon.Circle{
		Type:  icon.KindCircle,
		CX:    canvasCenter,
		CY:    66,
		R:     4,
		Style: icon.Style{Fill: "#ffffff"},
	}

	return icon.New(id, baseDisc(color), hook, dot)
}
