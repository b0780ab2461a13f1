// Package svg serializes icon definitions to standalone SVG documents.
// It is write-only: this module never parses or rasterizes SVG.
package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"main/internal/icon"
)

// Write: serializes an icon definition to an SVG document. Shapes are
// emitted in definition order, so output is deterministic for a given
// icon.
func Write(ic *icon.Icon) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		num(ic.DisplaySize.Width), num(ic.DisplaySize.Height),
		num(ic.ViewBox.MinX), num(ic.ViewBox.MinY), num(ic.ViewBox.Width), num(ic.ViewBox.Height))
	b.WriteString("\n")

	for i, shape := range ic.Shapes {
		element, err := writeShape(shape)
		if err != nil {
			return "", fmt.Errorf("write icon %s: shape %d: %w", ic.ID, i, err)
		}
		b.WriteString("  ")
		b.WriteString(element)
		b.WriteString("\n")
	}

	b.WriteString("</svg>\n")
	return b.String(), nil
}

func writeShape(s icon.Shape) (string, error) {
	switch shape := s.(type) {
	case *icon.Circle:
		return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s"%s/>`,
			num(shape.CX), num(shape.CY), num(shape.R),
			styleAttrs(shape.Fill, shape.Stroke, shape.StrokeWidth, shape.Opacity)), nil
	case *icon.Ellipse:
		return fmt.Sprintf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`,
			num(shape.CX), num(shape.CY), num(shape.RX), num(shape.RY),
			styleAttrs(shape.Fill, shape.Stroke, shape.StrokeWidth, shape.Opacity)), nil
	case *icon.Rect:
		return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s"%s/>`,
			num(shape.X), num(shape.Y), num(shape.Width), num(shape.Height),
			styleAttrs(shape.Fill, shape.Stroke, shape.StrokeWidth, shape.Opacity)), nil
	case *icon.Line:
		return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`,
			num(shape.X1), num(shape.Y1), num(shape.X2), num(shape.Y2),
			styleAttrs("none", shape.Stroke, shape.StrokeWidth, shape.Opacity)), nil
	case *icon.Polygon:
		return fmt.Sprintf(`<polygon points="%s"%s/>`,
			pointList(shape.Points),
			styleAttrs(shape.Fill, shape.Stroke, shape.StrokeWidth, shape.Opacity)), nil
	case *icon.Polyline:
		return fmt.Sprintf(`<polyline points="%s"%s/>`,
			pointList(shape.Points),
			styleAttrs("none", shape.Stroke, shape.StrokeWidth, shape.Opacity)), nil
	case *icon.Arc:
		return fmt.Sprintf(`<path d="%s"%s/>`,
			arcPath(shape),
			styleAttrs("none", shape.Stroke, shape.StrokeWidth, shape.Opacity)), nil
	default:
		return "", fmt.Errorf("unknown shape type %T", s)
	}
}

// arcPath: an arc element as an SVG path (move to start, arc to end)
func arcPath(a *icon.Arc) string {
	startRad := a.StartAngle * math.Pi / 180
	endRad := a.EndAngle * math.Pi / 180

	x1 := a.CX + a.R*math.Cos(startRad)
	y1 := a.CY + a.R*math.Sin(startRad)
	x2 := a.CX + a.R*math.Cos(endRad)
	y2 := a.CY + a.R*math.Sin(endRad)

	largeArc := 0
	if math.Abs(a.EndAngle-a.StartAngle) > 180 {
		largeArc = 1
	}

	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s",
		num(x1), num(y1), num(a.R), num(a.R), largeArc, num(x2), num(y2))
}

// styleAttrs: fill/stroke presentation attributes. An empty fill on a
// closed shape means "paint nothing", which SVG spells fill="none".
func styleAttrs(fill, stroke string, strokeWidth, opacity float64) string {
	var b strings.Builder

	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(&b, ` fill="%s"`, fill)

	if stroke != "" && stroke != "none" {
		fmt.Fprintf(&b, ` stroke="%s"`, stroke)
		if strokeWidth > 0 {
			fmt.Fprintf(&b, ` stroke-width="%s"`, num(strokeWidth))
		}
	}
	if opacity > 0 && opacity < 1 {
		fmt.Fprintf(&b, ` opacity="%s"`, num(opacity))
	}

	return b.String()
}

func pointList(points []icon.Point) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, num(p.X)+","+num(p.Y))
	}
	return strings.Join(parts, " ")
}

// num: shortest decimal form of a coordinate, capped at 3 decimals
func num(v float64) string {
	rounded := math.Round(v*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
