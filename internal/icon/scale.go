package icon

import "math"

// ScaleTo: returns a copy of the icon with its geometry mapped from the
// viewbox onto a width x height display area. The source icon is never
// mutated. Radii and stroke widths use the smaller axis factor so
// non-uniform scaling cannot push circular shapes outside the canvas.
func ScaleTo(ic *Icon, width, height float64) *Icon {
	sx := width / ic.ViewBox.Width
	sy := height / ic.ViewBox.Height
	sr := math.Min(sx, sy)

	scaled := &Icon{
		ID:          ic.ID,
		ViewBox:     ViewBox{MinX: 0, MinY: 0, Width: width, Height: height},
		DisplaySize: Size{Width: width, Height: height},
		Shapes:      make([]Shape, 0, len(ic.Shapes)),
	}

	for _, shape := range ic.Shapes {
		scaled.Shapes = append(scaled.Shapes, scaleShape(shape, ic.ViewBox, sx, sy, sr))
	}

	return scaled
}

func scaleShape(s Shape, vb ViewBox, sx, sy, sr float64) Shape {
	tx := func(x float64) float64 { return (x - vb.MinX) * sx }
	ty := func(y float64) float64 { return (y - vb.MinY) * sy }

	switch shape := s.(type) {
	case *Circle:
		out := *shape
		out.CX = tx(shape.CX)
		out.CY = ty(shape.CY)
		out.R = shape.R * sr
		out.StrokeWidth = shape.StrokeWidth * sr
		return &out
	case *Ellipse:
		out := *shape
		out.CX = tx(shape.CX)
		out.CY = ty(shape.CY)
		out.RX = shape.RX * sx
		out.RY = shape.RY * sy
		out.StrokeWidth = shape.StrokeWidth * sr
		return &out
	case *Rect:
		out := *shape
		out.X = tx(shape.X)
		out.Y = ty(shape.Y)
		out.Width = shape.Width * sx
		out.Height = shape.Height * sy
		out.StrokeWidth = shape.StrokeWidth * sr
		return &out
	case *Line:
		out := *shape
		out.X1 = tx(shape.X1)
		out.Y1 = ty(shape.Y1)
		out.X2 = tx(shape.X2)
		out.Y2 = ty(shape.Y2)
		out.StrokeWidth = shape.StrokeWidth * sr
		return &out
	case *Polygon:
		out := *shape
		out.Points = scalePoints(shape.Points, tx, ty)
		out.StrokeWidth = shape.StrokeWidth * sr
		return &out
	case *Polyline:
		out := *shape
		out.Points = scalePoints(shape.Points, tx, ty)
		out.StrokeWidth = shape.StrokeWidth * sr
		return &out
	case *Arc:
		out := *shape
		out.CX = tx(shape.CX)
		out.CY = ty(shape.CY)
		out.R = shape.R * sr
		out.StrokeWidth = shape.StrokeWidth * sr
		return &out
	default:
		return s
	}
}

func scalePoints(points []Point, tx, ty func(float64) float64) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{X: tx(p.X), Y: ty(p.Y)}
	}
	return out
}
