package icon

// Shape type identifiers
const (
	KindCircle   = "circle"
	KindEllipse  = "ellipse"
	KindRect     = "rect"
	KindLine     = "line"
	KindPolygon  = "polygon"
	KindPolyline = "polyline"
	KindArc      = "arc"
)

var AllowedShapeTypes = map[string]bool{
	KindCircle:   true,
	KindEllipse:  true,
	KindRect:     true,
	KindLine:     true,
	KindPolygon:  true,
	KindPolyline: true,
	KindArc:      true,
}

// Shape is a single geometric primitive of an icon definition.
// Concrete types are the structs below; Paint exposes the fill/stroke
// pair so validation does not need a type switch per style rule.
type Shape interface {
	Kind() string
	Paint() (fill, stroke string)
}

// NewShapeForType: returns an empty shape struct for a type identifier
func NewShapeForType(shapeType string) Shape {
	switch shapeType {
	case KindCircle:
		return &Circle{}
	case KindEllipse:
		return &Ellipse{}
	case KindRect:
		return &Rect{}
	case KindLine:
		return &Line{}
	case KindPolygon:
		return &Polygon{}
	case KindPolyline:
		return &Polyline{}
	case KindArc:
		return &Arc{}
	default:
		return nil
	}
}

// =============================================================================
// Common Embedded Structs
// =============================================================================

//  single point in a polygon or polyline
type Point struct {
	X float64 `json:"x" validate:"min=-10000,max=10000"`
	Y float64 `json:"y" validate:"min=-10000,max=10000"`
}

//  fill and stroke styling for closed shapes
type Style struct {
	Fill        string  `json:"fill,omitempty" validate:"omitempty,max=50"`
	Stroke      string  `json:"stroke,omitempty" validate:"omitempty,max=50"`
	StrokeWidth float64 `json:"strokeWidth,omitempty" validate:"omitempty,min=0,max=100"`
	Opacity     float64 `json:"opacity,omitempty" validate:"omitempty,min=0,max=1"`
}

// Paint: returns the fill/stroke pair
func (s Style) Paint() (string, string) { return s.Fill, s.Stroke }

//  stroke-only styling for open shapes
type StrokeStyle struct {
	Stroke      string  `json:"stroke,omitempty" validate:"omitempty,max=50"`
	StrokeWidth float64 `json:"strokeWidth,omitempty" validate:"omitempty,min=0,max=100"`
	Opacity     float64 `json:"opacity,omitempty" validate:"omitempty,min=0,max=1"`
}

// Paint: open shapes have no fill
func (s StrokeStyle) Paint() (string, string) { return "", s.Stroke }

// =============================================================================
// Simple Shape Types
// =============================================================================

type Circle struct {
	Type string  `json:"type"`
	CX   float64 `json:"cx" validate:"min=-10000,max=10000"`
	CY   float64 `json:"cy" validate:"min=-10000,max=10000"`
	R    float64 `json:"r" validate:"gt=0,max=10000"`
	Style
}

func (c *Circle) Kind() string { return KindCircle }

type Ellipse struct {
	Type string  `json:"type"`
	CX   float64 `json:"cx" validate:"min=-10000,max=10000"`
	CY   float64 `json:"cy" validate:"min=-10000,max=10000"`
	RX   float64 `json:"rx" validate:"gt=0,max=10000"`
	RY   float64 `json:"ry" validate:"gt=0,max=10000"`
	Style
}

func (e *Ellipse) Kind() string { return KindEllipse }

type Rect struct {
	Type   string  `json:"type"`
	X      float64 `json:"x" validate:"min=-10000,max=10000"`
	Y      float64 `json:"y" validate:"min=-10000,max=10000"`
	Width  float64 `json:"width" validate:"gt=0,max=10000"`
	Height float64 `json:"height" validate:"gt=0,max=10000"`
	Style
}

func (r *Rect) Kind() string { return KindRect }

// =============================================================================
// Line-Based Shape Types
// =============================================================================

type Line struct {
	Type string  `json:"type"`
	X1   float64 `json:"x1" validate:"min=-10000,max=10000"`
	Y1   float64 `json:"y1" validate:"min=-10000,max=10000"`
	X2   float64 `json:"x2" validate:"min=-10000,max=10000"`
	Y2   float64 `json:"y2" validate:"min=-10000,max=10000"`
	StrokeStyle
}

func (l *Line) Kind() string { return KindLine }

type Polyline struct {
	Type   string  `json:"type"`
	Points []Point `json:"points" validate:"required,min=2,max=1000,dive"`
	StrokeStyle
}

func (p *Polyline) Kind() string { return KindPolyline }

// =============================================================================
// Complex Shape Types
// =============================================================================

type Polygon struct {
	Type   string  `json:"type"`
	Points []Point `json:"points" validate:"required,min=3,max=1000,dive"`
	Style
}

func (p *Polygon) Kind() string { return KindPolygon }

// Arc: a circular arc from StartAngle to EndAngle (degrees, clockwise)
type Arc struct {
	Type       string  `json:"type"`
	CX         float64 `json:"cx" validate:"min=-10000,max=10000"`
	CY         float64 `json:"cy" validate:"min=-10000,max=10000"`
	R          float64 `json:"r" validate:"gt=0,max=10000"`
	StartAngle float64 `json:"startAngle" validate:"min=-360,max=720"`
	EndAngle   float64 `json:"endAngle" validate:"min=-360,max=720"`
	StrokeStyle
}

func (a *Arc) Kind() string { return KindArc }

// ensureKind: fills in an empty declared type and rejects a mismatched one
func ensureKind(s Shape) (string, error) {
	var declared *string
	switch v := s.(type) {
	case *Circle:
		declared = &v.Type
	case *Ellipse:
		declared = &v.Type
	case *Rect:
		declared = &v.Type
	case *Line:
		declared = &v.Type
	case *Polygon:
		declared = &v.Type
	case *Polyline:
		declared = &v.Type
	case *Arc:
		declared = &v.Type
	default:
		return "", errUnknownShape(s)
	}

	if *declared == "" {
		*declared = s.Kind()
	}
	if *declared != s.Kind() {
		return *declared, errShapeTypeMismatch(*declared, s.Kind())
	}
	return *declared, nil
}
