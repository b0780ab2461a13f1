package icon

// Logical canvas every icon is authored in.
const (
	CanvasWidth  = 100.0
	CanvasHeight = 100.0
)

// Default on-screen size icons are displayed at.
const (
	DefaultDisplayWidth  = 32.0
	DefaultDisplayHeight = 32.0
)

// ViewBox: the logical coordinate space an icon's shapes are defined in
type ViewBox struct {
	MinX   float64 `json:"minX" validate:"min=-10000,max=10000"`
	MinY   float64 `json:"minY" validate:"min=-10000,max=10000"`
	Width  float64 `json:"width" validate:"gt=0,max=10000"`
	Height float64 `json:"height" validate:"gt=0,max=10000"`
}

// Size: display dimensions in pixels
type Size struct {
	Width  float64 `json:"width" validate:"gt=0,max=10000"`
	Height float64 `json:"height" validate:"gt=0,max=10000"`
}

// Icon: a self-contained vector definition identified by a unique name.
// Shapes are ordered back-to-front. Icons are authored once and never
// mutated after registration.
type Icon struct {
	ID          string  `json:"id" validate:"required,max=50"`
	ViewBox     ViewBox `json:"viewBox"`
	DisplaySize Size    `json:"displaySize"`
	Shapes      []Shape `json:"shapes" validate:"required,min=1,max=200"`
}

// DefaultViewBox: the standard 100x100 canvas
func DefaultViewBox() ViewBox {
	return ViewBox{MinX: 0, MinY: 0, Width: CanvasWidth, Height: CanvasHeight}
}

// DefaultDisplaySize: the standard 32x32 display size
func DefaultDisplaySize() Size {
	return Size{Width: DefaultDisplayWidth, Height: DefaultDisplayHeight}
}

// New: creates an icon on the default canvas
func New(id string, shapes ...Shape) *Icon {
	return &Icon{
		ID:          id,
		ViewBox:     DefaultViewBox(),
		DisplaySize: DefaultDisplaySize(),
		Shapes:      shapes,
	}
}
