package svg

import (
	"strings"
	"testing"

	"main/internal/icon"
)

func TestWriteBasicDocument(t *testing.T) {
	ic := icon.New("gem",
		&icon.Circle{Type: icon.KindCircle, CX: 50, CY: 50, R: 48, Style: icon.Style{Fill: "#336699", Stroke: "#1a334c", StrokeWidth: 2}},
	)

	document, err := Write(ic)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	wantFragments := []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="32" height="32" viewBox="0 0 100 100">`,
		`<circle cx="50" cy="50" r="48" fill="#336699" stroke="#1a334c" stroke-width="2"/>`,
		`</svg>`,
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(document, fragment) {
			t.Errorf("Document missing fragment %q:\n%s", fragment, document)
		}
	}
}

func TestWriteAllShapeElements(t *testing.T) {
	ic := icon.New("all",
		&icon.Circle{Type: icon.KindCircle, CX: 50, CY: 50, R: 10, Style: icon.Style{Fill: "#111111"}},
		&icon.Ellipse{Type: icon.KindEllipse, CX: 50, CY: 50, RX: 20, RY: 10, Style: icon.Style{Fill: "#222222"}},
		&icon.Rect{Type: icon.KindRect, X: 5, Y: 5, Width: 10, Height: 10, Style: icon.Style{Fill: "#333333"}},
		&icon.Line{Type: icon.KindLine, X1: 0, Y1: 0, X2: 10, Y2: 10, StrokeStyle: icon.StrokeStyle{Stroke: "#444444", StrokeWidth: 1}},
		&icon.Polygon{Type: icon.KindPolygon, Points: []icon.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}}, Style: icon.Style{Fill: "#555555"}},
		&icon.Polyline{Type: icon.KindPolyline, Points: []icon.Point{{X: 1, Y: 1}, {X: 9, Y: 9}}, StrokeStyle: icon.StrokeStyle{Stroke: "#666666"}},
	)

	document, err := Write(ic)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	for _, element := range []string{"<circle ", "<ellipse ", "<rect ", "<line ", "<polygon ", "<polyline "} {
		if !strings.Contains(document, element) {
			t.Errorf("Document missing %s element:\n%s", element, document)
		}
	}
	if !strings.Contains(document, `points="1,1 2,1 2,2"`) {
		t.Errorf("Unexpected polygon point list:\n%s", document)
	}
	// Open shapes never carry a fill
	if !strings.Contains(document, `<line x1="0" y1="0" x2="10" y2="10" fill="none"`) {
		t.Errorf("Expected line with fill none:\n%s", document)
	}
}

func TestWriteArcAsPath(t *testing.T) {
	ic := icon.New("arc",
		&icon.Arc{Type: icon.KindArc, CX: 50, CY: 50, R: 10, StartAngle: 0, EndAngle: 90, StrokeStyle: icon.StrokeStyle{Stroke: "#ffffff", StrokeWidth: 2}},
	)

	document, err := Write(ic)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !strings.Contains(document, `<path d="M 60 50 A 10 10 0 0 1 50 60"`) {
		t.Errorf("Unexpected arc path:\n%s", document)
	}
}

func TestWriteLargeArcFlag(t *testing.T) {
	ic := icon.New("arc",
		&icon.Arc{Type: icon.KindArc, CX: 50, CY: 50, R: 10, StartAngle: 0, EndAngle: 270, StrokeStyle: icon.StrokeStyle{Stroke: "#ffffff"}},
	)

	document, err := Write(ic)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !strings.Contains(document, `A 10 10 0 1 1 `) {
		t.Errorf("Expected large-arc flag set:\n%s", document)
	}
}

func TestWriteDeterministic(t *testing.T) {
	ic := icon.New("gem",
		&icon.Circle{Type: icon.KindCircle, CX: 50, CY: 50, R: 48, Style: icon.Style{Fill: "#336699"}},
		&icon.Rect{Type: icon.KindRect, X: 10, Y: 10, Width: 5, Height: 5, Style: icon.Style{Fill: "#000000"}},
	)

	first, err := Write(ic)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	second, err := Write(ic)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if first != second {
		t.Error("Expected identical output for identical input")
	}
}

func TestWriteScaledDisplaySize(t *testing.T) {
	ic := icon.New("gem",
		&icon.Circle{Type: icon.KindCircle, CX: 50, CY: 50, R: 48, Style: icon.Style{Fill: "#336699"}},
	)

	document, err := Write(icon.ScaleTo(ic, 64, 64))
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if !strings.Contains(document, `width="64" height="64" viewBox="0 0 64 64"`) {
		t.Errorf("Expected scaled document header:\n%s", document)
	}
}
