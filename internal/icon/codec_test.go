package icon

import (
	"reflect"
	"strings"
	"testing"
)

func testIcon() *Icon {
	return New("test-gem",
		&Circle{Type: KindCircle, CX: 50, CY: 50, R: 48, Style: Style{Fill: "#336699", Stroke: "#1a334c", StrokeWidth: 2}},
		&Polygon{Type: KindPolygon, Points: []Point{{X: 30, Y: 40}, {X: 70, Y: 40}, {X: 50, Y: 70}}, Style: Style{Fill: "#ffffff"}},
		&Polyline{Type: KindPolyline, Points: []Point{{X: 20, Y: 20}, {X: 80, Y: 30}}, StrokeStyle: StrokeStyle{Stroke: "#ff0000", StrokeWidth: 3}},
		&Arc{Type: KindArc, CX: 50, CY: 50, R: 30, StartAngle: 0, EndAngle: 180, StrokeStyle: StrokeStyle{Stroke: "#00ff00", StrokeWidth: 2}},
		&Rect{Type: KindRect, X: 10, Y: 10, Width: 20, Height: 15, Style: Style{Fill: "#abcdef"}},
		&Ellipse{Type: KindEllipse, CX: 50, CY: 60, RX: 12, RY: 8, Style: Style{Fill: "#fedcba"}},
		&Line{Type: KindLine, X1: 0, Y1: 0, X2: 100, Y2: 100, StrokeStyle: StrokeStyle{Stroke: "#123456", StrokeWidth: 1}},
	)
}

func TestRoundTrip(t *testing.T) {
	original := testIcon()

	data, err := Encode(original)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("Round trip changed the icon definition:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestDecodeRebuildsConcreteTypes(t *testing.T) {
	data, err := Encode(testIcon())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	wantKinds := []string{KindCircle, KindPolygon, KindPolyline, KindArc, KindRect, KindEllipse, KindLine}
	if len(decoded.Shapes) != len(wantKinds) {
		t.Fatalf("Expected %d shapes, got %d", len(wantKinds), len(decoded.Shapes))
	}
	for i, want := range wantKinds {
		if decoded.Shapes[i].Kind() != want {
			t.Errorf("Shape %d: expected kind %s, got %s", i, want, decoded.Shapes[i].Kind())
		}
	}
}

func TestDecodeUnknownShapeType(t *testing.T) {
	data := []byte(`{"id":"bad","viewBox":{"minX":0,"minY":0,"width":100,"height":100},"displaySize":{"width":32,"height":32},"shapes":[{"type":"star","cx":50}]}`)

	_, err := Decode(data)
	if err == nil {
		t.Fatal("Expected error for unknown shape type")
	}
	if !strings.Contains(err.Error(), "unknown shape type") {
		t.Errorf("Expected unknown shape type error, got: %v", err)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Fatal("Expected error for invalid JSON")
	}
}

func TestCatalogFileRoundTrip(t *testing.T) {
	icons := []*Icon{testIcon(), New("other", &Circle{Type: KindCircle, CX: 50, CY: 50, R: 10, Style: Style{Fill: "#000000"}})}

	data, err := EncodeCatalog(icons)
	if err != nil {
		t.Fatalf("EncodeCatalog failed: %v", err)
	}

	decoded, err := DecodeCatalog(data)
	if err != nil {
		t.Fatalf("DecodeCatalog failed: %v", err)
	}

	if !reflect.DeepEqual(icons, decoded) {
		t.Errorf("Catalog round trip changed the definitions")
	}
}
