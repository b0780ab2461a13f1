package icon

import (
	"encoding/json"
	"fmt"
)

// The JSON form of an icon carries each shape with a "type" discriminator.
// Decoding dispatches on it to rebuild the concrete shape structs, so an
// encode/decode round trip preserves every primitive exactly.

// Encode: serializes an icon definition to JSON
func Encode(ic *Icon) ([]byte, error) {
	for _, s := range ic.Shapes {
		if _, err := ensureKind(s); err != nil {
			return nil, fmt.Errorf("encode icon %s: %w", ic.ID, err)
		}
	}

	data, err := json.Marshal(ic)
	if err != nil {
		return nil, fmt.Errorf("encode icon %s: %w", ic.ID, err)
	}
	return data, nil
}

// Decode: parses an icon definition from JSON
func Decode(data []byte) (*Icon, error) {
	var ic Icon
	if err := json.Unmarshal(data, &ic); err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}
	return &ic, nil
}

// UnmarshalJSON rebuilds the concrete shape types from their "type" field
func (ic *Icon) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          string            `json:"id"`
		ViewBox     ViewBox           `json:"viewBox"`
		DisplaySize Size              `json:"displaySize"`
		Shapes      []json.RawMessage `json:"shapes"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal icon: %w", err)
	}

	shapes := make([]Shape, 0, len(raw.Shapes))
	for i, rawShape := range raw.Shapes {
		var head struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(rawShape, &head); err != nil {
			return fmt.Errorf("unmarshal shape %d: %w", i, err)
		}

		shape := NewShapeForType(head.Type)
		if shape == nil {
			return fmt.Errorf("unmarshal shape %d: unknown shape type: %q", i, head.Type)
		}

		if err := json.Unmarshal(rawShape, shape); err != nil {
			return fmt.Errorf("unmarshal shape %d (%s): %w", i, head.Type, err)
		}
		shapes = append(shapes, shape)
	}

	ic.ID = raw.ID
	ic.ViewBox = raw.ViewBox
	ic.DisplaySize = raw.DisplaySize
	ic.Shapes = shapes
	return nil
}

// CatalogFile: on-disk collection of icon definitions
type CatalogFile struct {
	Icons []*Icon `json:"icons"`
}

// DecodeCatalog: parses a collection of icon definitions from JSON
func DecodeCatalog(data []byte) ([]*Icon, error) {
	var file CatalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return file.Icons, nil
}

// EncodeCatalog: serializes a collection of icon definitions to JSON
func EncodeCatalog(icons []*Icon) ([]byte, error) {
	data, err := json.Marshal(CatalogFile{Icons: icons})
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}
