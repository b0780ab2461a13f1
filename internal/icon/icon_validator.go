package icon

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/microcosm-cc/bluemonday"
)

// package-level policy for SanitizeString
var sanitizePolicy = bluemonday.StrictPolicy()

// SanitizeString: strips any HTML/scripts from a string value
func SanitizeString(s string) string {
	return sanitizePolicy.Sanitize(s)
}

// Validator: validation and sanitization of icon definitions
type Validator struct {
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

func NewValidator() *Validator {
	// removes all HTML/scripts
	policy := bluemonday.StrictPolicy()

	return &Validator{
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		sanitizer: policy,
	}
}

// ValidateAndSanitize: validates an icon definition and sanitizes its
// string fields in place. Checks the viewbox, every shape against its
// schema, and that every shape carries a valid fill and/or stroke.
func (v *Validator) ValidateAndSanitize(ic *Icon) error {
	if ic == nil {
		return fmt.Errorf("nil icon")
	}

	ic.ID = v.sanitizer.Sanitize(ic.ID)

	// Validate the icon struct (ID, viewbox, display size, shape count)
	if err := v.validate.Struct(ic); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	for i, shape := range ic.Shapes {
		if shape == nil {
			return fmt.Errorf("shape %d is nil", i)
		}

		// Declared type must match the concrete shape
		shapeType, err := ensureKind(shape)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		if !AllowedShapeTypes[shapeType] {
			return fmt.Errorf("shape %d: invalid shape type: %s", i, shapeType)
		}

		v.sanitizeShape(shape)

		// Validate shape geometry and style ranges
		if err := v.validate.Struct(shape); err != nil {
			if validationErrors, ok := err.(validator.ValidationErrors); ok {
				return fmt.Errorf("shape %d (%s): %w", i, shapeType, formatValidationErrors(validationErrors))
			}
			return fmt.Errorf("shape %d (%s): validation failed: %w", i, shapeType, err)
		}

		// Every shape needs a valid fill and/or stroke
		fill, stroke := shape.Paint()
		if err := validateColor(fill); err != nil {
			return fmt.Errorf("shape %d (%s): fill: %w", i, shapeType, err)
		}
		if err := validateColor(stroke); err != nil {
			return fmt.Errorf("shape %d (%s): stroke: %w", i, shapeType, err)
		}
		if isNoPaint(fill) && isNoPaint(stroke) {
			return fmt.Errorf("shape %d (%s): neither fill nor stroke specified", i, shapeType)
		}
	}

	return nil
}

// sanitizeShape: sanitizes the color strings of a shape in place
func (v *Validator) sanitizeShape(s Shape) {
	switch shape := s.(type) {
	case *Circle:
		shape.Fill = v.sanitizer.Sanitize(shape.Fill)
		shape.Stroke = v.sanitizer.Sanitize(shape.Stroke)
	case *Ellipse:
		shape.Fill = v.sanitizer.Sanitize(shape.Fill)
		shape.Stroke = v.sanitizer.Sanitize(shape.Stroke)
	case *Rect:
		shape.Fill = v.sanitizer.Sanitize(shape.Fill)
		shape.Stroke = v.sanitizer.Sanitize(shape.Stroke)
	case *Polygon:
		shape.Fill = v.sanitizer.Sanitize(shape.Fill)
		shape.Stroke = v.sanitizer.Sanitize(shape.Stroke)
	case *Line:
		shape.Stroke = v.sanitizer.Sanitize(shape.Stroke)
	case *Polyline:
		shape.Stroke = v.sanitizer.Sanitize(shape.Stroke)
	case *Arc:
		shape.Stroke = v.sanitizer.Sanitize(shape.Stroke)
	}
}

// isNoPaint: empty or "none" means the attribute paints nothing
func isNoPaint(c string) bool {
	return c == "" || c == "none"
}

// validateColor: a color is empty, "none", or a parseable hex value
func validateColor(c string) error {
	if isNoPaint(c) {
		return nil
	}
	if _, err := colorful.Hex(c); err != nil {
		return fmt.Errorf("invalid color %q", c)
	}
	return nil
}

func errUnknownShape(s Shape) error {
	return fmt.Errorf("unknown shape type %T", s)
}

func errShapeTypeMismatch(declared, actual string) error {
	return fmt.Errorf("declared type %q does not match shape type %q", declared, actual)
}

// formatValidationErrors converts validator errors to a user-friendly error message
func formatValidationErrors(errors validator.ValidationErrors) error {
	var messages []string
	for _, err := range errors {
		messages = append(messages, formatSingleError(err))
	}
	return fmt.Errorf("validation failed: %s", messages[0]) // Return first error for simplicity
}

// formatSingleError formats a single validation error with common cases
func formatSingleError(err validator.FieldError) string {
	field := err.Field()
	tag := err.Tag()

	switch tag {
	case "required":
		return fmt.Sprintf("'%s' is required", field)
	case "min", "max", "gt":
		return fmt.Sprintf("'%s' value out of allowed range", field)
	default:
		return fmt.Sprintf("'%s' is invalid", field)
	}
}
