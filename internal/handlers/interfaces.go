package handlers

import (
	"main/internal/icon"
)

// IconSource defines the catalog operations the handlers need
type IconSource interface {
	Get(id string) (*icon.Icon, error)
	Lookup(id string) *icon.Icon
	IDs() []string
	Count() int
}

// Scaler defines the scaled-definition lookup operation
type Scaler interface {
	Scaled(ic *icon.Icon, width, height float64) *icon.Icon
}
