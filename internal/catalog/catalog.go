package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"main/internal/icon"
)

// ErrNotFound: returned by Get when no icon is registered under an ID
var ErrNotFound = errors.New("icon not found")

// Catalog: the registry of icon definitions. Identifiers are unique;
// registered icons are treated as immutable. Lookups after startup are
// read-only, so the registry is safe for concurrent use.
type Catalog struct {
	icons        map[string]*icon.Icon
	placeholders map[string]*icon.Icon
	validator    *icon.Validator
	hueGen       *icon.HueGenerator
	mu           sync.RWMutex
}

// Placeholder discs share a vivid mid-tone so generated hues stay
// readable behind the white question mark.
const (
	placeholderSaturation = 0.85
	placeholderLightness  = 0.55
)

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		icons:        make(map[string]*icon.Icon),
		placeholders: make(map[string]*icon.Icon),
		validator:    icon.NewValidator(),
		hueGen:       icon.NewHueGenerator(placeholderSaturation, placeholderLightness),
	}
}

// Register: validates an icon and adds it under its ID.
// Registering a duplicate identifier is an error.
func (c *Catalog) Register(ic *icon.Icon) error {
	if err := c.validator.ValidateAndSanitize(ic); err != nil {
		return fmt.Errorf("register icon: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.icons[ic.ID]; exists {
		return fmt.Errorf("register icon: duplicate identifier %q", ic.ID)
	}

	c.icons[ic.ID] = ic
	return nil
}

// RegisterAll: registers a batch of icons, stopping at the first failure
func (c *Catalog) RegisterAll(icons []*icon.Icon) error {
	for _, ic := range icons {
		if err := c.Register(ic); err != nil {
			return err
		}
	}
	return nil
}

// Get: retrieves an icon by ID
func (c *Catalog) Get(id string) (*icon.Icon, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ic, exists := c.icons[id]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return ic, nil
}

// Has: checks whether an icon is registered under an ID
func (c *Catalog) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, exists := c.icons[id]
	return exists
}

// Lookup: retrieves an icon by ID, falling back to a generated
// placeholder for unknown identifiers. Placeholders are kept so repeat
// lookups of the same unknown ID return the same definition.
func (c *Catalog) Lookup(id string) *icon.Icon {
	c.mu.RLock()
	if ic, exists := c.icons[id]; exists {
		c.mu.RUnlock()
		return ic
	}
	if ph, exists := c.placeholders[id]; exists {
		c.mu.RUnlock()
		return ph
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-check under the write lock
	if ph, exists := c.placeholders[id]; exists {
		return ph
	}

	ph := buildPlaceholder(icon.SanitizeString(id), c.hueGen.NextColor())
	c.placeholders[id] = ph
	return ph
}

// Unregister: removes an icon from the catalog
// Returns the removed icon, or nil if not found.
func (c *Catalog) Unregister(id string) *icon.Icon {
	c.mu.Lock()
	defer c.mu.Unlock()

	ic := c.icons[id]
	delete(c.icons, id)
	return ic
}

// IDs: returns the sorted identifiers of all registered icons
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.icons))
	for id := range c.icons {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count: returns the number of registered icons
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.icons)
}
