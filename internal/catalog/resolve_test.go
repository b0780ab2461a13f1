package catalog

import "testing"

func TestResolveResourceID(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		want     string
	}{
		{"Basic resource", "Stone", "stone"},
		{"Iron", "Iron", "iron"},
		{"Two word name", "Monster Coins", "monster-coin"},
		{"Crafted item", "Unstoppable Force", "unstoppable-force"},
		{"Core", "Void Core", "void-core"},
		{"Longest name", "Multitudation Vortex", "multitudation-vortex"},
		{"Unmapped food resource slugs", "Grain", "grain"},
		{"Unmapped multiword slugs", "Dragon Scale", "dragon-scale"},
		{"Already a slug", "stone", "stone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveResourceID(tt.resource); got != tt.want {
				t.Errorf("ResolveResourceID(%q) = %q, want %q", tt.resource, got, tt.want)
			}
		})
	}
}

func TestEveryMappedResourceHasBuiltinIcon(t *testing.T) {
	c := NewCatalog()
	if err := c.RegisterAll(Builtins()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	for resource, id := range resourceIconIDs {
		if !c.Has(id) {
			t.Errorf("Resource %q resolves to %q which has no built-in icon", resource, id)
		}
	}
}
