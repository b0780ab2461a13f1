package catalog

import "strings"

// resourceIconIDs maps game resource display names to icon identifiers
var resourceIconIDs = map[string]string{
	"Stone":                "stone",
	"Iron":                 "iron",
	"Copper":               "copper",
	"Thorium":              "thorium",
	"Monster Coins":        "monster-coin",
	"Force Core":           "force-core",
	"Spirit Core":          "spirit-core",
	"Magic Core":           "magic-core",
	"Void Core":            "void-core",
	"Unstoppable Force":    "unstoppable-force",
	"Serene Spirit":        "serene-spirit",
	"Multitudation Vortex": "multitudation-vortex",
}

// ResolveResourceID: converts a resource display name to its icon
// identifier. Unmapped names fall back to a lowercase-hyphen slug so
// new resource types still resolve to a stable ID.
func ResolveResourceID(resourceName string) string {
	if id, ok := resourceIconIDs[resourceName]; ok {
		return id
	}
	return strings.ReplaceAll(strings.ToLower(resourceName), " ", "-")
}
