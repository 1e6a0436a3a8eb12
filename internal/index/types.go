package index

import (
	"time"

	"github.com/skillhub-cli/skillhub/internal/registry"
)

// SchemaVersion is the index file format version. Load rejects any other
// value rather than guessing at its layout.
const SchemaVersion = "1"

// RegistryInfo records where one registry's contents came from.
type RegistryInfo struct {
	Locator   string    `json:"locator"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Index is the merged, deduplicated snapshot of all registries.
//
// Skills is sorted by name ascending and holds at most one record per
// name; the Query engine reads it as-is and never mutates it.
type Index struct {
	Version    string                  `json:"version"`
	UpdatedAt  time.Time               `json:"updated_at"`
	Registries map[string]RegistryInfo `json:"registries"`
	Skills     []registry.SkillRecord  `json:"skills"`
}
