package registry

import "time"

// SkillRecord is one installable unit's metadata as published by a registry.
//
// Tags and Verified are optional in registry files; a missing tags array
// decodes to an empty slice and a missing verified flag to false.
type SkillRecord struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Source      string   `json:"source,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Version     string   `json:"version,omitempty"`
	Verified    bool     `json:"verified,omitempty"`
	// Registry is the owning source's name, stamped at load time.
	// It is not part of the published record.
	Registry string `json:"registry,omitempty"`
}

// Source identifies one origin of skill records.
type Source struct {
	Name      string    `json:"name"`
	Locator   string    `json:"locator"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Loaded pairs a successfully loaded source with its stamped records.
type Loaded struct {
	Registry Source
	Skills   []SkillRecord
}

// registryFile is the on-disk / on-wire shape of one registry.
type registryFile struct {
	Skills []SkillRecord `json:"skills"`
}
