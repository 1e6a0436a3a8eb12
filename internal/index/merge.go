package index

import (
	"sort"
	"time"

	"github.com/skillhub-cli/skillhub/internal/registry"
)

// Merge combines loaded registries into one Index.
//
// Local sources are folded in first, then remotes. A remote record is
// added only if no earlier source already contributed the same name, so
// local wins over remote and earlier remotes win over later ones. The
// final sequence is sorted by name ascending regardless of load order.
func Merge(local, remote []registry.Loaded) *Index {
	idx := &Index{
		Version:    SchemaVersion,
		UpdatedAt:  time.Now().UTC(),
		Registries: make(map[string]RegistryInfo),
	}

	seen := make(map[string]struct{})
	fold := func(loads []registry.Loaded) {
		for _, l := range loads {
			idx.Registries[l.Registry.Name] = RegistryInfo{
				Locator:   l.Registry.Locator,
				FetchedAt: l.Registry.FetchedAt,
			}
			for _, s := range l.Skills {
				if _, ok := seen[s.Name]; ok {
					continue
				}
				seen[s.Name] = struct{}{}
				idx.Skills = append(idx.Skills, s)
			}
		}
	}
	fold(local)
	fold(remote)

	sort.Slice(idx.Skills, func(i, j int) bool {
		return idx.Skills[i].Name < idx.Skills[j].Name
	})
	return idx
}
