package index

import (
	"testing"

	"github.com/skillhub-cli/skillhub/internal/registry"
)

func loaded(name string, skills ...registry.SkillRecord) registry.Loaded {
	for i := range skills {
		skills[i].Registry = name
	}
	return registry.Loaded{
		Registry: registry.Source{Name: name, Locator: "/tmp/" + name + ".json"},
		Skills:   skills,
	}
}

func names(idx *Index) []string {
	out := make([]string, 0, len(idx.Skills))
	for _, s := range idx.Skills {
		out = append(out, s.Name)
	}
	return out
}

func TestMerge_SortsByNameRegardlessOfLoadOrder(t *testing.T) {
	a := loaded("a", registry.SkillRecord{Name: "zeta"}, registry.SkillRecord{Name: "alpha"})
	b := loaded("b", registry.SkillRecord{Name: "mid"})

	first := Merge([]registry.Loaded{a, b}, nil)
	second := Merge([]registry.Loaded{b, a}, nil)

	want := []string{"alpha", "mid", "zeta"}
	for i, idx := range []*Index{first, second} {
		got := names(idx)
		if len(got) != len(want) {
			t.Fatalf("merge %d: got %v want %v", i, got, want)
		}
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("merge %d: got %v want %v", i, got, want)
			}
		}
	}
}

func TestMerge_LocalWinsOverRemote(t *testing.T) {
	local := loaded("local", registry.SkillRecord{Name: "x", Description: "local copy"})
	remote := loaded("remote", registry.SkillRecord{Name: "x", Description: "remote copy"})

	idx := Merge([]registry.Loaded{local}, []registry.Loaded{remote})
	if len(idx.Skills) != 1 {
		t.Fatalf("expected 1 record after dedup, got %d", len(idx.Skills))
	}
	if idx.Skills[0].Description != "local copy" {
		t.Fatalf("local record should win: %+v", idx.Skills[0])
	}
	if idx.Skills[0].Registry != "local" {
		t.Fatalf("provenance should be local: %q", idx.Skills[0].Registry)
	}
}

func TestMerge_FirstRemoteWinsOverLater(t *testing.T) {
	r1 := loaded("first", registry.SkillRecord{Name: "y", Description: "from first"})
	r2 := loaded("second", registry.SkillRecord{Name: "y", Description: "from second"})

	idx := Merge(nil, []registry.Loaded{r1, r2})
	if len(idx.Skills) != 1 || idx.Skills[0].Description != "from first" {
		t.Fatalf("first-seen remote should win: %+v", idx.Skills)
	}
}

func TestMerge_EmptyRegistryStillAppearsInMap(t *testing.T) {
	idx := Merge([]registry.Loaded{loaded("empty")}, nil)
	if len(idx.Skills) != 0 {
		t.Fatalf("expected no skills, got %d", len(idx.Skills))
	}
	if _, ok := idx.Registries["empty"]; !ok {
		t.Fatal("empty registry missing from registries map")
	}
}

func TestMerge_StampsVersionAndTimestamp(t *testing.T) {
	idx := Merge(nil, nil)
	if idx.Version != SchemaVersion {
		t.Fatalf("unexpected schema version: %q", idx.Version)
	}
	if idx.UpdatedAt.IsZero() {
		t.Fatal("updated_at not set")
	}
}
