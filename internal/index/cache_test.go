package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/skillhub-cli/skillhub/internal/registry"
)

func cacheAt(t *testing.T) *Cache {
	t.Helper()
	return NewCache(filepath.Join(t.TempDir(), "index.json"), DefaultTTL)
}

func writeIndexAge(t *testing.T, c *Cache, age time.Duration) {
	t.Helper()
	idx := &Index{
		Version:    SchemaVersion,
		UpdatedAt:  time.Now().UTC().Add(-age),
		Registries: map[string]RegistryInfo{},
	}
	b, err := json.Marshal(idx)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.Path(), b, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCache_SaveLoadRoundTrip(t *testing.T) {
	c := cacheAt(t)
	idx := &Index{
		Version:    SchemaVersion,
		UpdatedAt:  time.Now().UTC(),
		Registries: map[string]RegistryInfo{"local": {Locator: "/tmp/local.json"}},
		Skills:     []registry.SkillRecord{{Name: "alpha", Registry: "local"}},
	}
	if err := c.Save(idx); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Skills) != 1 || got.Skills[0].Name != "alpha" {
		t.Fatalf("unexpected skills: %+v", got.Skills)
	}
	if _, ok := got.Registries["local"]; !ok {
		t.Fatal("registries map lost in round trip")
	}
}

func TestCache_SaveCreatesParentDir(t *testing.T) {
	c := NewCache(filepath.Join(t.TempDir(), "deep", "nested", "index.json"), DefaultTTL)
	if err := c.Save(&Index{Version: SchemaVersion, UpdatedAt: time.Now()}); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestCache_FreshnessBoundary(t *testing.T) {
	cases := []struct {
		age   time.Duration
		fresh bool
	}{
		{23*time.Hour + 59*time.Minute, true},
		{24*time.Hour + 1*time.Minute, false},
	}
	for _, tc := range cases {
		c := cacheAt(t)
		writeIndexAge(t, c, tc.age)
		if got := c.IsFresh(); got != tc.fresh {
			t.Errorf("age %v: IsFresh() = %v, want %v", tc.age, got, tc.fresh)
		}
	}
}

func TestCache_MissingFileIsStale(t *testing.T) {
	c := cacheAt(t)
	if c.IsFresh() {
		t.Fatal("missing cache must be stale")
	}
	if _, err := c.Load(); err == nil {
		t.Fatal("missing cache must not load")
	}
}

func TestCache_CorruptFileBehavesAsAbsent(t *testing.T) {
	c := cacheAt(t)
	if err := os.WriteFile(c.Path(), []byte("{truncated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if c.IsFresh() {
		t.Fatal("corrupt cache must be stale")
	}
	if idx, err := c.Load(); err == nil || idx != nil {
		t.Fatalf("corrupt cache must not load: idx=%v err=%v", idx, err)
	}
}

func TestCache_UnknownSchemaVersionRejected(t *testing.T) {
	c := cacheAt(t)
	b, _ := json.Marshal(&Index{Version: "99", UpdatedAt: time.Now().UTC()})
	if err := os.WriteFile(c.Path(), b, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Load(); err == nil {
		t.Fatal("unknown schema version must not load")
	}
	if c.IsFresh() {
		t.Fatal("unknown schema version must be stale")
	}
}
