package skill

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Installed describes one skill present in the install dir.
type Installed struct {
	Name        string
	Path        string
	Description string
	Version     string
}

// ListInstalled scans installDir for skill directories and reads each
// one's SKILL.md frontmatter when present. A directory without SKILL.md
// still counts as installed; its metadata is just empty.
func ListInstalled(installDir string) ([]Installed, error) {
	entries, err := os.ReadDir(installDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Installed{}, nil
		}
		return nil, err
	}

	var out []Installed
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ins := Installed{Name: e.Name(), Path: filepath.Join(installDir, e.Name())}
		if b, err := os.ReadFile(filepath.Join(ins.Path, "SKILL.md")); err == nil {
			h := splitFrontmatter(string(b))
			if v := strings.TrimSpace(h["description"]); v != "" {
				ins.Description = v
			}
			if v := strings.TrimSpace(h["version"]); v != "" {
				ins.Version = v
			}
		}
		out = append(out, ins)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// splitFrontmatter extracts string values from a YAML frontmatter block.
func splitFrontmatter(content string) map[string]string {
	s := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(s, "---") {
		return map[string]string{}
	}
	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return map[string]string{}
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(parts[1])), &raw); err != nil {
		return map[string]string{}
	}
	out := make(map[string]string)
	for k, v := range raw {
		if sv, ok := v.(string); ok {
			out[strings.ToLower(k)] = sv
		}
	}
	return out
}
