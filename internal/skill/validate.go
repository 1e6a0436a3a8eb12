package skill

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/skillhub-cli/skillhub/internal/registry"
)

var nameRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateRecord checks one skill record's structure and returns every
// problem found, not just the first.
func ValidateRecord(s registry.SkillRecord) []error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	} else if !nameRe.MatchString(s.Name) {
		errs = append(errs, fmt.Errorf("name %q must be lowercase hyphen-separated", s.Name))
	}
	if s.Source == "" {
		errs = append(errs, fmt.Errorf("source is required"))
	}
	if s.Description == "" {
		errs = append(errs, fmt.Errorf("description is empty"))
	}
	for _, tag := range s.Tags {
		if tag != strings.ToLower(tag) || strings.TrimSpace(tag) != tag {
			errs = append(errs, fmt.Errorf("tag %q must be trimmed lowercase", tag))
		}
	}
	return errs
}

// ValidateRegistryFile parses a registry JSON file and validates every
// record in it. The returned map is keyed by record name (or its index
// when the name is missing).
func ValidateRegistryFile(path string) (map[string][]error, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	var rf struct {
		Skills []registry.SkillRecord `json:"skills"`
	}
	if err := json.Unmarshal(b, &rf); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	out := make(map[string][]error)
	for i, s := range rf.Skills {
		if errs := ValidateRecord(s); len(errs) > 0 {
			key := s.Name
			if key == "" {
				key = fmt.Sprintf("#%d", i)
			}
			out[key] = errs
		}
	}
	return out, nil
}
