package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// maxRedirects bounds redirect-following on remote fetches.
	maxRedirects = 5
	// FetchTimeout bounds one remote registry fetch.
	FetchTimeout = 10 * time.Second
)

// SourceError records a per-source failure that did not abort the load.
type SourceError struct {
	Name string
	Err  error
}

func (e SourceError) Error() string {
	return fmt.Sprintf("registry %s: %v", e.Name, e.Err)
}

func (e SourceError) Unwrap() error { return e.Err }

// LoadLocal reads every *.json registry file under dir. Each file is one
// registry named after its file stem. A file that cannot be read or parsed
// is skipped and reported in the returned error list; loading continues.
// An absent dir yields zero sources, not an error.
func LoadLocal(dir string) ([]Loaded, []SourceError) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []SourceError{{Name: dir, Err: fmt.Errorf("cannot read registries dir: %w", err)}}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var out []Loaded
	var errs []SourceError
	for _, fn := range names {
		name := strings.TrimSuffix(fn, ".json")
		path := filepath.Join(dir, fn)
		b, err := os.ReadFile(path)
		if err != nil {
			errs = append(errs, SourceError{Name: name, Err: fmt.Errorf("cannot read %s: %w", path, err)})
			continue
		}
		var rf registryFile
		if err := json.Unmarshal(b, &rf); err != nil {
			errs = append(errs, SourceError{Name: name, Err: fmt.Errorf("invalid JSON in %s: %w", path, err)})
			continue
		}
		out = append(out, stamp(Source{Name: name, Locator: path, FetchedAt: time.Now().UTC()}, rf.Skills))
	}
	return out, errs
}

// FetchRemote downloads one remote registry. Redirects (301/302) are
// followed up to maxRedirects; any other non-2xx status is an error.
func FetchRemote(ctx context.Context, name, url string) (Loaded, error) {
	client := &http.Client{
		Timeout: FetchTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Loaded{}, err
	}
	req.Header.Set("User-Agent", "skillhub")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return Loaded{}, fmt.Errorf("fetch %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Loaded{}, fmt.Errorf("fetch %s failed: HTTP %d", url, resp.StatusCode)
	}

	var rf registryFile
	if err := json.Unmarshal(body, &rf); err != nil {
		return Loaded{}, fmt.Errorf("invalid JSON from %s: %w", url, err)
	}
	return stamp(Source{Name: name, Locator: url, FetchedAt: time.Now().UTC()}, rf.Skills), nil
}

// stamp tags every record with its owning registry and applies defaults.
func stamp(src Source, skills []SkillRecord) Loaded {
	out := make([]SkillRecord, 0, len(skills))
	for _, s := range skills {
		s.Registry = src.Name
		if s.Tags == nil {
			s.Tags = []string{}
		}
		out = append(out, s)
	}
	return Loaded{Registry: src, Skills: out}
}
