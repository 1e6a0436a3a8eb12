package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func writeRegistry(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadLocal_StampsRegistryName(t *testing.T) {
	dir := t.TempDir()
	writeRegistry(t, dir, "community.json", `{"skills":[{"name":"alpha","description":"first","source":"o/r"}]}`)

	loaded, errs := LoadLocal(dir)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(loaded) != 1 {
		t.Fatalf("expected 1 registry, got %d", len(loaded))
	}
	reg := loaded[0]
	if reg.Registry.Name != "community" {
		t.Fatalf("unexpected registry name: %q", reg.Registry.Name)
	}
	if reg.Registry.FetchedAt.IsZero() {
		t.Fatal("fetched_at not set")
	}
	if len(reg.Skills) != 1 || reg.Skills[0].Registry != "community" {
		t.Fatalf("record not stamped with registry: %+v", reg.Skills)
	}
	if reg.Skills[0].Tags == nil {
		t.Fatal("missing tags should default to empty slice")
	}
}

func TestLoadLocal_SkipsBadFilesAndContinues(t *testing.T) {
	dir := t.TempDir()
	writeRegistry(t, dir, "bad.json", `{not json`)
	writeRegistry(t, dir, "good.json", `{"skills":[{"name":"beta"}]}`)

	loaded, errs := LoadLocal(dir)
	if len(loaded) != 1 || loaded[0].Registry.Name != "good" {
		t.Fatalf("expected only the good registry, got %+v", loaded)
	}
	if len(errs) != 1 || errs[0].Name != "bad" {
		t.Fatalf("expected one error for bad.json, got %v", errs)
	}
}

func TestLoadLocal_AbsentDirIsNotAnError(t *testing.T) {
	loaded, errs := LoadLocal(filepath.Join(t.TempDir(), "nope"))
	if len(loaded) != 0 || len(errs) != 0 {
		t.Fatalf("absent dir should yield nothing: %v %v", loaded, errs)
	}
}

func TestLoadLocal_IgnoresNonJSONEntries(t *testing.T) {
	dir := t.TempDir()
	writeRegistry(t, dir, "notes.txt", "hello")
	if err := os.MkdirAll(filepath.Join(dir, "sub.json"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeRegistry(t, dir, "main.json", `{"skills":[]}`)

	loaded, errs := LoadLocal(dir)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(loaded) != 1 || loaded[0].Registry.Name != "main" {
		t.Fatalf("expected only main.json, got %+v", loaded)
	}
}

func TestFetchRemote_HappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"skills":[{"name":"gamma","tags":["x"]}]}`))
	}))
	defer srv.Close()

	l, err := FetchRemote(context.Background(), "hub", srv.URL)
	if err != nil {
		t.Fatalf("FetchRemote: %v", err)
	}
	if l.Registry.Name != "hub" || l.Registry.Locator != srv.URL {
		t.Fatalf("unexpected source: %+v", l.Registry)
	}
	if len(l.Skills) != 1 || l.Skills[0].Registry != "hub" {
		t.Fatalf("record not stamped: %+v", l.Skills)
	}
}

func TestFetchRemote_FollowsRedirects(t *testing.T) {
	var final http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"skills":[{"name":"delta"}]}`))
	}
	finalSrv := httptest.NewServer(final)
	defer finalSrv.Close()
	redirSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, finalSrv.URL, http.StatusMovedPermanently)
	}))
	defer redirSrv.Close()

	l, err := FetchRemote(context.Background(), "hub", redirSrv.URL)
	if err != nil {
		t.Fatalf("FetchRemote: %v", err)
	}
	if len(l.Skills) != 1 || l.Skills[0].Name != "delta" {
		t.Fatalf("unexpected skills: %+v", l.Skills)
	}
}

func TestFetchRemote_BoundsRedirectChain(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL, http.StatusFound) // redirects to itself forever
	}))
	defer srv.Close()

	if _, err := FetchRemote(context.Background(), "loop", srv.URL); err == nil {
		t.Fatal("expected redirect-loop error")
	}
}

func TestFetchRemote_NonSuccessStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := FetchRemote(context.Background(), "hub", srv.URL); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}
