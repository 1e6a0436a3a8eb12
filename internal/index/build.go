package index

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/skillhub-cli/skillhub/internal/config"
	"github.com/skillhub-cli/skillhub/internal/registry"
)

// ErrNoSources indicates every configured registry source failed to load.
var ErrNoSources = errors.New("no usable registry sources")

// BuildOptions controls one Build invocation.
type BuildOptions struct {
	// Force rebuilds even if the cache is fresh.
	Force bool
	// Online bypasses the cache entirely for this build.
	Online bool
}

// BuildResult is the outcome of one Build invocation.
type BuildResult struct {
	Index     *Index
	FromCache bool
	// Skipped lists sources dropped from this build cycle. It is the
	// caller's job to report them; a partial index is never presented
	// silently.
	Skipped []registry.SourceError
}

// Builder owns the rebuild-or-reuse decision for the index cache.
type Builder struct {
	Cfg   *config.Config
	Cache *Cache
	// LockPath guards rebuilds across concurrent invocations. Empty
	// disables locking (tests).
	LockPath string
	// LockTimeout bounds the wait for a concurrent rebuild to finish.
	LockTimeout time.Duration
}

// NewBuilder wires a Builder from config, with the cache at the standard
// per-user location.
func NewBuilder(cfg *config.Config) (*Builder, error) {
	path, err := config.IndexPath()
	if err != nil {
		return nil, err
	}
	return &Builder{
		Cfg:         cfg,
		Cache:       NewCache(path, cfg.TTL()),
		LockPath:    path + ".lock",
		LockTimeout: 30 * time.Second,
	}, nil
}

// Build returns a usable Index, rebuilding when forced, when online mode
// is requested, or when the cache is stale. A reusable-but-unreadable
// cache falls back to a rebuild. On a cache write failure the in-memory
// result is still returned alongside the error so the current invocation
// can proceed.
func (b *Builder) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if !opts.Force && !opts.Online && b.Cache.IsFresh() {
		if idx, err := b.Cache.Load(); err == nil {
			return &BuildResult{Index: idx, FromCache: true}, nil
		}
	}
	return b.rebuild(ctx)
}

func (b *Builder) rebuild(ctx context.Context) (*BuildResult, error) {
	unlock, err := b.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	local, errs := registry.LoadLocal(b.Cfg.RegistriesDir)

	var remote []registry.Loaded
	for _, r := range b.Cfg.Remotes {
		fctx, cancel := context.WithTimeout(ctx, registry.FetchTimeout)
		l, err := registry.FetchRemote(fctx, r.Name, r.URL)
		cancel()
		if err != nil {
			errs = append(errs, registry.SourceError{Name: r.Name, Err: err})
			continue
		}
		remote = append(remote, l)
	}

	// Zero usable sources with at least one failure is a total build
	// failure; zero sources configured at all yields an empty index.
	if len(local) == 0 && len(remote) == 0 && len(errs) > 0 {
		var names []string
		for _, e := range errs {
			names = append(names, e.Name)
		}
		return nil, fmt.Errorf("%w: all sources failed (%s)", ErrNoSources, strings.Join(names, ", "))
	}

	idx := Merge(local, remote)
	res := &BuildResult{Index: idx, Skipped: errs}

	if err := b.Cache.Save(idx); err != nil {
		return res, err
	}
	return res, nil
}

// acquireLock serializes rebuilds across processes. Two concurrent
// rebuilds would otherwise race on the cache file with last-writer-wins.
func (b *Builder) acquireLock() (func(), error) {
	if b.LockPath == "" {
		return func() {}, nil
	}
	l := flock.New(b.LockPath)
	deadline := time.Now().Add(b.LockTimeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire index lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("index rebuild already in progress (lock %s)", b.LockPath)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
