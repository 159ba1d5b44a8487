// Package convert is the top-level conversion entry point. An
// Orchestrator coordinates the store, detector, parsers and
// serializers, and owns a TTL result cache with single-flight
// computation so concurrent requests for the same conversion share one
// serializer run.
package convert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/promptpack/promptpack/internal/codec/registry"
	"github.com/promptpack/promptpack/internal/detector"
	"github.com/promptpack/promptpack/internal/logging"
	"github.com/promptpack/promptpack/internal/model"
	"github.com/promptpack/promptpack/internal/store"
)

const (
	// DefaultTTL is how long conversion results stay cached.
	DefaultTTL = 1 * time.Hour

	// DefaultCacheSize bounds the number of cached results.
	DefaultCacheSize = 256
)

// CacheComputationError wraps a failure inside a single-flight
// conversion. Every caller waiting on the key receives the same error;
// nothing is cached, so a later call retries cleanly.
type CacheComputationError struct {
	Key string
	Err error
}

func (e *CacheComputationError) Error() string {
	return fmt.Sprintf("conversion %s failed: %v", e.Key, e.Err)
}

func (e *CacheComputationError) Unwrap() error {
	return e.Err
}

// Options tunes the orchestrator's cache.
type Options struct {
	// TTL overrides DefaultTTL when positive.
	TTL time.Duration

	// CacheSize overrides DefaultCacheSize when positive.
	CacheSize int
}

// Orchestrator converts stored packages into target formats. Each
// instance owns its cache and flight group; instances never share
// state.
type Orchestrator struct {
	store store.Store
	cache *expirable.LRU[string, *model.ConversionResult]
	group singleflight.Group
}

// New creates an orchestrator reading from st.
func New(st store.Store, opts Options) *Orchestrator {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Orchestrator{
		store: st,
		cache: expirable.NewLRU[string, *model.ConversionResult](size, nil, ttl),
	}
}

// Convert returns the package rendered in the target format. Results
// are cached by (id, version, target); a cold key triggers exactly one
// computation no matter how many callers arrive during it, and all of
// them observe the same result or the same CacheComputationError. A
// waiter that gives up does not abort the shared computation; the
// finished result still lands in the cache for the next caller.
func (o *Orchestrator) Convert(ctx context.Context, id, version string, target model.FormatID) (*model.ConversionResult, error) {
	key := cacheKey(id, version, target)
	if res, ok := o.cache.Get(key); ok {
		return res, nil
	}

	// Detached from the caller's cancellation; context values, the
	// request logger included, still flow through.
	detached := context.WithoutCancel(ctx)
	ch := o.group.DoChan(key, func() (any, error) {
		res, err := o.compute(detached, id, version, target)
		if err != nil {
			return nil, &CacheComputationError{Key: key, Err: err}
		}
		o.cache.Add(key, res)
		return res, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*model.ConversionResult), nil
	}
}

func (o *Orchestrator) compute(ctx context.Context, id, version string, target model.FormatID) (*model.ConversionResult, error) {
	ser, err := registry.SerializerFor(target)
	if err != nil {
		return nil, err
	}

	pkg, source, err := o.load(ctx, id, version)
	if err != nil {
		return nil, err
	}

	res, err := ser.Serialize(pkg)
	if err != nil {
		return nil, err
	}
	res.SourceFormat = source

	logging.WithContext(ctx).Debug("converted package",
		logging.Package(id),
		logging.Target(string(target)),
		logging.Score(res.Score),
		logging.Count(len(res.Warnings)))
	return res, nil
}

// load produces the canonical package for id/version, preferring an
// already-canonical representation. On a raw fetch the source format
// is detected, using the stored hint when one exists.
func (o *Orchestrator) load(ctx context.Context, id, version string) (*model.CanonicalPackage, model.FormatID, error) {
	pkg, err := o.store.GetCanonical(ctx, id, version)
	if err == nil {
		return pkg, "", nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to fetch canonical package: %w", err)
	}

	raw, err := o.store.GetRaw(ctx, id, version)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch package %s@%s: %w", id, version, err)
	}

	source, err := detector.Detect(raw.Path, raw.Content, raw.SourceHint)
	if err != nil {
		return nil, "", err
	}

	parser, err := registry.ParserFor(source)
	if err != nil {
		return nil, "", err
	}
	pkg, err = parser.Parse(raw.Content)
	if err != nil {
		return nil, "", err
	}
	return pkg, source, nil
}

// CacheLen reports how many results are currently cached.
func (o *Orchestrator) CacheLen() int {
	return o.cache.Len()
}

func cacheKey(id, version string, target model.FormatID) string {
	return id + "@" + version + "->" + string(target)
}
