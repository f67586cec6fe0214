package lookup

import (
	"context"

	"github.com/theory-cloud/zonetheory/cfn"
	"github.com/theory-cloud/zonetheory/pkg/observability"
)

// Provider answers lookups for one context provider.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, props map[string]any) (any, error)
}

// Resolver fills a Cache with the values an app reported as missing.
type Resolver struct {
	providers map[string]Provider
	logger    observability.StructuredLogger
}

type Option func(*Resolver)

func WithProvider(p Provider) Option {
	return func(r *Resolver) {
		if p != nil {
			r.providers[p.Name()] = p
		}
	}
}

func WithLogger(logger observability.StructuredLogger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver returns a resolver. Without WithProvider it answers hosted-zone lookups
// with the default SDK configuration.
func NewResolver(options ...Option) *Resolver {
	r := &Resolver{providers: map[string]Provider{}, logger: observability.NewNoOpLogger()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if len(r.providers) == 0 {
		p := NewHostedZoneProvider(nil)
		r.providers[p.Name()] = p
	}
	return r
}

// Resolve looks up every missing context entry not already cached and stores the
// results. It returns the number of entries added.
func (r *Resolver) Resolve(ctx context.Context, missing []cfn.MissingContext, cache *Cache) (int, error) {
	added := 0
	for _, m := range missing {
		if _, ok := cache.Get(m.Key); ok {
			continue
		}
		provider, ok := r.providers[m.Provider]
		if !ok {
			return added, cfn.Errorf(cfn.CodeUnsupported, "no context provider registered for %q", m.Provider)
		}
		r.logger.Info("resolving context lookup", map[string]any{"provider": m.Provider, "key": m.Key})
		value, err := provider.Lookup(ctx, m.Props)
		if err != nil {
			r.logger.Error("context lookup failed", map[string]any{"key": m.Key, "error": err})
			return added, err
		}
		cache.Set(m.Key, value)
		added++
	}
	return added, nil
}

// Synthesize builds the app from the cache, resolves whatever is missing and builds it
// again until nothing is missing. build must construct a fresh app from the context.
func (r *Resolver) Synthesize(ctx context.Context, cache *Cache, build func(context map[string]any) (*cfn.App, error)) (*cfn.App, error) {
	for {
		app, err := build(cache.Context())
		if err != nil {
			return nil, err
		}
		missing := app.MissingContext()
		if len(missing) == 0 {
			return app, nil
		}
		added, err := r.Resolve(ctx, missing, cache)
		if err != nil {
			return nil, err
		}
		if added == 0 {
			return nil, cfn.Errorf(cfn.CodeLookupFailed, "context lookups still missing after resolution: %s", missing[0].Key)
		}
	}
}
