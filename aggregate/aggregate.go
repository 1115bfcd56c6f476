// Package aggregate routes search and rendition requests to the source named by the caller.
package aggregate

import (
	"context"
	"net/http"
	"sync"

	"github.com/flixstream/flixstream/log"
	"github.com/flixstream/flixstream/provider"
	"github.com/flixstream/flixstream/source"
	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Aggregator dispatches to one client per source. It holds no mutable state.
type Aggregator struct {
	sources map[provider.ID]source.Source
}

// New builds an aggregator over every built-in provider, sharing client.
func New(client *http.Client) *Aggregator {
	sources := make(map[provider.ID]source.Source, len(provider.IDs()))
	for _, p := range provider.Builtins() {
		sources[p.ID] = p.CreateSource(client)
	}
	return &Aggregator{sources: sources}
}

// NewWith builds an aggregator over the given clients.
func NewWith(sources map[provider.ID]source.Source) *Aggregator {
	return &Aggregator{sources: sources}
}

func (a *Aggregator) resolve(name string) (provider.ID, source.Source, error) {
	id, err := provider.ParseID(name)
	if err != nil {
		log.WithField("source", name).Error(err)
		return "", nil, err
	}

	src, ok := a.sources[id]
	if !ok {
		err := &source.UnknownSourceError{Name: name}
		log.WithField("source", name).Error(err)
		return "", nil, err
	}
	return id, src, nil
}

// Search returns one page of results from the named source.
func (a *Aggregator) Search(ctx context.Context, query string, page int, sourceName string) ([]*source.Summary, error) {
	_, src, err := a.resolve(sourceName)
	if err != nil {
		return nil, err
	}
	return src.Search(ctx, query, page)
}

// Variants returns the renditions of a video from the named source, best first.
func (a *Aggregator) Variants(ctx context.Context, identifier, sourceName string) ([]*source.Variant, error) {
	_, src, err := a.resolve(sourceName)
	if err != nil {
		return nil, err
	}
	return src.VariantsOf(ctx, identifier)
}

// HighestQuality returns the URL of the best rendition.
// It is None only when the source has no renditions for the video.
func (a *Aggregator) HighestQuality(ctx context.Context, identifier, sourceName string) (mo.Option[string], error) {
	variants, err := a.Variants(ctx, identifier, sourceName)
	if err != nil {
		return mo.None[string](), err
	}

	first, ok := lo.First(variants)
	if !ok {
		return mo.None[string](), nil
	}
	return mo.Some(first.URL), nil
}

// SearchAll queries several sources at once. No sources means every source.
// Results of sources that succeeded are returned next to the combined error of those that failed.
func (a *Aggregator) SearchAll(ctx context.Context, query string, page int, sourceNames ...string) (map[provider.ID][]*source.Summary, error) {
	if len(sourceNames) == 0 {
		sourceNames = lo.Map(provider.IDs(), func(id provider.ID, _ int) string { return string(id) })
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		errs    *multierror.Error
		results = make(map[provider.ID][]*source.Summary, len(sourceNames))
	)

	targets := make(map[provider.ID]source.Source, len(sourceNames))
	for _, name := range sourceNames {
		id, src, err := a.resolve(name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		targets[id] = src
	}

	for id, src := range targets {
		wg.Add(1)
		go func(id provider.ID, src source.Source) {
			defer wg.Done()

			summaries, err := src.Search(ctx, query, page)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = multierror.Append(errs, err)
				return
			}
			results[id] = summaries
		}(id, src)
	}

	wg.Wait()
	return results, errs.ErrorOrNil()
}
