// Package catalog fetches and caches the set of valid labels. One Service
// is shared per invocation; the TTL cache serves every repeated lookup
// within it (session mount, correction selector, feedback validation)
// from a single fetch.
package catalog

import (
	"context"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/annolab/labelctl/internal/logging"
)

const (
	cacheKey        = "labels"
	cacheTTL        = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Fetcher retrieves the label list from the service.
type Fetcher interface {
	GetLabels(ctx context.Context) ([]string, error)
}

// Service provides cached access to the label catalog.
type Service struct {
	fetcher Fetcher
	cache   *gocache.Cache
	log     *slog.Logger
}

// NewService creates a catalog service around the given fetcher.
func NewService(fetcher Fetcher) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   gocache.New(cacheTTL, cleanupInterval),
		log:     logging.ForService("catalog"),
	}
}

// Labels returns the label catalog, fetching it when the cache is empty or
// expired.
func (s *Service) Labels(ctx context.Context) ([]string, error) {
	if cached, found := s.cache.Get(cacheKey); found {
		if labels, ok := cached.([]string); ok {
			return labels, nil
		}
	}

	labels, err := s.fetcher.GetLabels(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKey, labels, gocache.DefaultExpiration)
	s.log.Debug("Fetched label catalog", "count", len(labels))
	return labels, nil
}

// Contains reports whether label is part of the catalog. An empty catalog
// contains nothing.
func (s *Service) Contains(ctx context.Context, label string) bool {
	labels, err := s.Labels(ctx)
	if err != nil {
		return false
	}
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
