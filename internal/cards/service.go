package cards

import (
	"context"
	"log/slog"
	"sync"

	"github.com/romanticformat/companion/internal/format"
	"github.com/romanticformat/companion/internal/legality"
	"github.com/romanticformat/companion/internal/scryfall"
)

// CardInfo is the flattened pipeline output consumed by the
// presentation layer: resolved metadata plus the legality verdict.
type CardInfo struct {
	Name          string
	ImageURL      string
	TypeLine      string
	ManaCost      string
	CMC           *float64
	Colors        []string
	ColorIdentity []string
	ProducedMana  []string

	// PrintSets is the discovered print-set evidence the verdict was
	// computed from. May be empty (verdict Unknown).
	PrintSets format.CodeSet

	Verdict legality.Kind
}

// Service runs the full lookup pipeline: resolve, collect print sets,
// cache, classify. It is the one entry point the UI layer needs.
type Service struct {
	resolver  *Resolver
	collector *Collector
	cache     *Cache
	format    *format.Format
	workers   int
	logger    *slog.Logger
}

// ServiceOptions configures the pipeline service.
type ServiceOptions struct {
	// Workers bounds the concurrent lookups in batch operations.
	// Default: 8
	Workers int

	// CacheEnabled toggles result memoization. Default: true (set
	// CacheDisabled to opt out).
	CacheDisabled bool

	// CacheMaxSize caps cached entries (0 = unlimited).
	CacheMaxSize int

	// Cache overrides the internally built cache. Used to share one
	// cache across services.
	Cache *Cache

	// Logger receives debug logging. Default: slog.Default()
	Logger *slog.Logger
}

// NewService creates a pipeline service for one format definition.
func NewService(client *scryfall.Client, f *format.Format, options ServiceOptions) *Service {
	if options.Workers <= 0 {
		options.Workers = 8
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	cache := options.Cache
	if cache == nil {
		cache = NewCache(options.CacheMaxSize, !options.CacheDisabled)
	}

	return &Service{
		resolver:  NewResolver(client, options.Logger),
		collector: NewCollector(client, options.Logger),
		cache:     cache,
		format:    f,
		workers:   options.Workers,
		logger:    options.Logger,
	}
}

// Format returns the format definition the service classifies against.
func (s *Service) Format() *format.Format { return s.format }

// Lookup resolves a card name, discovers its print sets and classifies
// it. Results (including failures) are memoized per name and format
// fingerprint, so repeated lookups stay off the network.
func (s *Service) Lookup(ctx context.Context, name string) (*CardInfo, error) {
	key := cacheKey(name, s.format)

	if entry, ok := s.cache.get(key); ok {
		s.logger.Debug("cache hit", "name", name)
		if entry.card == nil {
			return nil, ErrNotResolved
		}
		return s.buildInfo(entry.card, entry.printSets), nil
	}

	card, err := s.resolver.Resolve(ctx, name)
	if err != nil {
		s.cache.set(key, nil, nil)
		return nil, err
	}

	printSets := s.collector.Collect(ctx, card, s.format)
	s.cache.set(key, card, printSets)

	return s.buildInfo(card, printSets), nil
}

// buildInfo recomputes the verdict from cached evidence. Classification
// is pure, so deriving it on every call keeps verdicts consistent
// without extra network cost.
func (s *Service) buildInfo(card *ResolvedCard, printSets format.CodeSet) *CardInfo {
	return &CardInfo{
		Name:          card.Name,
		ImageURL:      card.ImageURL,
		TypeLine:      card.TypeLine,
		ManaCost:      card.ManaCost,
		CMC:           card.CMC,
		Colors:        card.Colors,
		ColorIdentity: card.ColorIdentity,
		ProducedMana:  card.ProducedMana,
		PrintSets:     printSets,
		Verdict:       legality.Classify(card.Name, printSets, s.format),
	}
}

// Suggest returns autocomplete candidates for a partial card name.
func (s *Service) Suggest(ctx context.Context, partial string) ([]string, error) {
	catalog, err := s.resolver.client.Autocomplete(ctx, partial)
	if err != nil {
		return nil, err
	}
	return catalog.Data, nil
}

// InvalidateCache drops every cached result, forcing fresh lookups.
func (s *Service) InvalidateCache() {
	s.cache.InvalidateAll()
}

// CacheStats returns a snapshot of result-cache counters.
func (s *Service) CacheStats() CacheStats {
	return s.cache.Stats()
}

// LookupResult pairs one batch input with its outcome. Failures stay
// per-item: one bad name never aborts the rest of the batch.
type LookupResult struct {
	Input string
	Info  *CardInfo
	Err   error
}

// LookupAll runs the pipeline for every name across a bounded worker
// pool. Results come back in input order.
func (s *Service) LookupAll(ctx context.Context, names []string) []LookupResult {
	results := make([]LookupResult, len(names))
	if len(names) == 0 {
		return results
	}

	workers := s.workers
	if workers > len(names) {
		workers = len(names)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				info, err := s.Lookup(ctx, names[i])
				results[i] = LookupResult{Input: names[i], Info: info, Err: err}
			}
		}()
	}

	for i := range names {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
