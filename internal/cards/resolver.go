// Package cards implements the card resolution and legality pipeline:
// fuzzy name resolution, print-set discovery with a fast-path/fallback
// strategy, result caching, and batch decklist checking.
package cards

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/romanticformat/companion/internal/scryfall"
)

// ErrNotResolved is returned when a card name has no fuzzy match or the
// API could not be reached. The two cases are deliberately not
// distinguished: neither gives the user an actionable difference.
var ErrNotResolved = errors.New("card not found or API error")

// ResolvedCard is the canonical metadata record for a card name.
type ResolvedCard struct {
	// Name is the authoritative card name as known upstream.
	Name string

	// ImageURL is empty when no printing carries an image; the card is
	// still resolved, it just cannot be rendered.
	ImageURL string

	TypeLine      string
	ManaCost      string
	CMC           *float64
	Colors        []string
	ColorIdentity []string
	ProducedMana  []string

	// PrintsSearchURI enumerates every printing, paginated. Always
	// non-empty: a lookup response without it is a resolution failure.
	PrintsSearchURI string
}

// Resolver turns free-text card names into ResolvedCards.
type Resolver struct {
	client *scryfall.Client
	logger *slog.Logger
}

// NewResolver creates a resolver backed by the given client.
func NewResolver(client *scryfall.Client, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{client: client, logger: logger}
}

// Resolve looks up a free-text name via the fuzzy named endpoint.
// Transport failures and malformed records both come back as
// ErrNotResolved; callers never see a partial record.
func (r *Resolver) Resolve(ctx context.Context, name string) (*ResolvedCard, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNotResolved
	}

	card, err := r.client.NamedCard(ctx, name)
	if err != nil {
		r.logger.Debug("named lookup failed", "name", name, "error", err)
		return nil, ErrNotResolved
	}

	// A record without the print enumeration handle cannot feed the
	// collector; treat it as unresolved rather than partially usable.
	if card.PrintsSearchURI == "" {
		r.logger.Debug("named lookup returned record without prints_search_uri", "name", name)
		return nil, ErrNotResolved
	}

	return &ResolvedCard{
		Name:            card.Name,
		ImageURL:        pickImage(card),
		TypeLine:        card.TypeLine,
		ManaCost:        card.ManaCost,
		CMC:             card.CMC,
		Colors:          card.Colors,
		ColorIdentity:   card.ColorIdentity,
		ProducedMana:    card.ProducedMana,
		PrintsSearchURI: card.PrintsSearchURI,
	}, nil
}

// pickImage selects a card image, preferring the normal size and
// falling back to small. Double-faced and modal cards store images per
// face, so when the root record has none the faces are scanned in order.
func pickImage(card *scryfall.Card) string {
	if url := imageFrom(card.ImageURIs); url != "" {
		return url
	}
	for _, face := range card.CardFaces {
		if url := imageFrom(face.ImageURIs); url != "" {
			return url
		}
	}
	return ""
}

func imageFrom(uris *scryfall.ImageURIs) string {
	if uris == nil {
		return ""
	}
	if uris.Normal != "" {
		return uris.Normal
	}
	return uris.Small
}
