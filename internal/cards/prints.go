package cards

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/romanticformat/companion/internal/format"
	"github.com/romanticformat/companion/internal/scryfall"
)

// tokenIndicator marks token and emblem objects that share a card's
// name but are not legitimate printings.
const tokenIndicator = "Token"

// Collector discovers the print-set codes a resolved card has appeared
// under. Enumerating every printing can take many paginated requests,
// so a single targeted search runs first; the exhaustive walk is the
// fallback.
type Collector struct {
	client *scryfall.Client
	logger *slog.Logger
}

// NewCollector creates a collector backed by the given client.
func NewCollector(client *scryfall.Client, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{client: client, logger: logger}
}

// Collect returns the set codes relevant to the format's legality
// check. Transport failures abort the current phase and yield whatever
// was accumulated; an empty set is a legitimate outcome, not an error.
func (c *Collector) Collect(ctx context.Context, card *ResolvedCard, f *format.Format) format.CodeSet {
	codes := format.NewCodeSet()

	if c.fastPath(ctx, card, f, codes) {
		return codes
	}

	c.fallbackWalk(ctx, card, f, codes)
	return codes
}

// fastPath asks in one request for the exact card name constrained to
// the format's sets. Returns true when the query produced results, in
// which case no pagination is needed.
func (c *Collector) fastPath(ctx context.Context, card *ResolvedCard, f *format.Format, codes format.CodeSet) bool {
	result, err := c.client.SearchCards(ctx, fastPathQuery(card.Name, f))
	if err != nil {
		c.logger.Debug("fast-path search failed", "name", card.Name, "error", err)
		return false
	}
	if result.TotalCards == 0 {
		return false
	}

	for _, print := range result.Data {
		addPrintCode(codes, &print)
	}
	c.logger.Debug("fast path hit", "name", card.Name, "sets", codes.Sorted())
	return true
}

// fallbackWalk pages through the card's full print enumeration. It
// stops early once any accumulated code is inside the allow list:
// further pages can only add detail, not change the verdict.
func (c *Collector) fallbackWalk(ctx context.Context, card *ResolvedCard, f *format.Format, codes format.CodeSet) {
	nextPage := card.PrintsSearchURI

	for nextPage != "" {
		page, err := c.client.Page(ctx, nextPage)
		if err != nil {
			c.logger.Debug("print enumeration aborted", "name", card.Name, "error", err)
			return
		}

		for _, print := range page.Data {
			code, ok := addPrintCode(codes, &print)
			if ok && f.AllowsSet(code) {
				return
			}
		}

		nextPage = page.NextPage
	}
}

// fastPathQuery builds the exact-name search restricted to the
// format's set codes, e.g. `!"Tarmogoyf" e:(fut or 10e)`.
func fastPathQuery(name string, f *format.Format) string {
	codes := f.AllowedSetCodes()
	lower := make([]string, len(codes))
	for i, code := range codes {
		lower[i] = strings.ToLower(code)
	}
	return fmt.Sprintf("!%q e:(%s)", name, strings.Join(lower, " or "))
}

// addPrintCode records one print record's set code, skipping token and
// emblem objects. Returns the normalized code and whether it was added.
func addPrintCode(codes format.CodeSet, print *scryfall.Card) (string, bool) {
	if strings.Contains(print.TypeLine, tokenIndicator) {
		return "", false
	}
	code := strings.ToUpper(strings.TrimSpace(print.SetCode))
	if code == "" {
		return "", false
	}
	codes.Add(code)
	return code, true
}
