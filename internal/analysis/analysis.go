// Package analysis computes deck-composition statistics over
// already-resolved card metadata: type buckets, creature subtypes,
// color distribution and mana sources. All counts are copies-weighted.
package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// CardMeta is the slice of resolved metadata the analytics need. A card
// that failed resolution participates with empty fields and still
// counts toward totals.
type CardMeta struct {
	Name          string
	Quantity      int
	TypeLine      string
	Colors        []string
	ColorIdentity []string
	ProducedMana  []string
}

// ColorLetters is the canonical WUBRG+colorless ordering used by every
// color breakdown.
var ColorLetters = []string{"W", "U", "B", "R", "G", "C"}

// Bucket names, in display order.
const (
	BucketCreatures     = "Creatures"
	BucketInstants      = "Instants"
	BucketSorceries     = "Sorceries"
	BucketArtifacts     = "Artifacts"
	BucketEnchantments  = "Enchantments"
	BucketPlaneswalkers = "Planeswalkers"
	BucketLands         = "Lands"
	BucketOther         = "Other"
)

// BucketOrder is the display order for type buckets.
var BucketOrder = []string{
	BucketCreatures, BucketInstants, BucketSorceries, BucketArtifacts,
	BucketEnchantments, BucketPlaneswalkers, BucketLands, BucketOther,
}

// TypeBucket classifies a type line into one bucket. Lands win over
// everything else, so creature-lands and artifact lands group with
// lands.
func TypeBucket(typeLine string) string {
	switch {
	case strings.Contains(typeLine, "Land"):
		return BucketLands
	case strings.Contains(typeLine, "Creature"):
		return BucketCreatures
	case strings.Contains(typeLine, "Instant"):
		return BucketInstants
	case strings.Contains(typeLine, "Sorcery"):
		return BucketSorceries
	case strings.Contains(typeLine, "Planeswalker"):
		return BucketPlaneswalkers
	case strings.Contains(typeLine, "Enchantment"):
		return BucketEnchantments
	case strings.Contains(typeLine, "Artifact"):
		return BucketArtifacts
	default:
		return BucketOther
	}
}

// BucketCount is one type bucket with its total copies.
type BucketCount struct {
	Bucket string
	Copies int
}

// TypeBuckets sums copies per type bucket, returned in display order.
// Empty buckets are omitted.
func TypeBuckets(cards []CardMeta) []BucketCount {
	copies := make(map[string]int)
	for _, c := range cards {
		copies[TypeBucket(c.TypeLine)] += c.Quantity
	}

	var out []BucketCount
	for _, bucket := range BucketOrder {
		if n, ok := copies[bucket]; ok && n > 0 {
			out = append(out, BucketCount{Bucket: bucket, Copies: n})
		}
	}
	return out
}

// typeLineDashRe splits a type line into supertypes and subtypes. The
// upstream source uses an em dash, but hyphens and en dashes show up in
// hand-typed data.
var typeLineDashRe = regexp.MustCompile(`\s+[—\-–]\s+`)

var subtypeSplitRe = regexp.MustCompile(`[\s/]+`)

// CreatureSubtypes extracts the subtype tokens from a creature type
// line. Non-creatures yield nothing.
func CreatureSubtypes(typeLine string) []string {
	if !strings.Contains(typeLine, "Creature") {
		return nil
	}
	parts := typeLineDashRe.Split(typeLine, 2)
	if len(parts) < 2 {
		return nil
	}

	var subtypes []string
	for _, token := range subtypeSplitRe.Split(parts[1], -1) {
		token = strings.TrimSpace(token)
		if token != "" && token != "—" {
			subtypes = append(subtypes, token)
		}
	}
	return subtypes
}

// SubtypeCount aggregates one creature subtype across the deck.
type SubtypeCount struct {
	Subtype string
	Copies  int
	Cards   []string // distinct card names, sorted
}

// SubtypeBreakdown tallies creature subtypes, copies-weighted, sorted
// by copies descending (subtype name breaks ties).
func SubtypeBreakdown(cards []CardMeta) []SubtypeCount {
	copies := make(map[string]int)
	names := make(map[string]map[string]struct{})

	for _, c := range cards {
		for _, sub := range CreatureSubtypes(c.TypeLine) {
			copies[sub] += c.Quantity
			if names[sub] == nil {
				names[sub] = make(map[string]struct{})
			}
			names[sub][c.Name] = struct{}{}
		}
	}

	out := make([]SubtypeCount, 0, len(copies))
	for sub, n := range copies {
		cardNames := make([]string, 0, len(names[sub]))
		for name := range names[sub] {
			cardNames = append(cardNames, name)
		}
		sort.Strings(cardNames)
		out = append(out, SubtypeCount{Subtype: sub, Copies: n, Cards: cardNames})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Copies != out[j].Copies {
			return out[i].Copies > out[j].Copies
		}
		return out[i].Subtype < out[j].Subtype
	})
	return out
}

// ColorCount is one color letter with its total copies.
type ColorCount struct {
	Color  string
	Copies int
}

// ColorDistribution counts copies per color identity letter in WUBRG+C
// order. Multicolored cards count once per color they carry; "C" counts
// cards with an empty color identity, so the sum can exceed the deck
// total.
func ColorDistribution(cards []CardMeta) []ColorCount {
	out := make([]ColorCount, 0, len(ColorLetters))
	for _, letter := range ColorLetters {
		copies := 0
		for _, c := range cards {
			if letter == "C" {
				if len(c.ColorIdentity) == 0 {
					copies += c.Quantity
				}
			} else if containsLetter(c.ColorIdentity, letter) {
				copies += c.Quantity
			}
		}
		out = append(out, ColorCount{Color: letter, Copies: copies})
	}
	return out
}

// ManaSources counts copies that can produce each color of mana, in
// WUBRG+C order. Only cards with a non-empty produced_mana participate;
// landsOnly further restricts to land type lines.
func ManaSources(cards []CardMeta, landsOnly bool) []ColorCount {
	out := make([]ColorCount, 0, len(ColorLetters))
	for _, letter := range ColorLetters {
		copies := 0
		for _, c := range cards {
			if len(c.ProducedMana) == 0 {
				continue
			}
			if landsOnly && !strings.Contains(c.TypeLine, "Land") {
				continue
			}
			if containsLetter(c.ProducedMana, letter) {
				copies += c.Quantity
			}
		}
		out = append(out, ColorCount{Color: letter, Copies: copies})
	}
	return out
}

func containsLetter(letters []string, letter string) bool {
	for _, l := range letters {
		if l == letter {
			return true
		}
	}
	return false
}
