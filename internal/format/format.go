// Package format defines a constructed-format ruleset: which historical
// print sets are legal and which card names are banned outright.
package format

import (
	"sort"
	"strings"
)

// CodeSet is a set of print-set codes, stored uppercase.
type CodeSet map[string]struct{}

// NewCodeSet builds a CodeSet, normalizing codes to uppercase.
func NewCodeSet(codes ...string) CodeSet {
	s := make(CodeSet, len(codes))
	for _, c := range codes {
		s.Add(c)
	}
	return s
}

// Add inserts a code, normalized to uppercase. Empty codes are ignored.
func (s CodeSet) Add(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return
	}
	s[code] = struct{}{}
}

// Contains reports membership, case-insensitively.
func (s CodeSet) Contains(code string) bool {
	_, ok := s[strings.ToUpper(code)]
	return ok
}

// Sorted returns the codes in lexical order.
func (s CodeSet) Sorted() []string {
	codes := make([]string, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Format is an immutable format definition. Construct with New; the
// allow and ban lists are configuration, not runtime state.
type Format struct {
	name        string
	allowedSets CodeSet
	bannedCards map[string]struct{}
	fingerprint string
}

// New creates a Format. Set codes are normalized to uppercase; banned
// card names are kept exactly as given, since the ban check matches the
// upstream canonical capitalization.
func New(name string, allowedSets, bannedCards []string) *Format {
	f := &Format{
		name:        name,
		allowedSets: NewCodeSet(allowedSets...),
		bannedCards: make(map[string]struct{}, len(bannedCards)),
	}
	for _, card := range bannedCards {
		card = strings.TrimSpace(card)
		if card != "" {
			f.bannedCards[card] = struct{}{}
		}
	}
	f.fingerprint = strings.Join(f.allowedSets.Sorted(), ",")
	return f
}

// Name returns the format's display name.
func (f *Format) Name() string { return f.name }

// AllowsSet reports whether a print-set code is part of the format.
func (f *Format) AllowsSet(code string) bool {
	return f.allowedSets.Contains(code)
}

// IsBanned reports whether a canonical card name is on the ban list.
func (f *Format) IsBanned(cardName string) bool {
	_, ok := f.bannedCards[cardName]
	return ok
}

// IntersectsAllowed reports whether any code in the given set belongs
// to the format's allowed sets.
func (f *Format) IntersectsAllowed(codes CodeSet) bool {
	for c := range codes {
		if _, ok := f.allowedSets[c]; ok {
			return true
		}
	}
	return false
}

// AllowedSetCodes returns the allowed set codes in lexical order.
func (f *Format) AllowedSetCodes() []string {
	return f.allowedSets.Sorted()
}

// Fingerprint identifies the allow-list configuration. Results cached
// under one fingerprint must not be reused under another.
func (f *Format) Fingerprint() string {
	return f.fingerprint
}

// BannedCardNames returns the ban list in lexical order.
func (f *Format) BannedCardNames() []string {
	names := make([]string, 0, len(f.bannedCards))
	for n := range f.bannedCards {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
