// Package deck holds the deckbuilding session state: a counted
// multiset of card names, plus the decklist text parser.
package deck

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one card name with its copy count.
type Entry struct {
	Name     string
	Quantity int
}

// Deck is an explicitly owned counted multiset of card names. It is the
// presentation shell's state object; the lookup pipeline never touches
// it.
type Deck struct {
	counts map[string]int

	// lastChanged tracks the most recent edit, for UIs that highlight
	// the touched card.
	lastChanged string
	lastAction  string
}

// New creates an empty deck.
func New() *Deck {
	return &Deck{counts: make(map[string]int)}
}

// Add increases a card's copy count.
func (d *Deck) Add(name string, qty int) {
	if qty <= 0 {
		return
	}
	d.counts[name] += qty
	d.lastChanged = name
	d.lastAction = "add"
}

// Remove decreases a card's copy count, deleting the card once it
// reaches zero.
func (d *Deck) Remove(name string, qty int) {
	if qty <= 0 {
		return
	}
	if _, ok := d.counts[name]; !ok {
		return
	}
	d.counts[name] -= qty
	if d.counts[name] <= 0 {
		delete(d.counts, name)
	}
	d.lastChanged = name
	d.lastAction = "remove"
}

// Quantity returns a card's copy count, zero when absent.
func (d *Deck) Quantity(name string) int {
	return d.counts[name]
}

// Total returns the total number of copies across all cards.
func (d *Deck) Total() int {
	total := 0
	for _, qty := range d.counts {
		total += qty
	}
	return total
}

// Len returns the number of distinct card names.
func (d *Deck) Len() int {
	return len(d.counts)
}

// LastChanged returns the most recently edited card name and whether
// the edit was an "add" or "remove".
func (d *Deck) LastChanged() (name, action string) {
	return d.lastChanged, d.lastAction
}

// Entries returns the deck sorted by name, case-insensitively.
func (d *Deck) Entries() []Entry {
	entries := make([]Entry, 0, len(d.counts))
	for name, qty := range d.counts {
		entries = append(entries, Entry{Name: name, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries
}

// Names returns the distinct card names sorted case-insensitively.
func (d *Deck) Names() []string {
	entries := d.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Export renders the deck as "Nx Name" lines.
func (d *Deck) Export() string {
	var b strings.Builder
	for _, e := range d.Entries() {
		fmt.Fprintf(&b, "%dx %s\n", e.Quantity, e.Name)
	}
	return b.String()
}
