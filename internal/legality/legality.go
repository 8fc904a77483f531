// Package legality classifies cards against a format definition.
package legality

import (
	"github.com/romanticformat/companion/internal/format"
)

// Kind is the machine-readable legality verdict.
type Kind int

const (
	// Unknown means no printing evidence could be obtained. It is a
	// first-class verdict, distinct from NotLegal: the card may well
	// be legal, its printings simply could not be determined.
	Unknown Kind = iota
	// Legal means at least one discovered printing is in an allowed set.
	Legal
	// NotLegal means printings were found, none in an allowed set.
	NotLegal
	// Banned means the card name is on the format's ban list,
	// regardless of printings.
	Banned
)

// Label returns the human-readable verdict text.
func (k Kind) Label() string {
	switch k {
	case Banned:
		return "Banned"
	case Legal:
		return "Legal"
	case NotLegal:
		return "Not Legal"
	default:
		return "Unknown"
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string { return k.Label() }

// Classify maps a canonical card name and its discovered print sets to
// a verdict. Pure and deterministic: no I/O, callable with cached print
// sets. Checks run in strict order: ban list first, then evidence
// presence, then allow-list intersection.
func Classify(name string, printSets format.CodeSet, f *format.Format) Kind {
	if f.IsBanned(name) {
		return Banned
	}
	if len(printSets) == 0 {
		return Unknown
	}
	if f.IntersectsAllowed(printSets) {
		return Legal
	}
	return NotLegal
}
