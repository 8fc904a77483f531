package deck

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedLine is one decklist line broken into its parts. Raw keeps the
// original text so failures can be reported against what the user
// actually typed.
type ParsedLine struct {
	Raw       string
	Quantity  int
	Name      string
	SetCode   string // Optional, from Arena-style "4 Lightning Bolt (M21) 123"
	Sideboard bool
}

// lineRe matches "QTYx NAME" style lines: optional SB: prefix, optional
// quantity with optional x separator, then the name guess.
var lineRe = regexp.MustCompile(`^(?i)(sb:)?\s*(?:(\d+)\s*x?\s+)?(.+)$`)

// arenaSuffixRe strips Arena export suffixes like "(M21) 123".
var arenaSuffixRe = regexp.MustCompile(`\s*\(([A-Za-z0-9]{2,6})\)\s*[0-9A-Za-z★†-]*\s*$`)

// ParseLine tokenizes a single decklist line. Returns false for lines
// that carry no card: blanks, comments, and section headers.
func ParseLine(line string) (ParsedLine, bool) {
	raw := line

	// Strip trailing comments.
	if idx := strings.Index(line, "#"); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return ParsedLine{}, false
	}

	// Arena export section headers.
	switch strings.ToLower(line) {
	case "deck", "sideboard", "mainboard", "commander":
		return ParsedLine{}, false
	}

	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return ParsedLine{}, false
	}

	parsed := ParsedLine{
		Raw:       raw,
		Quantity:  1,
		Sideboard: m[1] != "",
	}

	if m[2] != "" {
		qty, err := strconv.Atoi(m[2])
		if err == nil && qty > 0 {
			parsed.Quantity = qty
		}
	}

	name := strings.TrimSpace(m[3])
	if sm := arenaSuffixRe.FindStringSubmatch(name); sm != nil {
		parsed.SetCode = strings.ToUpper(sm[1])
		name = strings.TrimSpace(name[:len(name)-len(sm[0])])
	}
	if name == "" {
		return ParsedLine{}, false
	}
	parsed.Name = name

	return parsed, true
}

// Parse tokenizes a whole decklist, one card per line. Lines that carry
// no card are dropped; nothing here validates card names, that is the
// lookup pipeline's job.
func Parse(input string) []ParsedLine {
	var lines []ParsedLine
	for _, line := range strings.Split(input, "\n") {
		if parsed, ok := ParseLine(line); ok {
			lines = append(lines, parsed)
		}
	}
	return lines
}
