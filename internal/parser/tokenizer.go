package parser

import (
	"sort"
	"strings"
)

// Prefix marks the start of a named argument, e.g. "n/" in "n/John Doe".
type Prefix string

// Argument prefixes used by the person commands.
const (
	PrefixName    Prefix = "n/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixAddress Prefix = "a/"
	PrefixTag     Prefix = "t/"
	PrefixRemark  Prefix = "r/"
)

// ArgumentMultimap holds the values found for each prefix plus the preamble,
// the text before the first prefix.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first prefix.
func (m ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vals := m.values[p]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns every value given for p, in input order.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), m.values[p]...)
}

// Has reports whether p appeared at least once.
func (m ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it is
// preceded by whitespace, so "a/b" inside a value is left alone. Values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(positions) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		end := len(args)
		if i+1 < len(positions) {
			end = positions[i+1].start
		}
		value := strings.TrimSpace(args[pos.start+len(pos.prefix) : end])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

func findPrefixPositions(args string, p Prefix) []prefixPosition {
	var out []prefixPosition
	from := 0
	for {
		idx := indexAfterWhitespace(args[from:], string(p))
		if idx < 0 {
			return out
		}
		start := from + idx
		out = append(out, prefixPosition{prefix: p, start: start})
		from = start + len(p)
	}
}

// indexAfterWhitespace finds the first occurrence of sub that is preceded by a
// whitespace character.
func indexAfterWhitespace(s, sub string) int {
	offset := 0
	for {
		idx := strings.Index(s[offset:], sub)
		if idx < 0 {
			return -1
		}
		at := offset + idx
		if at > 0 && isSpace(s[at-1]) {
			return at
		}
		offset = at + 1
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}
