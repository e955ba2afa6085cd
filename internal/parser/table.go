package parser

import (
	"fmt"
	"sort"

	"mtm/internal/commands"
)

// Tier partitions the command set by lock behaviour.
type Tier int

const (
	// TierRestricted commands are only allowed while unlocked.
	TierRestricted Tier = iota
	// TierUnrestricted commands are allowed regardless of the lock.
	TierUnrestricted
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierUnrestricted:
		return "unrestricted"
	case TierRestricted:
		return "restricted"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseFunc builds a command from the argument tail that follows the keyword.
type ParseFunc func(args string) (commands.Command, error)

// Descriptor describes one command: its keywords, tier, usage and parser.
type Descriptor struct {
	Word  string
	Alias string
	Tier  Tier
	Usage string
	Parse ParseFunc
}

// Keywords returns the word followed by the alias, if any.
func (d Descriptor) Keywords() []string {
	if d.Alias == "" {
		return []string{d.Word}
	}
	return []string{d.Word, d.Alias}
}

// Table maps every keyword to its descriptor. It is immutable once built and
// safe for concurrent use.
type Table struct {
	byKeyword   map[string]Descriptor
	descriptors []Descriptor
}

// NewTable builds a table from descriptors. It fails if a descriptor has no
// word or parser, or if any keyword appears more than once across all tiers.
func NewTable(descriptors ...Descriptor) (*Table, error) {
	t := &Table{
		byKeyword:   make(map[string]Descriptor),
		descriptors: make([]Descriptor, 0, len(descriptors)),
	}
	for _, d := range descriptors {
		if d.Word == "" {
			return nil, fmt.Errorf("command word cannot be empty")
		}
		if d.Parse == nil {
			return nil, fmt.Errorf("command %s has no parser", d.Word)
		}
		for _, k := range d.Keywords() {
			if existing, exists := t.byKeyword[k]; exists {
				return nil, fmt.Errorf("keyword %s of command %s already registered by command %s", k, d.Word, existing.Word)
			}
			t.byKeyword[k] = d
		}
		t.descriptors = append(t.descriptors, d)
	}
	return t, nil
}

// MustTable is like NewTable but panics on error. It is meant for package-level tables.
func MustTable(descriptors ...Descriptor) *Table {
	t, err := NewTable(descriptors...)
	if err != nil {
		panic(fmt.Sprintf("invalid command table: %v", err))
	}
	return t
}

// Lookup returns the descriptor for keyword if it belongs to tier.
func (t *Table) Lookup(keyword string, tier Tier) (Descriptor, bool) {
	d, ok := t.byKeyword[keyword]
	if !ok || d.Tier != tier {
		return Descriptor{}, false
	}
	return d, true
}

// Find returns the descriptor for keyword regardless of tier.
func (t *Table) Find(keyword string) (Descriptor, bool) {
	d, ok := t.byKeyword[keyword]
	return d, ok
}

// Descriptors returns the descriptors in registration order. The slice is a copy.
func (t *Table) Descriptors() []Descriptor {
	return append([]Descriptor(nil), t.descriptors...)
}

// Keywords returns every word and alias, sorted.
func (t *Table) Keywords() []string {
	keywords := make([]string, 0, len(t.byKeyword))
	for k := range t.byKeyword {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}

// KeywordsIn returns the sorted words and aliases of one tier.
func (t *Table) KeywordsIn(tier Tier) []string {
	var keywords []string
	for k, d := range t.byKeyword {
		if d.Tier == tier {
			keywords = append(keywords, k)
		}
	}
	sort.Strings(keywords)
	return keywords
}
