// Package parser turns a line of user input into a command.
// It splits the input into a keyword and an argument tail, applies the lock
// gate, and hands the tail to the matching command's parser.
package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"mtm/internal/commands"
	"mtm/internal/logger"
)

// basicCommandFormat separates the command word from its arguments. The
// vertical tab counts as whitespace, which RE2's \s leaves out.
var basicCommandFormat = regexp.MustCompile(`^([^\s\v]+)(.*)$`)

// Split trims input and separates the keyword (the first run of non-whitespace
// characters) from the argument tail (everything after it, leading whitespace included).
func Split(input string) (keyword, args string, err error) {
	matches := basicCommandFormat.FindStringSubmatch(strings.TrimSpace(input))
	if matches == nil {
		return "", "", &ParseError{
			Kind:    ErrInvalidFormat,
			Message: fmt.Sprintf(MessageInvalidCommandFormat, commands.HelpUsage),
		}
	}
	return matches[1], matches[2], nil
}

// Router dispatches input to command parsers through a Table.
type Router struct {
	table  *Table
	logger *log.Logger
}

// NewRouter creates a router over table. A nil table means DefaultTable.
func NewRouter(table *Table) *Router {
	if table == nil {
		table = DefaultTable()
	}
	return &Router{
		table:  table,
		logger: logger.NewStyledLogger("Router"),
	}
}

// Route parses input into a command.
//
// Unrestricted commands are dispatched without looking at locked. Any other
// keyword fails with ErrRestricted while locked, known or not. Errors returned
// by a command's own parser are passed through unchanged.
func (r *Router) Route(input string, locked bool) (commands.Command, error) {
	keyword, args, err := Split(input)
	if err != nil {
		return nil, err
	}

	if d, ok := r.table.Lookup(keyword, TierUnrestricted); ok {
		r.logger.Debug("Dispatching", "keyword", keyword, "tier", d.Tier)
		return d.Parse(args)
	}

	if locked {
		r.logger.Debug("Rejected while locked", "keyword", keyword, "locked", locked)
		return nil, restricted()
	}

	if d, ok := r.table.Lookup(keyword, TierRestricted); ok {
		r.logger.Debug("Dispatching", "keyword", keyword, "tier", d.Tier)
		return d.Parse(args)
	}

	r.logger.Debug("No command matches", "keyword", keyword)
	return nil, unknownCommand()
}

// Keywords returns every recognized word and alias, sorted.
func (r *Router) Keywords() []string {
	return r.table.Keywords()
}

// Table returns the router's command table.
func (r *Router) Table() *Table {
	return r.table
}

// Suggest returns up to three command words resembling keyword, closest first.
// Aliases are not suggested.
func (r *Router) Suggest(keyword string) []string {
	if keyword == "" {
		return nil
	}
	words := make([]string, 0, len(r.table.descriptors))
	for _, d := range r.table.descriptors {
		words = append(words, d.Word)
	}
	ranks := fuzzy.RankFindFold(keyword, words)
	sort.Sort(ranks)

	var out []string
	for _, rank := range ranks {
		if len(out) == 3 {
			break
		}
		out = append(out, rank.Target)
	}
	return out
}
