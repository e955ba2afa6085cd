package services

import (
	"fmt"
	"sort"
	"strings"

	"mtm/internal/parser"
)

// HelpService provides command reference information taken from the command table.
type HelpService struct {
	initialized bool
	table       *parser.Table
}

// NewHelpService creates a new HelpService instance over the built-in command table.
func NewHelpService() *HelpService {
	return &HelpService{table: parser.DefaultTable()}
}

// Name returns the service name "help" for registration.
func (h *HelpService) Name() string {
	return "help"
}

// Initialize prepares the service for use.
func (h *HelpService) Initialize() error {
	h.initialized = true
	return nil
}

// SetTable replaces the command table the help is generated from.
func (h *HelpService) SetTable(table *parser.Table) {
	h.table = table
}

// GetAllCommands returns every command sorted by word.
func (h *HelpService) GetAllCommands() ([]parser.Descriptor, error) {
	if !h.initialized {
		return nil, fmt.Errorf("help service not initialized")
	}

	result := h.table.Descriptors()
	sort.Slice(result, func(i, j int) bool {
		return result[i].Word < result[j].Word
	})
	return result, nil
}

// GetCommand returns the command registered under a word or alias.
func (h *HelpService) GetCommand(keyword string) (parser.Descriptor, error) {
	if !h.initialized {
		return parser.Descriptor{}, fmt.Errorf("help service not initialized")
	}

	d, ok := h.table.Find(keyword)
	if !ok {
		return parser.Descriptor{}, fmt.Errorf("command '%s' not found", keyword)
	}
	return d, nil
}

// Markdown builds the command reference: a summary table of every command
// followed by the usage of each one.
func (h *HelpService) Markdown() (string, error) {
	all, err := h.GetAllCommands()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# MTM command reference\n\n")
	b.WriteString("Commands marked *always* can be used while MTM is locked.\n\n")
	b.WriteString("| Command | Alias | Availability |\n")
	b.WriteString("|---|---|---|\n")
	for _, d := range all {
		alias := d.Alias
		if alias == "" {
			alias = "-"
		}
		availability := "unlocked"
		if d.Tier == parser.TierUnrestricted {
			availability = "*always*"
		}
		fmt.Fprintf(&b, "| `%s` | `%s` | %s |\n", d.Word, alias, availability)
	}

	for _, d := range all {
		fmt.Fprintf(&b, "\n## %s\n\n", d.Word)
		for _, line := range strings.Split(d.Usage, "\n") {
			fmt.Fprintf(&b, "%s  \n", line)
		}
	}
	return b.String(), nil
}

func init() {
	if err := GlobalRegistry.RegisterService(NewHelpService()); err != nil {
		panic(fmt.Sprintf("failed to register help service: %v", err))
	}
}
