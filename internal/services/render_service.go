package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"mtm/internal/model"
)

// PrivateMask replaces the contact details of private persons.
const PrivateMask = "[private]"

// DefaultMaxCellWidth bounds the width of a person table cell.
const DefaultMaxCellWidth = 32

// RenderService turns command results into styled terminal text.
type RenderService struct {
	initialized  bool
	maxCellWidth int
}

// NewRenderService creates a new RenderService instance.
func NewRenderService() *RenderService {
	return &RenderService{maxCellWidth: DefaultMaxCellWidth}
}

// Name returns the service name "render" for registration.
func (r *RenderService) Name() string {
	return "render"
}

// Initialize sets up the RenderService for operation.
func (r *RenderService) Initialize() error {
	r.initialized = true
	return nil
}

// SetMaxCellWidth changes the table cell width limit. Values below 4 are ignored.
func (r *RenderService) SetMaxCellWidth(width int) {
	if width >= 4 {
		r.maxCellWidth = width
	}
}

// RenderPersons renders persons as a numbered table. Numbers are the 1-based
// indexes commands accept.
func (r *RenderService) RenderPersons(persons []model.Person, theme *Theme) string {
	if len(persons) == 0 {
		return theme.Muted.Render("No persons to display.")
	}

	rows := make([][]string, 0, len(persons))
	for i, p := range persons {
		phone, email, address := p.Phone, p.Email, p.Address
		if p.Private {
			phone, email, address = PrivateMask, PrivateMask, PrivateMask
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			r.truncate(p.Name),
			r.truncate(phone),
			r.truncate(email),
			r.truncate(address),
			r.truncate(strings.Join(p.Tags, ", ")),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.Header.Padding(0, 1)
			case col == 0:
				return theme.Muted.Padding(0, 1)
			case col == 5:
				return theme.Keyword.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Headers("#", "Name", "Phone", "Email", "Address", "Tags").
		Rows(rows...)

	return t.String()
}

// RenderPerson renders the full details of one person.
func (r *RenderService) RenderPerson(p model.Person, theme *Theme) string {
	phone, email, address := p.Phone, p.Email, p.Address
	if p.Private {
		phone, email, address = PrivateMask, PrivateMask, PrivateMask
	}

	var tags []string
	for _, tag := range p.Tags {
		tags = append(tags, theme.Tag.Render(tag))
	}

	lines := []string{
		theme.Highlight.Render(p.Name),
		field(theme, "Phone", phone),
		field(theme, "Email", email),
		field(theme, "Address", address),
	}
	if len(tags) > 0 {
		lines = append(lines, field(theme, "Tags", strings.Join(tags, " ")))
	}
	if p.Remark != "" {
		lines = append(lines, field(theme, "Remark", p.Remark))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border.GetForeground()).
		Padding(0, 1)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderFeedback styles a command's feedback message.
func (r *RenderService) RenderFeedback(message string, theme *Theme) string {
	return theme.Info.Render(message)
}

// RenderError styles an error message.
func (r *RenderService) RenderError(message string, theme *Theme) string {
	return theme.Error.Render(message)
}

// RenderSuggestion formats "did you mean" candidates for an unknown command.
func (r *RenderService) RenderSuggestion(candidates []string, theme *Theme) string {
	if len(candidates) == 0 {
		return ""
	}
	styled := make([]string, len(candidates))
	for i, c := range candidates {
		styled[i] = theme.Command.Render(c)
	}
	return theme.Warning.Render("Did you mean: ") + strings.Join(styled, ", ") + theme.Warning.Render("?")
}

// RenderList renders items as a bullet list, e.g. the input history.
func (r *RenderService) RenderList(title string, items []string, theme *Theme) string {
	if len(items) == 0 {
		return theme.Muted.Render(title)
	}
	return theme.Header.Render(title) + "\n" + theme.CreateList(items...).String()
}

func (r *RenderService) truncate(s string) string {
	return ansi.Truncate(s, r.maxCellWidth, "…")
}

func field(theme *Theme, label, value string) string {
	return fmt.Sprintf("%s %s", theme.Muted.Render(label+":"), value)
}

func init() {
	if err := GlobalRegistry.RegisterService(NewRenderService()); err != nil {
		panic(fmt.Sprintf("failed to register render service: %v", err))
	}
}
