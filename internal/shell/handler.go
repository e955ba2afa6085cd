// Package shell connects user input to the command router and presents results.
// It drives the interactive readline session and batch script execution.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"mtm/internal/commands"
	"mtm/internal/logger"
	"mtm/internal/model"
	"mtm/internal/parser"
	"mtm/internal/services"
	"mtm/internal/storage"
)

// redactedArgs replaces the arguments of commands that carry a key.
const redactedArgs = " ***"

// Handler executes input lines against the model and writes rendered output.
type Handler struct {
	router   *parser.Router
	manager  *model.Manager
	store    storage.Store
	themes   *services.ThemeService
	render   *services.RenderService
	markdown *services.MarkdownService
	help     *services.HelpService
	out      io.Writer
	logger   *log.Logger
}

// NewHandler creates a handler over manager. Services must be initialized first.
// A nil store disables saving.
func NewHandler(manager *model.Manager, store storage.Store, out io.Writer) (*Handler, error) {
	themes, err := services.GetGlobalThemeService()
	if err != nil {
		return nil, err
	}
	render, err := services.GetGlobalRenderService()
	if err != nil {
		return nil, err
	}
	markdown, err := services.GetGlobalMarkdownService()
	if err != nil {
		return nil, err
	}
	help, err := services.GetGlobalHelpService()
	if err != nil {
		return nil, err
	}

	return &Handler{
		router:   parser.NewRouter(parser.DefaultTable()),
		manager:  manager,
		store:    store,
		themes:   themes,
		render:   render,
		markdown: markdown,
		help:     help,
		out:      out,
		logger:   logger.NewStyledLogger("Shell"),
	}, nil
}

// Execute routes and runs one input line. The line is recorded in the input
// history whatever the outcome. The model is saved after every successful command.
func (h *Handler) Execute(input string) (commands.Result, error) {
	redacted := redact(input)
	defer h.manager.RecordInput(redacted)

	cmd, err := h.router.Route(input, h.manager.IsLocked())
	if err != nil {
		h.logger.Debug("Routing failed", "input", redacted, "error", err)
		return commands.Result{}, err
	}

	result, err := cmd.Execute(h.manager)
	if err != nil {
		h.logger.Debug("Command failed", "command", cmd.Name(), "error", err)
		return commands.Result{}, err
	}

	if err := h.save(); err != nil {
		return result, err
	}
	return result, nil
}

// Process executes input and displays the outcome. It reports whether the shell should exit.
func (h *Handler) Process(input string) bool {
	result, err := h.Execute(input)
	if err != nil {
		h.displayError(input, err)
		return false
	}
	h.display(result)
	return result.Exit
}

// GroupNames returns the names of the current groups, for completion.
func (h *Handler) GroupNames() []string {
	groups := h.manager.AddressBook().Groups
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func (h *Handler) save() error {
	if h.store == nil {
		return nil
	}
	snap := storage.Snapshot{
		Settings:    h.manager.Settings(),
		AddressBook: h.manager.AddressBook(),
	}
	if err := h.store.Save(snap); err != nil {
		h.logger.Error("Failed to save address book", "path", h.store.Path(), "error", err)
		return fmt.Errorf("failed to save address book: %w", err)
	}
	return nil
}

func (h *Handler) theme() *services.Theme {
	return h.themes.GetThemeByName(h.manager.Theme())
}

func (h *Handler) display(result commands.Result) {
	theme := h.theme()

	if result.ShowHelp {
		h.displayHelp(theme)
	}
	if result.Feedback != "" {
		h.println(h.render.RenderFeedback(result.Feedback, theme))
	}
	if result.Selected != nil {
		h.println(h.render.RenderPerson(*result.Selected, theme))
	}
	if result.ShowList {
		h.println(h.render.RenderPersons(h.manager.FilteredPersons(), theme))
	}
}

func (h *Handler) displayHelp(theme *services.Theme) {
	md, err := h.help.Markdown()
	if err != nil {
		h.println(h.render.RenderError(err.Error(), theme))
		return
	}
	rendered, err := h.markdown.RenderWithTheme(md, h.manager.Theme())
	if err != nil {
		h.logger.Warn("Falling back to raw help text", "error", err)
		rendered = md
	}
	h.println(strings.TrimRight(rendered, "\n"))
}

func (h *Handler) displayError(input string, err error) {
	theme := h.theme()
	h.println(h.render.RenderError(err.Error(), theme))

	if errors.Is(err, parser.ErrUnknownCommand) {
		if keyword, _, splitErr := parser.Split(input); splitErr == nil {
			if hint := h.render.RenderSuggestion(h.router.Suggest(keyword), theme); hint != "" {
				h.println(hint)
			}
		}
	}
}

func (h *Handler) println(s string) {
	_, _ = fmt.Fprintln(h.out, s)
}

// redact hides the arguments of commands that carry a key.
func redact(input string) string {
	keyword, args, err := parser.Split(input)
	if err != nil || strings.TrimSpace(args) == "" {
		return strings.TrimSpace(input)
	}
	switch keyword {
	case commands.KeyWord, commands.KeyAlias, commands.SetWord, commands.SetAlias:
		return keyword + redactedArgs
	}
	return strings.TrimSpace(input)
}
