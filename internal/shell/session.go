package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"mtm/internal/commands"
	"mtm/internal/logger"
	"mtm/internal/services"
)

// scriptComment starts a comment line in batch scripts.
const scriptComment = "#"

// Options configures an interactive session.
type Options struct {
	Prompt      string
	HistoryFile string
}

// InitializeServices initializes every registered service. Colours are
// disabled in test mode or when noColor is set.
func InitializeServices(testMode, noColor bool) error {
	if err := services.GlobalRegistry.InitializeAll(); err != nil {
		return err
	}

	if testMode || noColor {
		themes, err := services.GetGlobalThemeService()
		if err != nil {
			return err
		}
		themes.DisableColors()
	}

	logger.Debug("Services initialized", "count", len(services.GlobalRegistry.GetAllServices()))
	return nil
}

// lineReader is the part of a readline instance the interactive loop uses.
type lineReader interface {
	Readline() (string, error)
	SaveHistory(content string) error
}

// readlineConfig builds the terminal configuration. Lines are never saved to
// the history file as typed; the loop saves a redacted copy instead.
func readlineConfig(opts Options, completer readline.AutoCompleter) *readline.Config {
	return &readline.Config{
		Prompt:                 opts.Prompt,
		HistoryFile:            opts.HistoryFile,
		DisableAutoSaveHistory: true,
		AutoComplete:           completer,
		InterruptPrompt:        "^C",
		EOFPrompt:              commands.ExitWord,
	}
}

// Run starts the interactive shell and blocks until the user exits.
func (h *Handler) Run(opts Options) error {
	completer, err := services.GetGlobalAutoCompleteService()
	if err != nil {
		return err
	}
	completer.SetGroupSource(h.GroupNames)

	if opts.HistoryFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.HistoryFile), 0755); err != nil {
			h.logger.Warn("History will not be saved", "path", opts.HistoryFile, "error", err)
			opts.HistoryFile = ""
		}
	}

	rl, err := readline.NewEx(readlineConfig(opts, completer))
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	defer func() { _ = rl.Close() }()

	h.println(h.render.RenderFeedback("Welcome to MTM. Type help for the command reference.", h.theme()))
	logger.Debug("Starting shell", "history", opts.HistoryFile)
	return h.interact(rl)
}

// interact feeds every line read from rl to the router untouched, until exit,
// end of input or an interrupt on an empty line.
func (h *Handler) interact(rl lineReader) error {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := rl.SaveHistory(redact(line)); err != nil {
			h.logger.Warn("Failed to save history", "error", err)
		}
		if h.Process(line) {
			return nil
		}
	}
}

// RunScript executes each line of r in order. Blank lines and lines starting
// with # are skipped. Execution stops at the first failing line or at exit.
func (h *Handler) RunScript(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, scriptComment) {
			continue
		}

		h.logger.Debug("Executing script line", "line", lineNo, "input", redact(line))
		result, err := h.Execute(line)
		if err != nil {
			h.displayError(line, err)
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		h.display(result)
		if result.Exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	return nil
}
