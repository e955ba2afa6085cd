package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"mtm/internal/logger"
)

// DefaultWordWrap is the column at which rendered markdown wraps.
const DefaultWordWrap = 100

// MarkdownService renders markdown for the terminal using Glamour.
type MarkdownService struct {
	initialized bool
	wordWrap    int
	renderers   map[string]*glamour.TermRenderer
}

// NewMarkdownService creates a new MarkdownService instance.
func NewMarkdownService() *MarkdownService {
	return &MarkdownService{
		wordWrap:  DefaultWordWrap,
		renderers: make(map[string]*glamour.TermRenderer),
	}
}

// Name returns the service name "markdown" for registration.
func (m *MarkdownService) Name() string {
	return "markdown"
}

// Initialize sets up the MarkdownService.
func (m *MarkdownService) Initialize() error {
	m.initialized = true
	logger.Debug("MarkdownService initialized successfully")
	return nil
}

// SetWordWrap sets the word wrap width and drops cached renderers.
func (m *MarkdownService) SetWordWrap(width int) error {
	if width <= 0 {
		return fmt.Errorf("word wrap width must be positive, got %d", width)
	}
	m.wordWrap = width
	m.renderers = make(map[string]*glamour.TermRenderer)
	return nil
}

// RenderWithStyle renders markdown with a Glamour style such as "dark",
// "light", "notty" or "auto".
func (m *MarkdownService) RenderWithStyle(markdown string, style string) (string, error) {
	if !m.initialized {
		return "", fmt.Errorf("markdown service not initialized")
	}
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	renderer, err := m.renderer(style)
	if err != nil {
		return "", err
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown with style '%s': %w", style, err)
	}
	return rendered, nil
}

// RenderWithTheme renders markdown in the Glamour style matching an MTM theme.
func (m *MarkdownService) RenderWithTheme(markdown string, themeName string) (string, error) {
	return m.RenderWithStyle(markdown, mapThemeToGlamourStyle(themeName))
}

func (m *MarkdownService) renderer(style string) (*glamour.TermRenderer, error) {
	if r, ok := m.renderers[style]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(m.wordWrap),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer for style '%s': %w", style, err)
	}
	m.renderers[style] = r
	return r, nil
}

func mapThemeToGlamourStyle(themeName string) string {
	switch strings.ToLower(themeName) {
	case "dark":
		return "dark"
	case "light":
		return "light"
	case PlainThemeName:
		return "notty"
	default:
		return "auto"
	}
}

func init() {
	if err := GlobalRegistry.RegisterService(NewMarkdownService()); err != nil {
		panic(fmt.Sprintf("failed to register markdown service: %v", err))
	}
}
