package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/list"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"mtm/internal/data/embedded"
	"mtm/internal/logger"
)

// PlainThemeName is the theme without any styling. It is always available.
const PlainThemeName = "plain"

// ThemeService provides the styles used to render shell output.
type ThemeService struct {
	initialized bool
	themes      map[string]*Theme
}

// Theme defines the styles for each semantic element of the output.
type Theme struct {
	Name      string
	Keyword   lipgloss.Style
	Command   lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Highlight lipgloss.Style
	Header    lipgloss.Style
	Border    lipgloss.Style
	Muted     lipgloss.Style
	Tag       lipgloss.Style
	List      lipgloss.Style
}

// NewThemeService creates a new ThemeService instance with themes loaded from YAML.
func NewThemeService() *ThemeService {
	service := &ThemeService{
		themes: make(map[string]*Theme),
	}
	service.loadThemesFromYAML(embedded.ThemeFiles())
	return service
}

// Name returns the service name "theme" for registration.
func (t *ThemeService) Name() string {
	return "theme"
}

// Initialize sets up the ThemeService for operation.
func (t *ThemeService) Initialize() error {
	t.initialized = true
	return nil
}

func (t *ThemeService) loadThemesFromYAML(files map[string][]byte) {
	for themeName, themeData := range files {
		theme, err := t.loadThemeFile(themeData)
		if err != nil {
			logger.Error("Failed to load theme", "theme", themeName, "error", err)
			t.themes[themeName] = plainTheme(themeName)
			continue
		}
		theme.Name = themeName
		t.themes[themeName] = theme
	}

	if _, exists := t.themes[PlainThemeName]; !exists {
		t.themes[PlainThemeName] = plainTheme(PlainThemeName)
	}
}

func (t *ThemeService) loadThemeFile(data []byte) (*Theme, error) {
	var themeFile ThemeFile
	if err := yaml.Unmarshal(data, &themeFile); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}
	return convertThemeFile(&themeFile), nil
}

func convertThemeFile(file *ThemeFile) *Theme {
	s := file.Styles
	return &Theme{
		Name:      file.Name,
		Keyword:   createStyle(s.Keyword),
		Command:   createStyle(s.Command),
		Success:   createStyle(s.Success),
		Error:     createStyle(s.Error),
		Warning:   createStyle(s.Warning),
		Info:      createStyle(s.Info),
		Highlight: createStyle(s.Highlight),
		Header:    createStyle(s.Header),
		Border:    createStyle(s.Border),
		Muted:     createStyle(s.Muted),
		Tag:       createStyle(s.Tag),
		List:      createStyle(s.List),
	}
}

// createStyle converts a StyleConfig to a lipgloss.Style.
func createStyle(config StyleConfig) lipgloss.Style {
	style := lipgloss.NewStyle()

	if color := parseColor(config.Foreground); color != nil {
		style = style.Foreground(color)
	}
	if color := parseColor(config.Background); color != nil {
		style = style.Background(color)
	}

	if config.Bold != nil && *config.Bold {
		style = style.Bold(true)
	}
	if config.Italic != nil && *config.Italic {
		style = style.Italic(true)
	}
	if config.Underline != nil && *config.Underline {
		style = style.Underline(true)
	}
	if config.Strikethrough != nil && *config.Strikethrough {
		style = style.Strikethrough(true)
	}

	return style
}

// parseColor parses a color value that can be a string or a light/dark map.
func parseColor(colorValue interface{}) lipgloss.TerminalColor {
	switch v := colorValue.(type) {
	case string:
		return lipgloss.Color(v)
	case map[string]interface{}:
		light, hasLight := v["light"].(string)
		dark, hasDark := v["dark"].(string)
		if hasLight && hasDark {
			return lipgloss.AdaptiveColor{Light: light, Dark: dark}
		}
		return nil
	default:
		return nil
	}
}

func plainTheme(name string) *Theme {
	return &Theme{
		Name:      name,
		Keyword:   lipgloss.NewStyle(),
		Command:   lipgloss.NewStyle(),
		Success:   lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
		Warning:   lipgloss.NewStyle(),
		Info:      lipgloss.NewStyle(),
		Highlight: lipgloss.NewStyle(),
		Header:    lipgloss.NewStyle(),
		Border:    lipgloss.NewStyle(),
		Muted:     lipgloss.NewStyle(),
		Tag:       lipgloss.NewStyle(),
		List:      lipgloss.NewStyle(),
	}
}

// GetAvailableThemes returns the sorted theme names.
func (t *ThemeService) GetAvailableThemes() []string {
	if !t.initialized {
		return []string{}
	}

	themes := make([]string, 0, len(t.themes))
	for name := range t.themes {
		themes = append(themes, name)
	}
	sort.Strings(themes)
	return themes
}

// GetTheme returns a specific theme by exact name.
func (t *ThemeService) GetTheme(name string) (*Theme, bool) {
	if !t.initialized {
		return nil, false
	}

	theme, exists := t.themes[name]
	return theme, exists
}

// GetThemeByName looks a theme up ignoring case. It never fails: unknown names
// and an uninitialized service give the plain theme.
func (t *ThemeService) GetThemeByName(name string) *Theme {
	if !t.initialized {
		return plainTheme(PlainThemeName)
	}

	normalized := strings.ToLower(strings.TrimSpace(name))
	if theme, exists := t.themes[normalized]; exists {
		return theme
	}

	logger.Debug("Invalid theme requested, using plain theme", "theme", name, "available", t.GetAvailableThemes())
	return t.themes[PlainThemeName]
}

// DisableColors forces every renderer to plain ASCII output.
func (t *ThemeService) DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// CreateList creates a new list with theme styling applied.
func (t *Theme) CreateList(items ...string) *list.List {
	l := list.New().EnumeratorStyle(t.List)
	for _, item := range items {
		l.Item(item)
	}
	return l
}

func init() {
	if err := GlobalRegistry.RegisterService(NewThemeService()); err != nil {
		panic(fmt.Sprintf("failed to register theme service: %v", err))
	}
}
