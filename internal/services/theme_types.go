package services

// ThemeFile is the layout of an embedded theme YAML file.
type ThemeFile struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Styles      ThemeStyles `yaml:"styles"`
}

// ThemeStyles holds one style per semantic element of the shell output.
type ThemeStyles struct {
	Keyword   StyleConfig `yaml:"keyword"`
	Command   StyleConfig `yaml:"command"`
	Success   StyleConfig `yaml:"success"`
	Error     StyleConfig `yaml:"error"`
	Warning   StyleConfig `yaml:"warning"`
	Info      StyleConfig `yaml:"info"`
	Highlight StyleConfig `yaml:"highlight"`
	Header    StyleConfig `yaml:"header"`
	Border    StyleConfig `yaml:"border"`
	Muted     StyleConfig `yaml:"muted"`
	Tag       StyleConfig `yaml:"tag"`
	List      StyleConfig `yaml:"list"`
}

// StyleConfig describes one style. Colors are either a string (hex or ANSI
// code) or a map with "light" and "dark" keys for adaptive colors.
type StyleConfig struct {
	Foreground    interface{} `yaml:"foreground,omitempty"`
	Background    interface{} `yaml:"background,omitempty"`
	Bold          *bool       `yaml:"bold,omitempty"`
	Italic        *bool       `yaml:"italic,omitempty"`
	Underline     *bool       `yaml:"underline,omitempty"`
	Strikethrough *bool       `yaml:"strikethrough,omitempty"`
}
