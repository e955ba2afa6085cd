// Package config resolves MTM settings from defaults, the user config file,
// .env files, MTM_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"mtm/internal/logger"
)

// Configuration keys. Environment variables use the upper-case key with the MTM_ prefix.
const (
	KeyDataFile    = "data_file"
	KeyHistoryFile = "history_file"
	KeyTheme       = "theme"
	KeyLogLevel    = "log_level"
	KeyLogFile     = "log_file"
	KeyDefaultKey  = "default_key"
	KeyPrompt      = "prompt"
	KeySampleData  = "sample_data"
	KeyNoColor     = "no_color"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "MTM"

// Config holds the resolved settings.
type Config struct {
	ConfigDir   string
	DataFile    string
	HistoryFile string
	Theme       string
	LogLevel    string
	LogFile     string
	DefaultKey  string
	Prompt      string
	SampleData  bool
	NoColor     bool
}

// Loader resolves configuration into a viper instance.
type Loader struct {
	v         *viper.Viper
	configDir string
	workDir   string
	testMode  bool
}

// NewLoader creates a loader over v. Flags bound to v with BindPFlag take precedence
// over every other source.
func NewLoader(v *viper.Viper) *Loader {
	return &Loader{v: v}
}

// SetConfigDir overrides the user config directory.
func (l *Loader) SetConfigDir(dir string) {
	l.configDir = dir
}

// SetWorkDir overrides the directory searched for a local .env file.
func (l *Loader) SetWorkDir(dir string) {
	l.workDir = dir
}

// SetTestMode disables .env loading so tests are not affected by the developer's files.
func (l *Loader) SetTestMode(testMode bool) {
	l.testMode = testMode
}

// Load resolves the configuration. Precedence, highest first: flags, MTM_
// environment variables, .env files (local over user), config.yaml, defaults.
func (l *Loader) Load() (*Config, error) {
	configDir := l.configDir
	if configDir == "" {
		dir, err := UserConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	l.setDefaults(configDir)

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.AutomaticEnv()

	l.v.SetConfigName("config")
	l.v.SetConfigType("yaml")
	l.v.AddConfigPath(configDir)
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		logger.Debug("Loaded config file", "path", l.v.ConfigFileUsed())
	}

	if !l.testMode {
		if err := l.mergeDotEnv(filepath.Join(configDir, ".env")); err != nil {
			return nil, err
		}
		workDir := l.workDir
		if workDir == "" {
			if wd, err := os.Getwd(); err == nil {
				workDir = wd
			}
		}
		if workDir != "" {
			if err := l.mergeDotEnv(filepath.Join(workDir, ".env")); err != nil {
				return nil, err
			}
		}
	}

	return &Config{
		ConfigDir:   configDir,
		DataFile:    l.v.GetString(KeyDataFile),
		HistoryFile: l.v.GetString(KeyHistoryFile),
		Theme:       l.v.GetString(KeyTheme),
		LogLevel:    l.v.GetString(KeyLogLevel),
		LogFile:     l.v.GetString(KeyLogFile),
		DefaultKey:  l.v.GetString(KeyDefaultKey),
		Prompt:      l.v.GetString(KeyPrompt),
		SampleData:  l.v.GetBool(KeySampleData),
		NoColor:     l.v.GetBool(KeyNoColor),
	}, nil
}

func (l *Loader) setDefaults(configDir string) {
	l.v.SetDefault(KeyDataFile, filepath.Join(configDir, "addressbook.yaml"))
	l.v.SetDefault(KeyHistoryFile, filepath.Join(configDir, "history"))
	l.v.SetDefault(KeyTheme, "default")
	l.v.SetDefault(KeyLogLevel, "")
	l.v.SetDefault(KeyLogFile, "")
	l.v.SetDefault(KeyDefaultKey, "")
	l.v.SetDefault(KeyPrompt, "mtm> ")
	l.v.SetDefault(KeySampleData, true)
	l.v.SetDefault(KeyNoColor, false)
}

// mergeDotEnv merges MTM_ entries of a .env file into the config layer.
// A missing file is not an error.
func (l *Loader) mergeDotEnv(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	values := make(map[string]interface{})
	for key, value := range envMap {
		name, ok := strings.CutPrefix(key, EnvPrefix+"_")
		if !ok {
			continue
		}
		values[strings.ToLower(name)] = value
	}
	if len(values) == 0 {
		return nil
	}

	logger.Debug("Loaded .env file", "path", path, "keys", len(values))
	return l.v.MergeConfigMap(values)
}

// UserConfigDir returns $XDG_CONFIG_HOME/mtm, falling back to ~/.config/mtm.
func UserConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "mtm"), nil
}
