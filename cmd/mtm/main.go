// Package main provides the MTM CLI application entry point.
// MTM is a command-line address book with a lockable command set.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mtm/internal/config"
	"mtm/internal/logger"
	"mtm/internal/model"
	"mtm/internal/parser"
	"mtm/internal/services"
	"mtm/internal/shell"
	"mtm/internal/storage"
	"mtm/internal/version"
)

// scriptExtension is the required extension of batch scripts.
const scriptExtension = ".mtm"

var (
	testMode bool
	cfg      *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mtm",
	Short: "MTM - command-line address book",
	Long: `MTM manages contacts and groups from an interactive shell.
Lock MTM with a key to allow only read-only commands.`,
	Run: runShell,
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start interactive shell mode",
	Run:   runShell,
}

// batchCmd runs a script of MTM commands without entering interactive mode
var batchCmd = &cobra.Command{
	Use:   "batch <script.mtm>",
	Short: "Execute a .mtm script file in batch mode",
	Long: `Execute each line of a .mtm script as an MTM command.
Blank lines and lines starting with # are skipped. Execution stops at the first error.`,
	Args: cobra.ExactArgs(1),
	Run:  runBatch,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		if detailed, _ := cmd.Flags().GetBool("detailed"); detailed {
			fmt.Println(version.GetDetailedVersion())
			return
		}
		fmt.Println(version.GetFormattedVersion())
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the command keywords, grouped by lock behaviour",
	Run:   runCommands,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.String("data-file", "", "Address book file [default: $XDG_CONFIG_HOME/mtm/addressbook.yaml]")
	flags.String("theme", "", "Colour theme (default|dark|light|plain)")
	flags.Bool("no-color", false, "Disable colours")
	flags.BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")

	bindings := map[string]string{
		config.KeyLogLevel: "log-level",
		config.KeyLogFile:  "log-file",
		config.KeyDataFile: "data-file",
		config.KeyTheme:    "theme",
		config.KeyNoColor:  "no-color",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}

	versionCmd.Flags().Bool("detailed", false, "Show detailed build information")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commandsCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	loader := config.NewLoader(viper.GetViper())
	loader.SetTestMode(testMode)

	loaded, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile, testMode); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads the address book and prepares a shell handler. In test mode
// nothing is written back to the data file.
func bootstrap(cmd *cobra.Command, c *config.Config) (*shell.Handler, error) {
	if err := shell.InitializeServices(testMode, c.NoColor); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	store := storage.NewFileStore(c.DataFile)
	manager, err := loadManager(store, c, cmd.Flags().Changed("theme"))
	if err != nil {
		return nil, err
	}

	var saver storage.Store = store
	if testMode {
		saver = nil
	}
	return shell.NewHandler(manager, saver, os.Stdout)
}

// loadManager builds the model from the data file, or from the sample book when
// the file does not exist yet and sample data is enabled. The configured theme
// applies when none is stored or when forced.
func loadManager(store *storage.FileStore, c *config.Config, forceTheme bool) (*model.Manager, error) {
	var (
		snap storage.Snapshot
		err  error
	)
	if !store.Exists() && c.SampleData {
		logger.Info("Data file not found, starting with sample data", "path", store.Path())
		snap, err = storage.Sample()
	} else {
		snap, err = store.Load()
	}
	if err != nil {
		return nil, err
	}

	if c.Theme != "" && (snap.Settings.Theme == "" || forceTheme) {
		snap.Settings.Theme = c.Theme
	}

	manager := model.NewManager(snap.AddressBook, snap.Settings)
	if err := manager.SeedKey(c.DefaultKey); err != nil {
		return nil, fmt.Errorf("failed to set default key: %w", err)
	}
	return manager, nil
}

func runShell(cmd *cobra.Command, _ []string) {
	logger.Info("Starting MTM", "version", version.GetVersion())

	handler, err := bootstrap(cmd, cfg)
	if err != nil {
		logger.Fatal("Failed to start", "error", err)
	}

	opts := shell.Options{Prompt: cfg.Prompt, HistoryFile: cfg.HistoryFile}
	if testMode {
		opts.HistoryFile = ""
	}
	if err := handler.Run(opts); err != nil {
		logger.Fatal("Shell failed", "error", err)
	}
}

func runBatch(cmd *cobra.Command, args []string) {
	scriptPath := args[0]
	logger.Info("Starting MTM batch mode", "version", version.GetVersion(), "script", scriptPath)

	if err := validateScriptFile(scriptPath); err != nil {
		logger.Fatal("Script validation failed", "error", err)
	}

	handler, err := bootstrap(cmd, cfg)
	if err != nil {
		logger.Fatal("Failed to start", "error", err)
	}

	if err := executeBatchScript(handler, scriptPath); err != nil {
		logger.Fatal("Script execution failed", "error", err)
	}
	logger.Info("Script executed successfully", "script", scriptPath)
}

func validateScriptFile(scriptPath string) error {
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return fmt.Errorf("script file does not exist: %s", scriptPath)
	}
	if ext := filepath.Ext(scriptPath); ext != scriptExtension {
		return fmt.Errorf("script file must have %s extension, got: %s", scriptExtension, ext)
	}
	return nil
}

func executeBatchScript(handler *shell.Handler, scriptPath string) error {
	f, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to open script: %w", err)
	}
	defer func() { _ = f.Close() }()
	return handler.RunScript(f)
}

func runCommands(_ *cobra.Command, _ []string) {
	if err := shell.InitializeServices(testMode, cfg.NoColor); err != nil {
		logger.Fatal("Failed to initialize services", "error", err)
	}
	fmt.Println(commandListing(parser.DefaultTable(), cfg.Theme))
}

// commandListing renders the command words of each tier as themed lists.
func commandListing(table *parser.Table, themeName string) string {
	themes, err := services.GetGlobalThemeService()
	if err != nil {
		return err.Error()
	}
	render, err := services.GetGlobalRenderService()
	if err != nil {
		return err.Error()
	}
	theme := themes.GetThemeByName(themeName)

	var always, unlocked []string
	for _, d := range table.Descriptors() {
		entry := d.Word
		if d.Alias != "" {
			entry = fmt.Sprintf("%s (%s)", d.Word, d.Alias)
		}
		if d.Tier == parser.TierUnrestricted {
			always = append(always, entry)
		} else {
			unlocked = append(unlocked, entry)
		}
	}

	return render.RenderList("Always available", always, theme) + "\n\n" +
		render.RenderList("Requires unlock", unlocked, theme)
}
