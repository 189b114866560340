package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/oashamkll/Myapp-02/internal/app"
	"github.com/oashamkll/Myapp-02/internal/config"
	"github.com/oashamkll/Myapp-02/internal/logger"
	"github.com/oashamkll/Myapp-02/internal/ui"
	"github.com/spf13/cobra"
)

var (
	debugMode             bool
	quietMode             bool
	themeFlag             string
	configPath            string
	logPath               string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "chatmock",
	Short: "Terminal chat window with a canned-reply bot",
	Long: `chatmock is a chat window mockup for the terminal. Type a message and press
Enter (or click Send) and a simple keyword bot answers in the message list.

Nothing is sent anywhere and the conversation is gone when you quit.`,
	Args:          cobra.NoArgs,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.chatmock/config.json)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", logger.DefaultLogPath, "Log file")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Theme for this run (see 'chatmock themes')")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("chatmock %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("chatmock %s\n", version)
}

// loadConfig reads the config from --config, or the default location
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// validateThemeFlag rejects an unknown --theme before anything starts
func validateThemeFlag(name string) error {
	if name != "" && !ui.IsValidTheme(name) {
		return fmt.Errorf("unknown theme %q (run 'chatmock themes' to list them)", name)
	}
	return nil
}

// newModel builds the app model. A --theme override only changes the active
// theme, never cfg, so later saves (ctrl+n, ctrl+t) keep the user's choice.
func newModel(cfg *config.Config, theme string) (*app.Model, error) {
	if err := validateThemeFlag(theme); err != nil {
		return nil, err
	}
	if saved := cfg.GetTheme(); saved != "" && !ui.IsValidTheme(saved) {
		logger.Warn("unknown theme %q in %s, using %s", saved, cfg.FilePath(), ui.DefaultTheme)
	}

	m := app.New(cfg, version)
	if theme != "" {
		logger.Debug("theme %s set for this run by --theme", theme)
		ui.SetThemeByName(theme)
	}
	return m, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := validateThemeFlag(themeFlag); err != nil {
		return err
	}

	// Before loading config, which logs, so the first line lands in --log
	if err := logger.Init(logPath); err != nil {
		return fmt.Errorf("error opening log: %w", err)
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	logger.Info("chatmock %s starting, config %s, log %s", version, cfg.FilePath(), logger.Path())

	m, err := newModel(cfg, themeFlag)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		logger.Error("program exited: %v", err)
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
