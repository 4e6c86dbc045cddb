package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Karvyz/halfmoon/internal/app"
	"github.com/Karvyz/halfmoon/internal/config"
	"github.com/Karvyz/halfmoon/internal/infrastructure/sqlite"
	"github.com/Karvyz/halfmoon/internal/log"
	"github.com/Karvyz/halfmoon/internal/transcript"
	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config directory and is where
// a default config is written when none exists.
const localConfigPath = ".halfmoon/config.yaml"

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "halfmoon",
	Short: "A chat composer with a vi-style input box",
	Long: `A terminal chat composer. Messages are written in a modal, vi-style
input box and kept in a local transcript that can be browsed, edited and
pruned.`,
	Version:           version,
	PersistentPreRunE: setup,
	RunE:              runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/halfmoon/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"write debug logs to debug.log (also HALFMOON_DEBUG=1)")
	rootCmd.Flags().String("db", "",
		"transcript database file (default: ~/.config/halfmoon/transcript.db)")

	// Bind flags to viper
	_ = viper.BindPFlag("storage.path", rootCmd.Flags().Lookup("db"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("editor.start_mode", defaults.Editor.StartMode)
	viper.SetDefault("editor.placeholder", defaults.Editor.Placeholder)
	viper.SetDefault("editor.max_height", defaults.Editor.MaxHeight)
	viper.SetDefault("editor.tab_width", defaults.Editor.TabWidth)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("ui.show_borders", defaults.UI.ShowBorders)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("storage.path", defaults.Storage.Path)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .halfmoon/config.yaml (current directory)
		// 2. ~/.config/halfmoon/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "halfmoon"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .halfmoon/config.yaml
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		} else {
			log.ErrorErr(log.CatConfig, "Failed to read config", err, "file", viper.ConfigFileUsed())
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// reloadConfig re-reads the config file viper is using. It backs the live
// reload in the composer.
func reloadConfig() (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("reading config: %w", err)
	}
	var next config.Config
	if err := viper.Unmarshal(&next); err != nil {
		return config.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := next.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return next, nil
}

// debugEnabled reports whether debug logging was requested.
func debugEnabled() bool {
	return debug || os.Getenv("HALFMOON_DEBUG") != ""
}

// closeLog is set by setup when debug logging is on.
var closeLog func()

// setup validates the loaded config, applies the theme and starts debug
// logging. It runs before every command.
func setup(cmd *cobra.Command, args []string) error {
	if debugEnabled() {
		cleanup, err := log.InitWithTeaLog("debug.log", "halfmoon")
		if err != nil {
			return fmt.Errorf("starting debug log: %w", err)
		}
		closeLog = cleanup
		log.Info(log.CatConfig, "Loaded config", "file", viper.ConfigFileUsed())
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	return nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if cfg.Storage.Path == "" {
		return errors.New("no transcript path: set storage.path or pass --db")
	}

	db, err := sqlite.NewDB(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening transcript: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Store the config file path for saving UI toggles
	configFilePath := viper.ConfigFileUsed()
	if configFilePath == "" {
		// No config file was loaded, default to .halfmoon/config.yaml
		configFilePath = localConfigPath
	}

	zone.NewGlobal()

	model := app.New(app.Options{
		Service:    transcript.NewService(db.Messages()),
		Config:     cfg,
		ConfigPath: configFilePath,
		Reload:     reloadConfig,
	})
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	defer func() {
		if closeLog != nil {
			closeLog()
		}
	}()
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
