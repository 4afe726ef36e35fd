// Package cli provides the command-line interface for coeur.
package cli

import (
	"context"
	"os"

	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"

	"github.com/safedep/coeur/config"
	"github.com/safedep/coeur/internal/version"
	"github.com/safedep/coeur/storage"
	"github.com/safedep/coeur/tui"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	Store     storage.Store
	Presenter tui.Presenter
	Paths     *config.Paths
}

// NewApp creates a new App with the given configuration.
func NewApp(cfg *config.Config) *App {
	paths := config.ResolvePaths()

	// Create presenter based on config
	presenter := tui.NewPresenter(tui.FormatTable, tui.PresenterOptions{
		Writer:    os.Stdout,
		UseColors: cfg.ShouldUseColors(),
	})

	return &App{
		Config:    cfg,
		Presenter: presenter,
		Paths:     paths,
	}
}

// InitStore initializes the database store. When the database lives in
// the default data directory, the standard directory layout is created
// first.
func (a *App) InitStore(ctx context.Context) error {
	if a.Config.Storage.Path == "" {
		if err := a.Paths.Ensure(); err != nil {
			return err
		}
	}

	dbPath := a.Config.GetDatabasePath()
	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return err
	}
	if err := store.Init(ctx); err != nil {
		return err
	}
	a.Store = store
	return nil
}

// Close closes the application resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	NoColor    bool
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coeur",
		Short: "Guarded order management",
		Long: `Coeur is a CLI for an order service whose operations run through
guarded actions: every call passes ordered permission checks and
business validators before the underlying method executes, and every
invocation is recorded to a local audit trail.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Handle NO_COLOR environment variable
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv("COEUR_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger()

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(
		NewOrdersCmd(),
		NewAuditCmd(),
		NewStatusCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setupInternalLogger sets up the DRY logger
func setupInternalLogger() {
	// Always skip the stdout logger since we are running in a CLI context
	// with our own TUI.
	_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")

	log.Init("coeur", "cli")
}

// loadApp loads the application with configuration.
func loadApp() (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		// Use defaults if config not found
		cfg = config.Default()
	}

	// Override with flags
	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}

	return NewApp(cfg), nil
}

// getFormat returns the output format from flags or default.
func getFormat(format string) tui.Format {
	switch format {
	case "json":
		return tui.FormatJSON
	case "yaml":
		return tui.FormatYAML
	default:
		return tui.FormatTable
	}
}
