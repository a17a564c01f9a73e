package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pagekit/pagekit/internal/config"
	"github.com/pagekit/pagekit/internal/config/data"
	"github.com/pagekit/pagekit/internal/state"
)

const (
	appName    = "pagekit"
	appVersion = "0.1.0"
)

var (
	pkFlags *data.Flags
	rootCmd = &cobra.Command{
		Use:   appName,
		Short: "Page helpers for the staff assignment admin templates",
		Long: `pagekit applies the admin page helpers (assignment field toggle, submit
reveal, row selection and column sort) to rendered HTML pages, and browses
page tables in the terminal.`,
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, appVersion)
		},
	}
)

func init() {
	pkFlags = config.NewFlags()
	initPagekitFlags()
	rootCmd.AddCommand(versionCmd, employeeCmd(), submitCmd(), selectCmd(), sortCmd(), printCmd(), viewCmd())
}

func initPagekitFlags() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(pkFlags.LogLevel, "logLevel", "l", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.StringVar(pkFlags.LogFile, "logFile", "", "Log file path")
	pf.StringVar(pkFlags.Config, "config", "", "Config file path")
	pf.StringVar(pkFlags.StateFile, "state", "", "View state file path")
	pf.StringVar(pkFlags.Compare, "compare", "", "Text compare policy (text, natural)")
	pf.StringVar(pkFlags.Highlight, "highlight", "", "Default row highlight color")
	pf.BoolVar(pkFlags.Infer, "infer", false, "Read selection and sort direction back from the page")
	pf.BoolVar(pkFlags.Patch, "patch", false, "Print the view state patch")
	pf.StringVarP(pkFlags.Out, "out", "o", "", "Output path, - for stdout (default: rewrite the page)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// env carries what every command needs.
type env struct {
	cfg   *config.Config
	log   *zap.SugaredLogger
	store *state.Store
}

func setup() (*env, error) {
	// 1. Initialize locations
	if err := config.InitLocs(); err != nil {
		return nil, fmt.Errorf("failed to initialize locations: %w", err)
	}

	// 2. Load configuration, an explicit --config must exist
	cfg := config.NewConfig()
	path, force := config.AppConfigFile, false
	if config.IsStringSet(pkFlags.Config) {
		path, force = *pkFlags.Config, true
	}
	if err := cfg.Load(path, force); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 3. Apply CLI overrides
	if err := cfg.Refine(pkFlags); err != nil {
		return nil, fmt.Errorf("failed to refine configuration: %w", err)
	}

	// 4. Logger
	logger, err := config.NewLogger(cfg.Pagekit.Logger.Level, cfg.Pagekit.Logger.File)
	if err != nil {
		return nil, err
	}

	// 5. View state
	store := state.NewStore(cfg.Pagekit.StateFile())
	if err := store.Load(); err != nil {
		return nil, err
	}

	return &env{cfg: cfg, log: logger, store: store}, nil
}
