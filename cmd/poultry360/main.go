package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"poultry360/internal/api"
	"poultry360/internal/config"
	"poultry360/internal/logging"
	"poultry360/internal/session"
)

var (
	// Global flags
	verbose bool
	cfgPath string
	baseURL string

	cfg    *config.Config
	logger *zap.Logger

	client *api.Client
	creds  *session.CredentialStore
	sess   *session.Manager
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "poultry360",
	Short: "Poultry360 - farm management console",
	Long: `Poultry360 is a terminal console for the Poultry360 farm
management server.

It signs in against the server's API, keeps the credential in
~/.poultry360, and exposes farms, flocks, daily records, and the
live dashboard from the command line.

Run without arguments to open the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if cfgPath == "" {
			cfgPath = config.DefaultPath()
		}
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if baseURL != "" {
			cfg.API.BaseURL = baseURL
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		if err := logging.Initialize(cfg.DataDir(), logging.Options{
			DebugMode:  cfg.Logging.DebugMode,
			Level:      cfg.Logging.Level,
			Categories: categorySet(cfg.Logging.Categories),
		}); err != nil {
			return fmt.Errorf("failed to initialize file logging: %w", err)
		}
		logging.Boot("config loaded from %s, server %s", cfgPath, cfg.API.BaseURL)

		creds, err = session.NewCredentialStore(cfg.DataDir())
		if err != nil {
			return fmt.Errorf("failed to open credential store: %w", err)
		}
		client = api.New(api.Config{
			BaseURL: cfg.API.BaseURL,
			Timeout: cfg.APITimeout(),
			Creds:   creds,
			OnUnauthorized: func() {
				if sess != nil {
					sess.HandleUnauthorized()
				}
			},
		})
		sess = session.NewManager(client, creds)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: open the interactive dashboard
		return runDashboardTUI(cmd)
	},
}

func categorySet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// requireAuth fails fast when no credential is held, before any command
// spends a round trip on a request the server will reject.
func requireAuth() error {
	if creds.Token() == "" {
		return fmt.Errorf("not signed in; run 'poultry360 login' first")
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file (default ~/.poultry360/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "server", "", "Server API base URL (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
