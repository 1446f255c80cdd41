package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rohan/voicecv-cli/internal/api"
	"github.com/rohan/voicecv-cli/internal/auth"
	"github.com/rohan/voicecv-cli/internal/config"
	"github.com/rohan/voicecv-cli/internal/logging"
	"github.com/rohan/voicecv-cli/internal/observability"
	"github.com/rohan/voicecv-cli/internal/storage"
)

// Persistent flags shared by every command.
var (
	flagConfigPath string
	flagAPIBase    string
	flagStorePath  string
	flagVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to JSON config file (default ~/.voicecv/config.json)")
	rootCmd.PersistentFlags().StringVar(&flagAPIBase, "api-base", "", "Backend base URL (overrides config and "+config.EnvAPIBase+")")
	rootCmd.PersistentFlags().StringVar(&flagStorePath, "store", "", "Path to the local store file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed debug information")
}

// app bundles the wired dependencies every command handler needs.
type app struct {
	cfg     *config.Config
	store   *storage.Store
	client  *api.Client
	auth    *auth.Service
	printer *observability.Printer
	logger  *slog.Logger
}

// newApp resolves configuration (file, then env, then flags) and wires
// the store, API client, and printer.
func newApp() (*app, error) {
	cfg := &config.Config{}

	path := flagConfigPath
	if path == "" {
		// The default config file is optional.
		if candidate := config.DefaultConfigPath(); fileExists(candidate) {
			path = candidate
		}
	}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	// Flags win over both file and environment.
	if flagAPIBase != "" {
		cfg.APIBase = flagAPIBase
	}
	if flagStorePath != "" {
		cfg.StorePath = flagStorePath
	}
	if flagVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.Setup(cfg.Verbose)

	store, err := storage.Open(cfg.ResolvedStorePath())
	if err != nil {
		return nil, err
	}

	client := api.New(cfg.ResolvedAPIBase(), api.WithTokenSource(auth.TokenSource(store)))

	return &app{
		cfg:     cfg,
		store:   store,
		client:  client,
		auth:    auth.NewService(client, store),
		printer: observability.NewPrinter(os.Stdout),
		logger:  logger,
	}, nil
}

// requireAuth returns an error when no session token is stored.
func (a *app) requireAuth() error {
	if !a.auth.IsAuthenticated() {
		return fmt.Errorf("not logged in; run 'voicecv login' first")
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
