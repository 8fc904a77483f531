package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/romanticformat/companion/internal/cards"
	"github.com/romanticformat/companion/internal/config"
	"github.com/romanticformat/companion/internal/scryfall"
)

var (
	cfgPath string
	cfg     *config.Config
	service *cards.Service
)

var rootCmd = &cobra.Command{
	Use:   "rf-companion",
	Short: "Deckbuilding companion for the Romantic format",
	Long: `rf-companion resolves card names against Scryfall, checks them against
a restricted format's allowed sets and ban list, and analyzes deck
composition. The format defaults to Romantic (8ED through M13) and can
be customized in the configuration file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		level := slog.LevelInfo
		if cfg.App.DebugMode {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		timeout, err := cfg.GetHTTPTimeout()
		if err != nil {
			return fmt.Errorf("http timeout: %w", err)
		}

		client := scryfall.NewClient(scryfall.Options{
			Timeout:   timeout,
			MaxTries:  cfg.HTTP.MaxTries,
			UserAgent: cfg.HTTP.UserAgent,
		})

		service = cards.NewService(client, cfg.GameFormat(), cards.ServiceOptions{
			Workers:       cfg.Check.Workers,
			CacheDisabled: !cfg.Cache.Enabled,
			CacheMaxSize:  cfg.Cache.MaxSize,
			Logger:        logger,
		})

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ~/.rf-companion/config.toml)")

	rootCmd.AddCommand(cardCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}

// lookupTimeout bounds one whole batch operation, not a single request;
// per-request timeouts live in the client.
const lookupTimeout = 5 * time.Minute
