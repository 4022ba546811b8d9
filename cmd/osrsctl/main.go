package main

import (
	"fmt"
	"os"
	"time"

	"github.com/bobbot/osrs-api/internal/client"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	apiURL  string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
	api    *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "osrsctl",
	Short: "Query the OSRS API gateway from the command line",
	Long: `osrsctl talks to a running OSRS API gateway and prints player stats,
item prices, wiki summaries, quest details and slayer task tables.

The gateway address defaults to $OSRS_API_URL, then http://localhost:3000.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		api = client.New(apiURL, timeout)
		logger.Debug("using gateway", zap.String("url", apiURL))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	defaultURL := os.Getenv("OSRS_API_URL")
	if defaultURL == "" {
		defaultURL = client.DefaultBaseURL
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "Gateway base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	playerCmd.Flags().StringVarP(&skillFlag, "skill", "s", "", "Show a single skill (aliases such as wc, rc, hp work)")
	searchCmd.Flags().IntVarP(&limitFlag, "limit", "n", 10, "Maximum number of results")

	rootCmd.AddCommand(
		playerCmd,
		priceCmd,
		searchCmd,
		wikiCmd,
		guideCmd,
		questCmd,
		slayerCmd,
		healthCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
