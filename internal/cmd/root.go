// Package cmd implements the sapphire CLI command tree.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootFlags holds global CLI flags.
type rootFlags struct {
	APIURL     string
	Token      string
	Output     string
	JQ         string
	Timeout    time.Duration
	MaxRetries int
	BatchSize  int
	Debug      bool
}

// flags holds the global command flags. This is package-level mutable state
// that is reset at the start of every Execute() call; tests depend on that
// reset to get clean state.
var flags rootFlags

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sapphire",
		Short:         "Client for the SAPPHIRE forecast-data API",
		Long:          "Read and write hydrological time series (runoff, hydrographs, meteo, snow, forecasts, skill metrics) against the SAPPHIRE preprocessing and postprocessing services.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(flags.Debug)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.APIURL, "api-url", "", "API base URL (overrides stored credentials and SAPPHIRE_API_URL)")
	pf.StringVar(&flags.Token, "token", "", "Bearer token (overrides stored credentials and SAPPHIRE_API_TOKEN)")
	pf.StringVarP(&flags.Output, "output", "o", "text", "Output format: text or json")
	pf.StringVar(&flags.JQ, "jq", "", "Filter JSON output through a jq expression")
	pf.DurationVar(&flags.Timeout, "timeout", 0, "Per-request timeout (default 30s)")
	pf.IntVar(&flags.MaxRetries, "max-retries", 0, "Total request attempts for transient failures (default 3)")
	pf.IntVar(&flags.BatchSize, "batch-size", 0, "Records per bulk-write request (default 1000)")
	pf.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newAuthCmd())
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newRunoffCmd())
	cmd.AddCommand(newHydrographCmd())
	cmd.AddCommand(newMeteoCmd())
	cmd.AddCommand(newSnowCmd())
	cmd.AddCommand(newForecastsCmd())
	cmd.AddCommand(newLRForecastsCmd())
	cmd.AddCommand(newSkillMetricsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("sapphire-cli %s\n", version)
			return nil
		},
	}
}

// Execute runs the CLI with the given arguments.
func Execute(ctx context.Context, args []string) error {
	// Local .env files configure SAPPHIRE_* variables in dev setups.
	_ = godotenv.Load()

	flags = rootFlags{Output: "text"}

	root := newRootCmd()
	root.SetOut(os.Stdout)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
