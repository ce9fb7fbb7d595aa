package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/labelprep/internal/app"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from the config file, command flags, and arguments.
// Flags that were set explicitly override values from the config file.
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	cfg := app.DefaultConfig()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		if err := app.LoadFile(configPath, &cfg); err != nil {
			return cfg, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("train") {
		cfg.TrainPath, _ = flags.GetString("train")
	}
	if flags.Changed("test") {
		cfg.TestPath, _ = flags.GetString("test")
	}
	if flags.Changed("test-size") {
		cfg.TestSize, _ = flags.GetFloat64("test-size")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("lower-percentile") {
		cfg.LowerPercentile, _ = flags.GetFloat64("lower-percentile")
	}
	if flags.Changed("upper-percentile") {
		cfg.UpperPercentile, _ = flags.GetFloat64("upper-percentile")
	}
	if flags.Changed("stem") {
		if stem, _ := flags.GetBool("stem"); stem {
			cfg.Morphology = "stem"
		} else {
			cfg.Morphology = "lemma"
		}
	}
	if flags.Changed("strip-markup") {
		cfg.StripMarkup, _ = flags.GetBool("strip-markup")
	}
	if flags.Changed("top-terms") {
		cfg.TopTerms, _ = flags.GetInt("top-terms")
	}
	cfg.Quiet, _ = flags.GetBool("quiet")
	cfg.Debug, _ = flags.GetBool("debug")

	// positional argument names the input
	if len(args) > 0 {
		cfg.Input = args[0]
	}

	return cfg, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "labelprep [input]",
	Short: "Prepare a labeled text dataset for fastText training",
	Long: `Labelprep cleans a headerless (class, text) CSV of product descriptions and writes
stratified train and test files in fastText's __label__ format.

Documents with unusually few or many tokens are dropped, texts are lowercased,
stripped of punctuation and stopwords, and lemmatized, and duplicates are removed
before the split. The input may be a local file, a URL, or "-" for standard input.

Examples:
  labelprep data/ecommerceDataset.csv
  labelprep --test-size 0.2 --seed 7 products.csv.gz
  cat products.csv | labelprep --train out/train.txt --test out/test.txt -`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if _, err := app.Run(ctx, config, os.Stdout); err != nil {
			return fmt.Errorf("labelprep failed: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

// addFlags registers the command line flags on cmd, using DefaultConfig for defaults.
func addFlags(cmd *cobra.Command) {
	defaults := app.DefaultConfig()

	cmd.Flags().String("config", "", "Read settings from a TOML file (flags take precedence)")

	// output flags
	cmd.Flags().String("train", defaults.TrainPath, "Output file for the train subset")
	cmd.Flags().String("test", defaults.TestPath, "Output file for the test subset")

	// split flags
	cmd.Flags().Float64("test-size", defaults.TestSize, "Fraction of documents assigned to the test subset")
	cmd.Flags().Uint64("seed", defaults.Seed, "Seed of the stratified split")

	// filter flags
	cmd.Flags().Float64("lower-percentile", defaults.LowerPercentile, "Drop documents with at most this token-count percentile")
	cmd.Flags().Float64("upper-percentile", defaults.UpperPercentile, "Drop documents with at least this token-count percentile")

	// normalization flags
	cmd.Flags().Bool("stem", false, "Use the Snowball stemmer instead of dictionary lemmatization")
	cmd.Flags().Bool("strip-markup", false, "Reduce HTML in descriptions to plain text before counting tokens")

	// diagnostics flags
	cmd.Flags().Int("top-terms", 0, "Report this many distinguishing terms per label")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress diagnostics and progress output")
	cmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = cmd.Flags().MarkHidden("debug")
}

func init() {
	addFlags(rootCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
