package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/chriscorrea/labelprep/internal/filter"
	"github.com/chriscorrea/labelprep/internal/lexicon"
)

// Config holds all configuration options for a preprocessing run.
type Config struct {
	Input           string  `toml:"input"`            // CSV path, URL, or "-" for stdin
	TrainPath       string  `toml:"train_path"`       // output file for the train subset
	TestPath        string  `toml:"test_path"`        // output file for the test subset
	TestSize        float64 `toml:"test_size"`        // fraction of documents in the test subset
	Seed            uint64  `toml:"seed"`             // seed of the stratified split
	LowerPercentile float64 `toml:"lower_percentile"` // token-count percentile below which documents are dropped
	UpperPercentile float64 `toml:"upper_percentile"` // token-count percentile above which documents are dropped
	Morphology      string  `toml:"morphology"`       // "lemma" or "stem"
	StripMarkup     bool    `toml:"strip_markup"`     // reduce HTML in descriptions to text before counting
	TopTerms        int     `toml:"top_terms"`        // distinguishing terms to report per label, 0 to skip
	Quiet           bool    `toml:"-"`                // suppress diagnostics and progress
	Debug           bool    `toml:"-"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Input:           "data/ecommerceDataset.csv",
		TrainPath:       "data/train.txt",
		TestPath:        "data/test.txt",
		TestSize:        0.33,
		Seed:            42,
		LowerPercentile: filter.DefaultLowerPercentile,
		UpperPercentile: filter.DefaultUpperPercentile,
		Morphology:      lexicon.Lemma.String(),
	}
}

// LoadFile decodes the TOML file at path over cfg. Keys that are absent keep
// their current value; unknown keys are an error.
func LoadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parse config %q: %s", path, strict.String())
		}
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Input == "" {
		return errors.New("no input source provided")
	}
	if c.TrainPath == "" || c.TestPath == "" {
		return errors.New("train and test output paths are required")
	}
	if c.TrainPath == c.TestPath {
		return fmt.Errorf("train and test outputs must differ (both %q)", c.TrainPath)
	}
	if !(c.TestSize > 0 && c.TestSize < 1) {
		return fmt.Errorf("test size must be between 0 and 1, got %v", c.TestSize)
	}
	if c.LowerPercentile < 0 || c.UpperPercentile > 100 || c.LowerPercentile >= c.UpperPercentile {
		return fmt.Errorf("percentiles must satisfy 0 <= lower < upper <= 100, got %v and %v",
			c.LowerPercentile, c.UpperPercentile)
	}
	if _, err := lexicon.ParseMorphology(c.Morphology); err != nil {
		return err
	}
	if c.TopTerms < 0 {
		return fmt.Errorf("top terms must not be negative, got %d", c.TopTerms)
	}
	return nil
}
