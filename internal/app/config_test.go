package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labelprep.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TestSize != 0.33 || cfg.Seed != 42 {
		t.Errorf("split defaults = %v/%v, want 0.33/42", cfg.TestSize, cfg.Seed)
	}
	if cfg.LowerPercentile != 2 || cfg.UpperPercentile != 97 {
		t.Errorf("percentile defaults = %v/%v, want 2/97", cfg.LowerPercentile, cfg.UpperPercentile)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
input = "products.csv"
test_size = 0.2
seed = 7
morphology = "stem"
top_terms = 5
`)

	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}

	if cfg.Input != "products.csv" || cfg.TestSize != 0.2 || cfg.Seed != 7 {
		t.Errorf("loaded values not applied: %+v", cfg)
	}
	if cfg.Morphology != "stem" || cfg.TopTerms != 5 {
		t.Errorf("loaded values not applied: %+v", cfg)
	}
	// keys absent from the file keep their defaults
	if cfg.TrainPath != "data/train.txt" || cfg.UpperPercentile != 97 {
		t.Errorf("defaults were overwritten: %+v", cfg)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name      string
		path      func(t *testing.T) string
		errSubstr string
	}{
		{
			name:      "missing file",
			path:      func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			errSubstr: "open config",
		},
		{
			name:      "unknown key",
			path:      func(t *testing.T) string { return writeConfig(t, "tset_size = 0.2\n") },
			errSubstr: "parse config",
		},
		{
			name:      "wrong type",
			path:      func(t *testing.T) string { return writeConfig(t, "seed = \"forty-two\"\n") },
			errSubstr: "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := LoadFile(tt.path(t), &cfg)
			if err == nil {
				t.Fatal("LoadFile() expected error")
			}
			if !strings.Contains(err.Error(), tt.errSubstr) {
				t.Errorf("LoadFile() error = %v, want it to mention %q", err, tt.errSubstr)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"empty input", func(c *Config) { c.Input = "" }},
		{"empty train path", func(c *Config) { c.TrainPath = "" }},
		{"same output paths", func(c *Config) { c.TestPath = c.TrainPath }},
		{"test size zero", func(c *Config) { c.TestSize = 0 }},
		{"test size one", func(c *Config) { c.TestSize = 1 }},
		{"inverted percentiles", func(c *Config) { c.LowerPercentile, c.UpperPercentile = 97, 2 }},
		{"percentile above 100", func(c *Config) { c.UpperPercentile = 101 }},
		{"unknown morphology", func(c *Config) { c.Morphology = "porter" }},
		{"negative top terms", func(c *Config) { c.TopTerms = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate() expected error for %s", tt.name)
			}
		})
	}
}
