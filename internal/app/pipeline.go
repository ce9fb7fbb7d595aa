// Package app contains the preprocessing pipeline of the labelprep CLI tool.
// It wires the stages together and keeps CLI concerns out of them.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/chriscorrea/labelprep/internal/dataset"
	"github.com/chriscorrea/labelprep/internal/extract"
	"github.com/chriscorrea/labelprep/internal/fasttext"
	"github.com/chriscorrea/labelprep/internal/fetch"
	"github.com/chriscorrea/labelprep/internal/filter"
	"github.com/chriscorrea/labelprep/internal/lexicon"
	"github.com/chriscorrea/labelprep/internal/normalize"
	"github.com/chriscorrea/labelprep/internal/progress"
	"github.com/chriscorrea/labelprep/internal/report"
	"github.com/chriscorrea/labelprep/internal/split"
	"github.com/chriscorrea/labelprep/internal/tfidf"
)

// Result summarizes a completed run.
type Result struct {
	Loaded     int // documents read from the input
	Filtered   int // documents left after the token-count filter
	Processed  int // documents left after normalization and deduplication
	Thresholds filter.Thresholds
	Train      fasttext.Stats
	Test       fasttext.Stats
}

// Run executes the preprocessing pipeline and writes diagnostics to out.
//
// Processing Pipeline:
// 1. load the table and drop token-count outliers
// 2. acquire lexical resources and normalize every document
// 3. drop duplicates, split into train and test, and write both files
//
// Diagnostics of each stage are written as soon as the stage completes.
// ctx allows cancellation of the input download and between stages.
func Run(ctx context.Context, cfg Config, out io.Writer) (Result, error) {
	var result Result

	if err := cfg.Validate(); err != nil {
		return result, err
	}
	morphology, _ := lexicon.ParseMorphology(cfg.Morphology) // checked by Validate

	rep := report.New(out, cfg.Quiet)

	// step 1: load and filter by length on the original text
	corpus, err := load(ctx, cfg)
	if err != nil {
		return result, err
	}
	result.Loaded = len(corpus)
	rep.Shape("loaded", corpus)

	filtered, th := filter.ByTokenCount(corpus, cfg.LowerPercentile, cfg.UpperPercentile)
	result.Filtered = len(filtered)
	result.Thresholds = th
	rep.Thresholds(th)
	rep.Shape("length filtered", filtered)

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// step 2: normalize
	resources, err := lexicon.New(morphology)
	if err != nil {
		return result, fmt.Errorf("failed to load lexical resources: %w", err)
	}

	bar := progress.ForStderr(len(filtered), "Normalizing", cfg.Quiet)
	normalized := normalize.New(resources).Apply(filtered, bar.Tick)
	bar.Finish()

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// step 3: deduplicate, split, write
	processed := filter.Deduplicate(normalized)
	result.Processed = len(processed)
	rep.Shape("end of processing", processed)
	if cfg.TopTerms > 0 {
		rep.TopTerms(tfidf.ByLabel(processed), cfg.TopTerms)
	}

	train, test, err := split.Stratified(processed, cfg.TestSize, cfg.Seed)
	if err != nil {
		return result, fmt.Errorf("failed to split corpus: %w", err)
	}
	rep.Split(train, test)

	result.Train, err = fasttext.WriteFile(cfg.TrainPath, train)
	if err != nil {
		return result, err
	}
	result.Test, err = fasttext.WriteFile(cfg.TestPath, test)
	if err != nil {
		return result, err
	}
	rep.Outputs(result.Train, result.Test)

	slog.Debug("Run complete",
		"loaded", result.Loaded, "filtered", result.Filtered, "processed", result.Processed,
		"train", result.Train.Lines, "test", result.Test.Lines)
	return result, nil
}

// load reads the input table, optionally stripping markup from the texts.
func load(ctx context.Context, cfg Config) (dataset.Corpus, error) {
	reader, err := fetch.Open(ctx, cfg.Input)
	if err != nil {
		return nil, &dataset.MalformedInputError{Reason: "unreadable input", Err: err}
	}
	defer reader.Close()

	var opts []dataset.Option
	if cfg.StripMarkup {
		opts = append(opts, dataset.WithTextFilter(extract.StripMarkup))
	}

	corpus, err := dataset.ReadCSV(reader, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", cfg.Input, err)
	}
	return corpus, nil
}
