package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/theimaginaryfoundation/sentiment-scope/sentiment"
	"github.com/theimaginaryfoundation/sentiment-scope/sentiment/fileutils"
	"github.com/theimaginaryfoundation/sentiment-scope/sentiment/provider"
)

func main() {
	_ = godotenv.Load()

	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataset, err := loadDataset(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if len(dataset.Texts) == 0 {
		fmt.Fprintln(os.Stderr, "no texts found in input")
		os.Exit(2)
	}
	if cfg.MaxTexts > 0 && len(dataset.Texts) > cfg.MaxTexts {
		dataset.Texts = dataset.Texts[:cfg.MaxTexts]
	}

	classifier, err := provider.New(apiKey, cfg.Model, provider.Options{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	analyzer, err := sentiment.NewAnalyzer(classifier, sentiment.AnalyzerOptions{
		ChunkSize:   cfg.ChunkSize,
		Concurrency: cfg.Concurrency,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	results := analyzer.AnalyzeBatch(ctx, dataset.Texts)
	stats := sentiment.Summarize(results)
	export := sentiment.NewExport(results, stats)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	jsonPath := filepath.Join(cfg.OutDir, "results.json")
	csvPath := filepath.Join(cfg.OutDir, "results.csv")

	if cfg.Format == "json" || cfg.Format == "both" {
		if err := checkOverwrite(jsonPath, cfg.Overwrite); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		if err := sentiment.WriteExportFile(jsonPath, export, cfg.Pretty); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}
	if cfg.Format == "csv" || cfg.Format == "both" {
		if err := checkOverwrite(csvPath, cfg.Overwrite); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		if err := sentiment.WriteCSVFile(csvPath, results, stats, time.Now()); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stdout, "run_id=%s source=%q texts_analyzed=%d positive=%d negative=%d neutral=%d avg_confidence=%.2f avg_intensity=%.1f out=%s\n",
		export.Metadata.RunID, dataset.Source, stats.TotalAnalyzed,
		stats.PositiveCount, stats.NegativeCount, stats.NeutralCount,
		stats.AverageConfidence, stats.AverageIntensity, cfg.OutDir)
}

func loadDataset(cfg Config) (sentiment.Dataset, error) {
	if cfg.Sample {
		return sentiment.SampleDataset(), nil
	}
	return sentiment.ReadTexts(cfg.InPath)
}

func checkOverwrite(path string, overwrite bool) error {
	if overwrite {
		return nil
	}
	if fileutils.FileExists(path) {
		return fmt.Errorf("export already exists: %s (pass -overwrite)", path)
	}
	return nil
}
