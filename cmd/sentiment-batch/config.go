package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	InPath string
	OutDir string
	Model  string
	APIKey string

	Format string // csv | json | both

	ChunkSize   int
	Concurrency int
	MaxTexts    int

	Pretty    bool
	Overwrite bool
	Sample    bool
}

func (c Config) Validate() error {
	if c.InPath == "" && !c.Sample {
		return errors.New("missing -in (or pass -sample)")
	}
	if c.InPath != "" && c.Sample {
		return errors.New("-in and -sample are mutually exclusive")
	}
	if c.OutDir == "" {
		return errors.New("missing -out")
	}
	if c.Model == "" {
		return errors.New("missing -model")
	}
	switch c.Format {
	case "csv", "json", "both":
	default:
		return errors.New("format must be csv, json, or both")
	}
	if c.ChunkSize < 0 {
		return errors.New("chunk-size must be >= 0")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must be >= 0")
	}
	if c.MaxTexts < 0 {
		return errors.New("max-texts must be >= 0")
	}
	return nil
}

func defaultConfig() Config {
	return Config{
		Model:       "gpt-5-mini",
		Format:      "both",
		ChunkSize:   5,
		Concurrency: 4,
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InPath, "in", "", "Input .csv, .txt, or .json file of texts to analyze")
	fs.StringVar(&cfg.OutDir, "out", "", "Output directory for export files")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "OpenAI model to use (e.g. gpt-5-mini)")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Export format: csv, json, or both")
	fs.IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "Texts per capability call (0 = default)")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Max concurrent capability calls (0 = default)")
	fs.IntVar(&cfg.MaxTexts, "max-texts", 0, "Analyze only the first N texts (0 = all)")
	fs.BoolVar(&cfg.Pretty, "pretty", false, "Pretty-print the JSON export")
	fs.BoolVar(&cfg.Overwrite, "overwrite", false, "Overwrite existing export files")
	fs.BoolVar(&cfg.Sample, "sample", false, "Analyze the built-in sample dataset instead of -in")
	fs.StringVar(&cfg.APIKey, "api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.InPath != "" {
		cfg.InPath = filepath.Clean(cfg.InPath)
	}
	if cfg.OutDir != "" {
		cfg.OutDir = filepath.Clean(cfg.OutDir)
	}
	return cfg, nil
}
