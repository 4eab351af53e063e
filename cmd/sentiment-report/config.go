package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
)

type Config struct {
	InPath string
	Verify bool
}

func (c Config) Validate() error {
	if c.InPath == "" {
		return errors.New("missing -in")
	}
	return nil
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Verify: true}
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.InPath, "in", "", "Path to a structured JSON export (results.json)")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "Recompute summary stats from results and fail on mismatch with stored stats")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.InPath != "" {
		cfg.InPath = filepath.Clean(cfg.InPath)
	}
	return cfg, nil
}
