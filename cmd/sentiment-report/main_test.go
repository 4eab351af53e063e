package main

import (
	"flag"
	"testing"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet("sentiment-report", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-in", "data/results.json", "-verify=false"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if cfg.InPath == "" {
		t.Fatalf("InPath empty")
	}
	if cfg.Verify {
		t.Fatalf("Verify=%v, want false", cfg.Verify)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	fs = flag.NewFlagSet("sentiment-report", flag.ContinueOnError)
	cfg, err = parseFlags(fs, nil)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !cfg.Verify {
		t.Fatalf("Verify should default to true")
	}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("missing -in accepted")
	}
}
