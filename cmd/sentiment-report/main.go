package main

import (
	"flag"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/theimaginaryfoundation/sentiment-scope/sentiment"
)

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	export, err := sentiment.ReadExportFile(cfg.InPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	stats := sentiment.Summarize(export.Results)

	if cfg.Verify && !reflect.DeepEqual(stats, export.Metadata.SummaryStats) {
		fmt.Fprintf(os.Stderr, "stored summary stats do not match recomputation\nstored:     %+v\nrecomputed: %+v\n",
			export.Metadata.SummaryStats, stats)
		os.Exit(1)
	}

	printReport(os.Stdout, export, stats)
}

func printReport(w *os.File, export sentiment.Export, stats sentiment.SummaryStats) {
	fmt.Fprintf(w, "run_id: %s\n", export.Metadata.RunID)
	fmt.Fprintf(w, "generated_at: %s\n", export.Metadata.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "total_analyzed: %d\n", stats.TotalAnalyzed)
	fmt.Fprintf(w, "positive: %d (%.1f%%)\n", stats.PositiveCount, stats.PositivePercentage)
	fmt.Fprintf(w, "negative: %d (%.1f%%)\n", stats.NegativeCount, stats.NegativePercentage)
	fmt.Fprintf(w, "neutral: %d (%.1f%%)\n", stats.NeutralCount, stats.NeutralPercentage)
	fmt.Fprintf(w, "average_confidence: %.2f\n", stats.AverageConfidence)
	fmt.Fprintf(w, "average_intensity: %.1f\n", stats.AverageIntensity)
	for _, e := range stats.TopEmotions {
		fmt.Fprintf(w, "emotion: %s count=%d\n", e.Emotion, e.Count)
	}
}
