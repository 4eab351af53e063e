package sentiment

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theimaginaryfoundation/sentiment-scope/sentiment/fileutils"
)

// Export is the structured export format: run metadata plus the full Result
// list. Re-importing an Export and re-summarizing its results reproduces the
// stored summary numbers.
type Export struct {
	Metadata ExportMetadata `json:"metadata"`
	Results  []Result       `json:"results"`
}

type ExportMetadata struct {
	GeneratedAt   time.Time    `json:"generated_at"`
	RunID         string       `json:"run_id"`
	TotalAnalyzed int          `json:"total_analyzed"`
	SummaryStats  SummaryStats `json:"summary_stats"`
}

// NewExport bundles results with fresh metadata and a unique run id.
func NewExport(results []Result, stats SummaryStats) Export {
	return Export{
		Metadata: ExportMetadata{
			GeneratedAt:   time.Now(),
			RunID:         uuid.NewString(),
			TotalAnalyzed: len(results),
			SummaryStats:  stats,
		},
		Results: results,
	}
}

func WriteExportFile(path string, export Export, pretty bool) error {
	return fileutils.WriteJSONFileAtomic(path, export, pretty)
}

func ReadExportFile(path string) (Export, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Export{}, fmt.Errorf("read export: %w", err)
	}
	var export Export
	if err := json.Unmarshal(b, &export); err != nil {
		return Export{}, fmt.Errorf("unmarshal export: %w", err)
	}
	for i, r := range export.Results {
		export.Results[i] = NormalizeResult(r)
	}
	return export, nil
}

// RenderCSV renders results as CSV preceded by commented summary lines.
// Emotions and key phrases are serialized as comma-joined strings.
func RenderCSV(results []Result, stats SummaryStats, generatedAt time.Time) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sentiment Analysis Results\n")
	fmt.Fprintf(&b, "# Generated on: %s\n", generatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "# Total Analyzed: %d\n", stats.TotalAnalyzed)
	fmt.Fprintf(&b, "# Positive: %.1f%%\n", stats.PositivePercentage)
	fmt.Fprintf(&b, "# Negative: %.1f%%\n", stats.NegativePercentage)
	fmt.Fprintf(&b, "# Neutral: %.1f%%\n", stats.NeutralPercentage)
	fmt.Fprintf(&b, "# Average Confidence: %.2f\n", stats.AverageConfidence)
	fmt.Fprintf(&b, "# Average Intensity: %.1f\n", stats.AverageIntensity)

	w := csv.NewWriter(&b)
	if err := w.Write([]string{"text", "sentiment", "confidence", "intensity", "emotions", "key_phrases", "analyzed_at"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.OriginalText,
			string(r.Sentiment),
			fmt.Sprintf("%g", r.Confidence),
			fmt.Sprintf("%d", r.Intensity),
			strings.Join(r.Emotions, ", "),
			strings.Join(r.KeyPhrases, ", "),
			r.AnalyzedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return b.String(), nil
}

func WriteCSVFile(path string, results []Result, stats SummaryStats, generatedAt time.Time) error {
	s, err := RenderCSV(results, stats, generatedAt)
	if err != nil {
		return err
	}
	return fileutils.WriteFileAtomicSameDir(path, []byte(s), 0o644)
}
