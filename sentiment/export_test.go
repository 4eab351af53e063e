package sentiment

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestExport_RoundTripReproducesStats(t *testing.T) {
	t.Parallel()

	results := []Result{
		mkResult(Positive, 0.9, 8, "joy"),
		mkResult(Negative, 0.7, 7, "anger", "fear"),
		mkResult(Neutral, 0.5, 5),
	}
	stats := Summarize(results)
	export := NewExport(results, stats)
	if export.Metadata.RunID == "" {
		t.Fatalf("run id is empty")
	}
	if export.Metadata.TotalAnalyzed != 3 {
		t.Fatalf("total=%d", export.Metadata.TotalAnalyzed)
	}

	path := filepath.Join(t.TempDir(), "results.json")
	if err := WriteExportFile(path, export, true); err != nil {
		t.Fatalf("write: %v", err)
	}

	back, err := ReadExportFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if back.Metadata.RunID != export.Metadata.RunID {
		t.Fatalf("run id changed: %q != %q", back.Metadata.RunID, export.Metadata.RunID)
	}
	if !reflect.DeepEqual(Summarize(back.Results), stats) {
		t.Fatalf("re-imported stats differ:\n%+v\n%+v", Summarize(back.Results), stats)
	}
	if !reflect.DeepEqual(back.Metadata.SummaryStats, stats) {
		t.Fatalf("stored stats differ:\n%+v\n%+v", back.Metadata.SummaryStats, stats)
	}
}

func TestReadExportFile_RenormalizesEditedResults(t *testing.T) {
	t.Parallel()

	// A hand-edited export with out-of-domain values must come back inside
	// the Result domains, same as capability output would.
	raw := `{
		"metadata": {"run_id": "r1", "total_analyzed": 1},
		"results": [{
			"original_text": "edited by hand",
			"sentiment": "Enthusiastic",
			"confidence": 7,
			"intensity": 0,
			"emotions": [],
			"key_phrases": null,
			"analyzed_at": "2026-08-01T12:00:00Z"
		}]
	}`
	path := filepath.Join(t.TempDir(), "results.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	export, err := ReadExportFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(export.Results) != 1 {
		t.Fatalf("results=%d", len(export.Results))
	}
	r := export.Results[0]
	if r.Sentiment != Neutral {
		t.Fatalf("sentiment=%q, want neutral for unknown label", r.Sentiment)
	}
	if r.Confidence != 1 {
		t.Fatalf("confidence=%v, want clamped to 1", r.Confidence)
	}
	if r.Intensity != 1 {
		t.Fatalf("intensity=%d, want clamped to 1", r.Intensity)
	}
	if len(r.Emotions) != 1 || r.Emotions[0] != "neutral" {
		t.Fatalf("emotions=%v, want default", r.Emotions)
	}
	if r.KeyPhrases == nil {
		t.Fatalf("key phrases still nil")
	}
	checkDomains(t, r)
}

func TestReadExportFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ReadExportFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestRenderCSV(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	results := []Result{
		{
			OriginalText: "great, but the comma matters",
			Sentiment:    Positive,
			Confidence:   0.9,
			Intensity:    8,
			Emotions:     []string{"joy", "relief"},
			KeyPhrases:   []string{"great"},
			AnalyzedAt:   at,
		},
		{
			OriginalText: "meh",
			Sentiment:    Neutral,
			Confidence:   0.5,
			Intensity:    5,
			Emotions:     []string{"neutral"},
			KeyPhrases:   []string{},
			AnalyzedAt:   at,
		},
	}
	stats := Summarize(results)

	out, err := RenderCSV(results, stats, at)
	if err != nil {
		t.Fatalf("RenderCSV: %v", err)
	}

	for _, want := range []string{
		"# Sentiment Analysis Results\n",
		"# Generated on: 2026-08-01T12:00:00Z\n",
		"# Total Analyzed: 2\n",
		"# Positive: 50.0%\n",
		"# Neutral: 50.0%\n",
		"# Average Confidence: 0.70\n",
		"# Average Intensity: 6.5\n",
		"text,sentiment,confidence,intensity,emotions,key_phrases,analyzed_at\n",
		"\"joy, relief\"",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("csv output missing %q:\n%s", want, out)
		}
	}

	// The text containing a comma must be quoted, not split.
	if !strings.Contains(out, "\"great, but the comma matters\"") {
		t.Fatalf("comma text not quoted:\n%s", out)
	}
}

func TestWriteCSVFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "results.csv")
	results := []Result{mkResult(Positive, 0.6, 5, "joy")}
	if err := WriteCSVFile(path, results, Summarize(results), time.Now()); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), "text,sentiment,confidence") {
		t.Fatalf("csv file missing header:\n%s", string(b))
	}
}
