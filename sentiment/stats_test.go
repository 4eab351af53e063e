package sentiment

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func mkResult(s Sentiment, confidence float64, intensity int, emotions ...string) Result {
	if len(emotions) == 0 {
		emotions = []string{"neutral"}
	}
	return Result{
		OriginalText: "t",
		Sentiment:    s,
		Confidence:   confidence,
		Intensity:    intensity,
		Emotions:     emotions,
		KeyPhrases:   []string{},
		AnalyzedAt:   time.Now(),
	}
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	stats := Summarize(nil)
	if !reflect.DeepEqual(stats, SummaryStats{}) {
		t.Fatalf("stats=%+v, want zero value", stats)
	}
}

func TestSummarize_CountsAndAverages(t *testing.T) {
	t.Parallel()

	results := []Result{
		mkResult(Positive, 0.9, 8, "joy"),
		mkResult(Positive, 0.8, 6, "joy", "excitement"),
		mkResult(Negative, 0.7, 7, "anger"),
		mkResult(Neutral, 0.5, 5),
	}
	stats := Summarize(results)

	if stats.TotalAnalyzed != 4 {
		t.Fatalf("total=%d", stats.TotalAnalyzed)
	}
	if stats.PositiveCount != 2 || stats.NegativeCount != 1 || stats.NeutralCount != 1 {
		t.Fatalf("counts=%d/%d/%d", stats.PositiveCount, stats.NegativeCount, stats.NeutralCount)
	}
	if stats.PositivePercentage != 50.0 || stats.NegativePercentage != 25.0 || stats.NeutralPercentage != 25.0 {
		t.Fatalf("percentages=%v/%v/%v", stats.PositivePercentage, stats.NegativePercentage, stats.NeutralPercentage)
	}
	if stats.AverageConfidence != 0.73 { // (0.9+0.8+0.7+0.5)/4 = 0.725 -> 0.73
		t.Fatalf("avg confidence=%v", stats.AverageConfidence)
	}
	if stats.AverageIntensity != 6.5 {
		t.Fatalf("avg intensity=%v", stats.AverageIntensity)
	}
}

func TestSummarize_PercentagesSumNear100(t *testing.T) {
	t.Parallel()

	results := []Result{
		mkResult(Positive, 0.6, 5),
		mkResult(Negative, 0.6, 5),
		mkResult(Neutral, 0.5, 5),
	}
	stats := Summarize(results)
	sum := stats.PositivePercentage + stats.NegativePercentage + stats.NeutralPercentage
	if math.Abs(sum-100.0) > 0.1 {
		t.Fatalf("percentage sum=%v", sum)
	}
}

func TestSummarize_TopEmotions(t *testing.T) {
	t.Parallel()

	results := []Result{
		mkResult(Positive, 0.9, 8, "joy", "calm"),
		mkResult(Positive, 0.9, 8, "joy", "trust"),
		mkResult(Neutral, 0.5, 5, "calm"),
		mkResult(Negative, 0.7, 7, "anger", "fear", "dread"),
		mkResult(Negative, 0.7, 7, "joy"),
	}
	stats := Summarize(results)

	if len(stats.TopEmotions) != 5 {
		t.Fatalf("top emotions=%v", stats.TopEmotions)
	}
	if stats.TopEmotions[0].Emotion != "joy" || stats.TopEmotions[0].Count != 3 {
		t.Fatalf("top[0]=%+v", stats.TopEmotions[0])
	}
	if stats.TopEmotions[1].Emotion != "calm" || stats.TopEmotions[1].Count != 2 {
		t.Fatalf("top[1]=%+v", stats.TopEmotions[1])
	}
	// Ties (trust, anger, fear, dread all count 1) keep first-occurrence order;
	// only three slots remain.
	if stats.TopEmotions[2].Emotion != "trust" || stats.TopEmotions[3].Emotion != "anger" || stats.TopEmotions[4].Emotion != "fear" {
		t.Fatalf("tie order=%v", stats.TopEmotions[2:])
	}
	for i := 1; i < len(stats.TopEmotions); i++ {
		if stats.TopEmotions[i].Count > stats.TopEmotions[i-1].Count {
			t.Fatalf("counts not non-increasing: %v", stats.TopEmotions)
		}
	}
}

func TestSummarize_RoundingOneDecimal(t *testing.T) {
	t.Parallel()

	// 1 of 3 positive: 33.333... -> 33.3; 2 of 3 neutral: 66.666... -> 66.7.
	results := []Result{
		mkResult(Positive, 0.6, 5),
		mkResult(Neutral, 0.5, 5),
		mkResult(Neutral, 0.5, 5),
	}
	stats := Summarize(results)
	if stats.PositivePercentage != 33.3 {
		t.Fatalf("positive pct=%v", stats.PositivePercentage)
	}
	if stats.NeutralPercentage != 66.7 {
		t.Fatalf("neutral pct=%v", stats.NeutralPercentage)
	}
}
