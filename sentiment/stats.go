package sentiment

import (
	"math"
	"sort"
)

// topEmotionsMax caps the top_emotions ranking in SummaryStats.
const topEmotionsMax = 5

// Summarize reduces a completed Result list into fresh SummaryStats. An empty
// input yields zeroed stats. Percentages are rounded to 1 decimal, average
// confidence to 2 decimals, average intensity to 1 decimal. Emotion frequency
// counts every occurrence across every Result; the ranking is a stable
// descending sort by count (ties keep first-occurrence order), truncated to 5.
func Summarize(results []Result) SummaryStats {
	if len(results) == 0 {
		return SummaryStats{}
	}

	total := len(results)
	stats := SummaryStats{TotalAnalyzed: total}

	sumConfidence := 0.0
	sumIntensity := 0
	for _, r := range results {
		switch r.Sentiment {
		case Positive:
			stats.PositiveCount++
		case Negative:
			stats.NegativeCount++
		default:
			stats.NeutralCount++
		}
		sumConfidence += r.Confidence
		sumIntensity += r.Intensity
	}

	stats.PositivePercentage = round1(float64(stats.PositiveCount) / float64(total) * 100)
	stats.NegativePercentage = round1(float64(stats.NegativeCount) / float64(total) * 100)
	stats.NeutralPercentage = round1(float64(stats.NeutralCount) / float64(total) * 100)
	stats.AverageConfidence = round2(sumConfidence / float64(total))
	stats.AverageIntensity = round1(float64(sumIntensity) / float64(total))
	stats.TopEmotions = topEmotions(results, topEmotionsMax)

	return stats
}

func topEmotions(results []Result, max int) []EmotionCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range results {
		for _, e := range r.Emotions {
			if counts[e] == 0 {
				order = append(order, e)
			}
			counts[e]++
		}
	}
	if len(order) == 0 {
		return nil
	}

	ranked := make([]EmotionCount, 0, len(order))
	for _, e := range order {
		ranked = append(ranked, EmotionCount{Emotion: e, Count: counts[e]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	return ranked
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
