package sentiment

import (
	"strings"
	"time"
)

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "love", "best", "wonderful", "fantastic",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "hate", "worst", "horrible", "disappointing",
}

// FallbackClassify is the deterministic local heuristic used whenever the
// capability call fails, its response cannot be parsed, or fewer items come
// back than were requested. It is a pure function of text (plus the supplied
// timestamp): identical input always yields identical sentiment and
// confidence.
func FallbackClassify(text string, analyzedAt time.Time) Result {
	lower := strings.ToLower(text)

	positive := countPresent(lower, positiveWords)
	negative := countPresent(lower, negativeWords)

	label := Neutral
	confidence := 0.5
	switch {
	case positive > negative:
		label = Positive
		confidence = 0.6
	case negative > positive:
		label = Negative
		confidence = 0.6
	}

	return Result{
		OriginalText: TruncateText(text, originalTextMax),
		Sentiment:    label,
		Confidence:   confidence,
		Intensity:    defaultIntensity,
		Emotions:     []string{"neutral"},
		KeyPhrases:   []string{},
		AnalyzedAt:   analyzedAt,
	}
}

func countPresent(lower string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}
