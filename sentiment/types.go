package sentiment

import "time"

// Sentiment is the three-valued polarity label every analysis resolves to.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three allowed labels.
func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// Result is the normalized analysis of one input text. Every field is inside
// its declared domain after construction, regardless of which path (capability
// or fallback) produced it.
type Result struct {
	OriginalText string    `json:"original_text"`
	Sentiment    Sentiment `json:"sentiment"`
	Confidence   float64   `json:"confidence"`
	Intensity    int       `json:"intensity"`
	Emotions     []string  `json:"emotions"`
	KeyPhrases   []string  `json:"key_phrases"`
	AnalyzedAt   time.Time `json:"analyzed_at"`
}

// Chunk is a contiguous, order-preserving slice of an input batch, processed
// via a single capability call. Start is the offset of Texts[0] in the
// original input list.
type Chunk struct {
	Start int
	Texts []string
}

// EmotionCount is one (emotion, occurrence count) pair in SummaryStats.
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// SummaryStats is recomputed fresh from a Result list; it is never mutated
// incrementally.
type SummaryStats struct {
	TotalAnalyzed int `json:"total_analyzed"`

	PositiveCount int `json:"positive_count"`
	NegativeCount int `json:"negative_count"`
	NeutralCount  int `json:"neutral_count"`

	PositivePercentage float64 `json:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`

	AverageConfidence float64 `json:"average_confidence"`
	AverageIntensity  float64 `json:"average_intensity"`

	TopEmotions []EmotionCount `json:"top_emotions"`
}

// Dataset is an ordered list of texts plus a description of where they came
// from.
type Dataset struct {
	Texts  []string `json:"texts"`
	Source string   `json:"source"`
}
