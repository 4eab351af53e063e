package sentiment

import (
	"strconv"
	"strings"
	"time"
)

const (
	defaultConfidence = 0.5
	defaultIntensity  = 5

	// originalTextMax is the rune limit for Result.OriginalText before the
	// ellipsis marker is appended.
	originalTextMax = 100
)

// Normalize coerces a loosely-typed parsed record into a well-formed Result.
// It cannot fail: every missing or mistyped field independently falls back to
// its stated default, numeric fields are clamped into range.
func Normalize(rec RawRecord, originalText string, analyzedAt time.Time) Result {
	return Result{
		OriginalText: TruncateText(originalText, originalTextMax),
		Sentiment:    sentimentField(rec["sentiment"]),
		Confidence:   clampFloat(numberField(rec["confidence"], defaultConfidence), 0, 1),
		Intensity:    clampInt(intField(rec["intensity"], defaultIntensity), 1, 10),
		Emotions:     listField(rec["emotions"], []string{"neutral"}),
		KeyPhrases:   listField(rec["key_phrases"], []string{}),
		AnalyzedAt:   analyzedAt,
	}
}

// NormalizeResult re-applies the Result field domains to an already-typed
// value. Exports can be edited by hand between a write and a re-import, so
// records re-entering the pipeline get the same treatment as capability
// output: invalid labels become neutral, numbers are clamped, empty lists
// fall back to their defaults.
func NormalizeResult(r Result) Result {
	r.OriginalText = TruncateText(r.OriginalText, originalTextMax)
	r.Sentiment = Sentiment(strings.ToLower(strings.TrimSpace(string(r.Sentiment))))
	if !r.Sentiment.Valid() {
		r.Sentiment = Neutral
	}
	r.Confidence = clampFloat(r.Confidence, 0, 1)
	r.Intensity = clampInt(r.Intensity, 1, 10)
	if len(r.Emotions) == 0 {
		r.Emotions = []string{"neutral"}
	}
	if r.KeyPhrases == nil {
		r.KeyPhrases = []string{}
	}
	return r
}

// TruncateText shortens s to at most max runes, appending "..." when anything
// was cut.
func TruncateText(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func sentimentField(v any) Sentiment {
	s, ok := v.(string)
	if !ok {
		return Neutral
	}
	label := Sentiment(strings.ToLower(strings.TrimSpace(s)))
	if !label.Valid() {
		return Neutral
	}
	return label
}

// numberField accepts the numeric shapes encoding/json can produce plus a few
// shapes sloppy models emit (integers, numeric strings).
func numberField(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f
		}
	}
	return fallback
}

func intField(v any, fallback int) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f)
		}
	}
	return fallback
}

func listField(v any, fallback []string) []string {
	items, ok := v.([]any)
	if !ok {
		return fallback
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
