package sentiment

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RawRecord is one loosely-typed record parsed out of a capability response.
// Nothing about its shape or value types is trusted; Normalize turns it into
// a Result.
type RawRecord map[string]any

// ParseError reports that no usable structured data could be located in a
// capability response. It is recoverable: the orchestrator answers it with
// the fallback classifier, it never reaches the caller.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse response: %s: %v", e.Reason, e.Err)
	}
	return "parse response: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseRecord locates and parses the first JSON object embedded in text.
// The capability may wrap the object in explanatory prose; the fast path
// tries the whole trimmed text, the fallback extracts the first '{' .. last
// '}' substring.
func ParseRecord(text string) (RawRecord, error) {
	var rec RawRecord
	if err := decodeEmbedded(text, '{', '}', &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ParseRecordArray is ParseRecord for chunk responses: it locates the first
// JSON array embedded in text.
func ParseRecordArray(text string) ([]RawRecord, error) {
	var recs []RawRecord
	if err := decodeEmbedded(text, '[', ']', &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func decodeEmbedded(text string, open, close byte, v any) error {
	s := strings.TrimSpace(text)
	if s == "" {
		return &ParseError{Reason: "empty response"}
	}

	// Fast path: valid JSON as-is.
	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start == -1 || end == -1 || end <= start {
		return &ParseError{Reason: fmt.Sprintf("no %c...%c pair found (len=%d)", open, close, len(s))}
	}

	sub := s[start : end+1]
	if err := json.Unmarshal([]byte(sub), v); err != nil {
		return &ParseError{Reason: fmt.Sprintf("extracted substring is not valid JSON (len=%d)", len(sub)), Err: err}
	}
	return nil
}
