package sentiment

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Request is one classification request: the prompt text plus the JSON
// schema the response must conform to. Providers that support structured
// output pass Schema as the response format; the schema is also embedded in
// Prompt, so providers without enforcement still see it.
type Request struct {
	Prompt     string
	SchemaName string
	Schema     map[string]any
}

// Capability is the external text-classification collaborator, treated as a
// black box from request to raw response text. Schema enforcement is best
// effort; the parse/normalize chain covers the gap regardless.
type Capability interface {
	Classify(ctx context.Context, req Request) (string, error)
}

const (
	// DefaultChunkSize is how many texts share one capability call.
	DefaultChunkSize = 5

	// DefaultConcurrency bounds in-flight capability calls per batch.
	DefaultConcurrency = 4
)

// ErrNoCapability is returned by NewAnalyzer when no capability was supplied.
// It is the only error the pipeline ever surfaces to a caller; everything
// after construction degrades to the fallback classifier instead of failing.
var ErrNoCapability = errors.New("sentiment: capability is nil")

// AnalyzerOptions tune chunking and concurrency. Zero values mean defaults.
type AnalyzerOptions struct {
	ChunkSize   int
	Concurrency int
}

// Analyzer drives the capability over batches of texts and guarantees one
// well-formed Result per input regardless of transport or parse failures.
type Analyzer struct {
	capability  Capability
	chunkSize   int
	concurrency int
}

func NewAnalyzer(capability Capability, opts AnalyzerOptions) (*Analyzer, error) {
	if capability == nil {
		return nil, ErrNoCapability
	}
	a := &Analyzer{
		capability:  capability,
		chunkSize:   opts.ChunkSize,
		concurrency: opts.Concurrency,
	}
	if a.chunkSize <= 0 {
		a.chunkSize = DefaultChunkSize
	}
	if a.concurrency <= 0 {
		a.concurrency = DefaultConcurrency
	}
	return a, nil
}

// AnalyzeText analyzes a single text. Transport and parse failures degrade to
// the fallback classifier; the returned Result is always well-formed.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) Result {
	raw, err := a.capability.Classify(ctx, BuildRequest(text))
	at := time.Now()
	if err != nil {
		return FallbackClassify(text, at)
	}
	rec, err := ParseRecord(raw)
	if err != nil {
		return FallbackClassify(text, at)
	}
	return Normalize(rec, text, at)
}

// AnalyzeBatch analyzes texts in input order: the returned slice has exactly
// one Result per input, with results[i] derived from texts[i]. Chunks are
// processed independently on a bounded worker pool, one capability call per
// chunk, no retries; each chunk writes into its reserved index range so
// completion order never affects output order.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, texts []string) []Result {
	if len(texts) == 0 {
		return nil
	}

	results := make([]Result, len(texts))
	chunks := SplitChunks(texts, a.chunkSize)

	sem := make(chan struct{}, a.concurrency)
	wg := sync.WaitGroup{}
	for _, chunk := range chunks {
		wg.Add(1)
		go func(chunk Chunk) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			a.analyzeChunk(ctx, chunk, results)
		}(chunk)
	}
	wg.Wait()

	return results
}

// SplitChunks slices texts into contiguous chunks of at most size items,
// preserving order. The last chunk may be shorter.
func SplitChunks(texts []string, size int) []Chunk {
	if size <= 0 {
		size = DefaultChunkSize
	}
	var chunks []Chunk
	for start := 0; start < len(texts); start += size {
		end := start + size
		if end > len(texts) {
			end = len(texts)
		}
		chunks = append(chunks, Chunk{Start: start, Texts: texts[start:end]})
	}
	return chunks
}

// analyzeChunk fills out[chunk.Start : chunk.Start+len(chunk.Texts)]. A failed
// call, an unparseable response, or a missing id degrades per item to the
// fallback classifier; a failure here never aborts the chunk or the batch.
func (a *Analyzer) analyzeChunk(ctx context.Context, chunk Chunk, out []Result) {
	raw, err := a.capability.Classify(ctx, BuildChunkRequest(chunk.Texts))
	at := time.Now()
	if err == nil {
		if recs, perr := ParseRecordArray(raw); perr == nil {
			byID := make(map[int]RawRecord, len(recs))
			for _, rec := range recs {
				id := intField(rec["id"], -1)
				if id < 0 || id >= len(chunk.Texts) {
					continue
				}
				if _, dup := byID[id]; !dup {
					byID[id] = rec
				}
			}
			for i, text := range chunk.Texts {
				if rec, ok := byID[i]; ok {
					out[chunk.Start+i] = Normalize(rec, text, at)
				} else {
					out[chunk.Start+i] = FallbackClassify(text, at)
				}
			}
			return
		}
	}

	for i, text := range chunk.Texts {
		out[chunk.Start+i] = FallbackClassify(text, at)
	}
}
