package sentiment

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

// wireRecord mirrors the JSON object the capability is instructed to return
// for one text. It exists only to reflect a schema into requests; responses
// are still parsed defensively as RawRecords.
type wireRecord struct {
	Sentiment  string   `json:"sentiment" jsonschema:"enum=positive,enum=negative,enum=neutral"`
	Confidence float64  `json:"confidence" jsonschema:"minimum=0,maximum=1"`
	Emotions   []string `json:"emotions"`
	KeyPhrases []string `json:"key_phrases"`
	Intensity  int      `json:"intensity" jsonschema:"minimum=1,maximum=10"`
}

// wireBatchRecord is wireRecord plus the input-position tag used to re-merge
// chunk responses.
type wireBatchRecord struct {
	ID         int      `json:"id"`
	Sentiment  string   `json:"sentiment" jsonschema:"enum=positive,enum=negative,enum=neutral"`
	Confidence float64  `json:"confidence" jsonschema:"minimum=0,maximum=1"`
	Emotions   []string `json:"emotions"`
	KeyPhrases []string `json:"key_phrases"`
	Intensity  int      `json:"intensity" jsonschema:"minimum=1,maximum=10"`
}

var recordSchema = generateSchema[wireRecord]()
var recordSchemaJSON = mustMarshalSchema(recordSchema)

var batchRecordSchema = generateSchema[wireBatchRecord]()
var batchRecordSchemaJSON = mustMarshalSchema(batchRecordSchema)

// batchEnvelopeSchema wraps the per-record schema in an object root, which is
// what structured-output enforcement requires of a response format.
var batchEnvelopeSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"results": map[string]any{
			"type":  "array",
			"items": batchRecordSchema,
		},
	},
	"required": []string{"results"},
}

const promptRules = `Rules:
- sentiment must be exactly "positive", "negative", or "neutral"
- confidence must be a number between 0 and 1
- intensity must be an integer between 1 and 10 (1=very mild, 10=very strong)
- emotions should be the relevant emotions detected
- key_phrases should be 3-5 important words/phrases from the text`

// BuildPrompt constructs the request for a single text. The prompt dictates
// the output schema explicitly; it nudges the capability toward valid output
// but never guarantees it, which is why Normalize exists.
func BuildPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Analyze the sentiment of the following text and return ONLY a JSON object, no surrounding prose.\n\n")
	fmt.Fprintf(&b, "Text: %q\n\n", text)
	b.WriteString("The JSON object must conform to this JSON Schema:\n")
	b.WriteString(recordSchemaJSON)
	b.WriteString("\n\n")
	b.WriteString(promptRules)
	return b.String()
}

// BuildChunkPrompt constructs the request for one chunk. Each text is tagged
// with its 0-based position inside the chunk; the capability is asked to echo
// that id on every record so results can be matched back.
func BuildChunkPrompt(texts []string) string {
	type item struct {
		ID   int    `json:"id"`
		Text string `json:"text"`
	}
	items := make([]item, len(texts))
	for i, t := range texts {
		items[i] = item{ID: i, Text: t}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		// Texts are plain strings; marshalling them cannot fail.
		panic(err)
	}

	var b strings.Builder
	b.WriteString("Analyze the sentiment of these texts and return ONLY a JSON object of the form {\"results\": [...]}, no surrounding prose.\n\n")
	fmt.Fprintf(&b, "Texts: %s\n\n", encoded)
	b.WriteString("The results array must contain one record per input text. Each record must carry the matching input id and conform to this JSON Schema:\n")
	b.WriteString(batchRecordSchemaJSON)
	b.WriteString("\n\n")
	b.WriteString(promptRules)
	return b.String()
}

// BuildRequest packages the single-text prompt with its response schema.
func BuildRequest(text string) Request {
	return Request{
		Prompt:     BuildPrompt(text),
		SchemaName: "SentimentRecord",
		Schema:     recordSchema,
	}
}

// BuildChunkRequest packages the chunk prompt with the enveloped array schema.
func BuildChunkRequest(texts []string) Request {
	return Request{
		Prompt:     BuildChunkPrompt(texts),
		SchemaName: "SentimentRecordList",
		Schema:     batchEnvelopeSchema,
	}
}

func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)
	b, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	markAllRequired(m)
	return m
}

func mustMarshalSchema(schema map[string]any) string {
	b, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// markAllRequired makes every declared property required so the schema leaves
// no field optional. The required list is sorted, keeping schema bytes stable
// across runs.
func markAllRequired(schema map[string]any) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		if properties, ok := schema["properties"].(map[string]any); ok {
			required := make([]string, 0, len(properties))
			for name := range properties {
				required = append(required, name)
			}
			sort.Strings(required)
			if len(required) > 0 {
				schema["required"] = required
			}
		}
	}
	if properties, ok := schema["properties"].(map[string]any); ok {
		for _, prop := range properties {
			if propMap, ok := prop.(map[string]any); ok {
				markAllRequired(propMap)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		markAllRequired(items)
	}
}
