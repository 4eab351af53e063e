package sentiment

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// minTextFieldLen is the cell/field length above which a CSV column or JSON
// string field is assumed to hold analyzable text rather than labels or ids.
const minTextFieldLen = 10

// ReadTexts loads an ordered list of texts from a .csv, .txt, or .json file,
// dispatching on the file extension.
func ReadTexts(path string) (Dataset, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return readCSVTexts(path)
	case ".txt":
		return readTXTTexts(path)
	case ".json":
		return readJSONTexts(path)
	default:
		return Dataset{}, fmt.Errorf("unsupported file format: %q", ext)
	}
}

// readCSVTexts picks the first column whose average cell length exceeds
// minTextFieldLen and returns its non-empty cells in row order.
func readCSVTexts(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return Dataset{}, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return Dataset{}, fmt.Errorf("csv has no data rows")
	}

	header := rows[0]
	data := rows[1:]

	textCol := -1
	for col := range header {
		total := 0
		n := 0
		for _, row := range data {
			if col >= len(row) {
				continue
			}
			total += len(row[col])
			n++
		}
		if n > 0 && float64(total)/float64(n) > minTextFieldLen {
			textCol = col
			break
		}
	}
	if textCol == -1 {
		return Dataset{}, fmt.Errorf("no text columns found in csv file")
	}

	var texts []string
	for _, row := range data {
		if textCol >= len(row) {
			continue
		}
		if cell := strings.TrimSpace(row[textCol]); cell != "" {
			texts = append(texts, cell)
		}
	}
	return Dataset{Texts: texts, Source: "CSV file"}, nil
}

func readTXTTexts(path string) (Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read txt: %w", err)
	}
	var texts []string
	for _, line := range strings.Split(string(b), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			texts = append(texts, s)
		}
	}
	return Dataset{Texts: texts, Source: "Text file"}, nil
}

// readJSONTexts accepts an array of strings, an array of objects (first
// sufficiently long string field per object, keys visited in sorted order for
// determinism), or a single object (all sufficiently long string fields).
func readJSONTexts(path string) (Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read json: %w", err)
	}
	var data any
	if err := json.Unmarshal(b, &data); err != nil {
		return Dataset{}, fmt.Errorf("unmarshal json: %w", err)
	}

	var texts []string
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			switch it := item.(type) {
			case string:
				texts = append(texts, it)
			case map[string]any:
				if s, ok := firstLongString(it); ok {
					texts = append(texts, s)
				}
			}
		}
	case map[string]any:
		for _, key := range sortedKeys(v) {
			if s, ok := v[key].(string); ok && len(s) > minTextFieldLen {
				texts = append(texts, s)
			}
		}
	}
	return Dataset{Texts: texts, Source: "JSON file"}, nil
}

func firstLongString(obj map[string]any) (string, bool) {
	for _, key := range sortedKeys(obj) {
		if s, ok := obj[key].(string); ok && len(s) > minTextFieldLen {
			return s, true
		}
	}
	return "", false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SampleDataset returns a small built-in review dataset for trying the
// pipeline without an input file.
func SampleDataset() Dataset {
	return Dataset{
		Texts: []string{
			"I absolutely love this product! It's amazing and works perfectly.",
			"This is the worst purchase I've ever made. Completely disappointed.",
			"The product is okay, nothing special but does what it's supposed to do.",
			"Outstanding quality and excellent customer service. Highly recommended!",
			"Terrible experience. The product broke after just one day.",
			"Good value for money. I'm satisfied with my purchase.",
			"Not what I expected. The description was misleading.",
			"Fantastic! Exceeded all my expectations. Will buy again.",
			"Average product. It works but could be better.",
			"Excellent build quality and fast shipping. Very happy!",
		},
		Source: "Sample data",
	}
}
