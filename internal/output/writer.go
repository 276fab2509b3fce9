package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// ResultWriter is the interface for writing classification results.
// Different implementations handle different output formats (text, JSON).
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r worker.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and writes any pending output.
	Close() error
}

// TextWriter writes one tab-separated line per result.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteResult writes a result line.
func (tw *TextWriter) WriteResult(r worker.Result) error {
	_, err := fmt.Fprintln(tw.w, FormatClassification(r))
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONClassification `json:"results"`
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []*JSONClassification
	single  bool // If true, write each result immediately as a JSON line
}

// NewJSONWriter creates a JSON writer that batches results into one
// document written on Close.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONLinesWriter creates a JSON writer that writes each result
// immediately on its own line.
func NewJSONLinesWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteResult buffers a result (or writes it immediately in single mode).
func (jw *JSONWriter) WriteResult(r worker.Result) error {
	jc := ClassificationToJSON(r)
	if jw.single {
		return json.NewEncoder(jw.w).Encode(jc)
	}
	jw.results = append(jw.results, jc)
	return nil
}

// Flush writes all buffered results as a JSON document.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.results) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	jw.results = jw.results[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// WriteAll writes every result and closes the writer.
func WriteAll(rw ResultWriter, results []worker.Result) error {
	for _, r := range results {
		if err := rw.WriteResult(r); err != nil {
			return err
		}
	}
	return rw.Close()
}
