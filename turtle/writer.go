// Package turtle provides the append-only, line-oriented Turtle sink that
// every mapping component writes through. It knows nothing about the
// vocabulary; it only produces well-formed statement and @prefix lines in
// call order, one line per call, never rewriting earlier output.
package turtle

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Writer appends Turtle lines to an underlying stream. It performs no
// buffering beyond the line being written and no backward seeking, so
// output is valid Turtle up to the last completed line even if the run is
// interrupted.
type Writer struct {
	w io.Writer
	f *os.File
}

// NewWriter wraps an io.Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// NewFileWriter creates or truncates the artifact at path. A prior run's
// content is never appended to.
func NewFileWriter(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("open turtle output: %w", err)
	}
	return &Writer{w: f, f: f}, nil
}

// WritePrefix appends one @prefix declaration line.
func (w *Writer) WritePrefix(prefix, iri string) error {
	if _, err := fmt.Fprintf(w.w, "@prefix %s: <%s> .\n", prefix, iri); err != nil {
		return fmt.Errorf("write prefix %s: %w", prefix, err)
	}
	return nil
}

// WriteTriple appends one statement line. Subject, predicate and object are
// already-formatted RDF names or literals.
func (w *Writer) WriteTriple(subject, predicate, object string) error {
	if _, err := fmt.Fprintf(w.w, "%s %s %s .\n", subject, predicate, object); err != nil {
		return fmt.Errorf("write triple %s %s: %w", subject, predicate, err)
	}
	return nil
}

// Close closes the underlying file when the writer is file-backed.
func (w *Writer) Close() error {
	if w.f == nil {
		return nil
	}
	return w.f.Close()
}

// Quote wraps s in double quotes with JSON-compatible escaping, so any
// emitted literal round-trips through a JSON decoder.
func Quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshalling a string cannot fail; keep the literal well-formed
		// regardless.
		return `""`
	}
	return string(b)
}

// JSONLiteral encodes v as JSON and wraps the encoding in a quoted literal.
// The quote layer is applied twice in total — once building the inner JSON
// encoding, once quoting the whole literal — so a consumer that JSON-decodes
// the literal once gets a string that itself parses as the original value.
// Used for point and embedded-JSON values.
func JSONLiteral(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode json literal: %w", err)
	}
	return Quote(string(b)), nil
}

// IRI wraps a full IRI in angle brackets.
func IRI(s string) string {
	return "<" + s + ">"
}
