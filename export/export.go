// Package export ties the vocabulary, the mappers and the Turtle sink into
// the handler the repository traversal layer drives: declare the upper
// vocabulary once, then one callback per discovered schema and instance.
package export

import (
	"log/slog"

	"github.com/ecgraph/ecrdf/ecschema"
	"github.com/ecgraph/ecrdf/mapper"
	"github.com/ecgraph/ecrdf/turtle"
	"github.com/ecgraph/ecrdf/vocabulary"
)

// Exporter projects a repository's metadata and instances into one linear,
// append-only Turtle stream. It is single-threaded by contract: the caller
// serializes all callbacks.
type Exporter struct {
	w         *turtle.Writer
	schemas   *mapper.SchemaMapper
	instances *mapper.InstanceMapper
	log       *slog.Logger
}

// New creates an exporter over the sink. Options are shared with the
// underlying mappers.
func New(w *turtle.Writer, opts ...mapper.Option) *Exporter {
	return &Exporter{
		w:         w,
		schemas:   mapper.NewSchemaMapper(w, opts...),
		instances: mapper.NewInstanceMapper(w, opts...),
		log:       slog.Default(),
	}
}

// SetLogger overrides the exporter's own logger (the mappers take theirs
// from the options).
func (e *Exporter) SetLogger(l *slog.Logger) { e.log = l }

// DeclareVocabulary emits the fixed upper vocabulary. Call exactly once,
// before any schema or instance callback.
func (e *Exporter) DeclareVocabulary() error {
	return vocabulary.Declare(e.w)
}

// OnSchema maps one discovered schema. Schema-level errors are fatal: the
// output vocabulary would be self-inconsistent without the failed class.
func (e *Exporter) OnSchema(s *ecschema.Schema) error {
	return e.schemas.MapSchema(s)
}

// OnInstance maps one discovered instance. Recoverable reference failures
// are logged and absorbed; anything else stops the run.
func (e *Exporter) OnInstance(inst ecschema.Instance) error {
	err := e.instances.MapInstance(inst)
	if err == nil {
		return nil
	}
	if mapper.IsRecoverable(err) {
		e.log.Warn("skipping instance", "kind", inst.InstanceKind(), "error", err)
		return nil
	}
	return err
}
