package mapper

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ecgraph/ecrdf/ecschema"
	"github.com/ecgraph/ecrdf/metric"
	"github.com/ecgraph/ecrdf/turtle"
	"github.com/ecgraph/ecrdf/vocabulary"
)

// InstanceMapper converts one typed instance into a type triple plus
// property-value triples. A failure formatting one value never aborts the
// rest of the instance's properties; only sink I/O errors propagate.
type InstanceMapper struct {
	w       *turtle.Writer
	log     *slog.Logger
	metrics *metric.Metrics
}

// NewInstanceMapper creates an instance mapper over the sink.
func NewInstanceMapper(w *turtle.Writer, opts ...Option) *InstanceMapper {
	o := buildOptions(opts)
	return &InstanceMapper{w: w, log: o.logger, metrics: o.metrics}
}

// MapInstance emits the rdf:type triple, the built-in structural triples of
// the instance kind, then one value triple per present property, walking
// the class chain most-derived-first so inherited properties are evaluated
// against this instance's own values.
func (m *InstanceMapper) MapInstance(inst ecschema.Instance) error {
	c := inst.InstanceClass()
	if c == nil {
		return fmt.Errorf("%w: %s instance has no class", ErrUnresolvedReference, inst.InstanceKind())
	}

	subject, err := subjectName(inst)
	if err != nil {
		return err
	}

	classRdfName := vocabulary.ClassName(c.Schema.Alias, c.Name)
	if err := m.emit(subject, vocabulary.RDFType, classRdfName); err != nil {
		return err
	}

	if err := m.mapBuiltins(subject, inst); err != nil {
		return err
	}

	for _, ancestor := range c.Ancestry() {
		ancestorRdfName := vocabulary.ClassName(ancestor.Schema.Alias, ancestor.Name)
		for _, p := range ancestor.Properties {
			v, ok := inst.Value(p.Name)
			if !ok {
				continue
			}
			predicate := vocabulary.PropertyName(ancestorRdfName, p.Name)
			if err := m.mapValue(subject, predicate, p, v); err != nil {
				return err
			}
		}
	}

	if m.metrics != nil {
		m.metrics.InstancesMapped.WithLabelValues(inst.InstanceKind()).Inc()
	}
	return nil
}

// subjectName formats the instance's RDF name by kind.
func subjectName(inst ecschema.Instance) (string, error) {
	switch v := inst.(type) {
	case *ecschema.Entity:
		return vocabulary.EntityName(v.ID), nil
	case *ecschema.Model:
		return vocabulary.ModelName(v.ID), nil
	case *ecschema.Relationship:
		return vocabulary.RelationshipName(v.ID), nil
	case *ecschema.Aspect:
		return vocabulary.AspectName(v.ID), nil
	case *ecschema.CodeSpec:
		return vocabulary.CodeSpecName(v.ID), nil
	default:
		return "", fmt.Errorf("%w: unknown instance kind %q", ErrUnresolvedReference, inst.InstanceKind())
	}
}

// mapBuiltins emits the structural triples each instance kind carries
// outside its class properties. Zero identifiers and empty codes emit
// nothing.
func (m *InstanceMapper) mapBuiltins(subject string, inst ecschema.Instance) error {
	switch v := inst.(type) {
	case *ecschema.Entity:
		if v.ParentID > 0 {
			if err := m.emit(subject, vocabulary.ParentPredicate, vocabulary.EntityName(v.ParentID)); err != nil {
				return err
			}
		}
		if !v.Code.Empty() {
			if err := m.emit(subject, vocabulary.CodeValuePredicate, turtle.Quote(v.Code.Value)); err != nil {
				return err
			}
			if v.Code.Spec > 0 {
				if err := m.emit(subject, vocabulary.CodeSpecPredicate, vocabulary.CodeSpecName(v.Code.Spec)); err != nil {
					return err
				}
			}
			if v.Code.Scope > 0 {
				if err := m.emit(subject, vocabulary.CodeScopePredicate, vocabulary.EntityName(v.Code.Scope)); err != nil {
					return err
				}
			}
		}
	case *ecschema.Model:
		if v.ModeledElementID > 0 {
			return m.emit(subject, vocabulary.ModeledElementPredicate, vocabulary.EntityName(v.ModeledElementID))
		}
	case *ecschema.Relationship:
		if v.SourceID > 0 {
			if err := m.emit(subject, vocabulary.SourcePredicate, vocabulary.EntityName(v.SourceID)); err != nil {
				return err
			}
		}
		if v.TargetID > 0 {
			return m.emit(subject, vocabulary.TargetPredicate, vocabulary.EntityName(v.TargetID))
		}
	case *ecschema.Aspect:
		if v.OwnerID > 0 {
			return m.emit(subject, vocabulary.OwnerPredicate, vocabulary.EntityName(v.OwnerID))
		}
	case *ecschema.CodeSpec:
		if v.Name != "" {
			return m.emit(subject, vocabulary.Label, turtle.Quote(v.Name))
		}
	}
	return nil
}

// mapValue dispatches one present property value. Recoverable problems
// (unparseable guids, invalid identifiers, unexpected value types) skip the
// triple; struct and array values are not expanded at the instance level.
func (m *InstanceMapper) mapValue(subject, predicate string, p *ecschema.Property, v any) error {
	if p.IsArray || p.Kind == ecschema.Struct {
		return nil
	}

	if p.Kind == ecschema.Navigation {
		id, ok := asID(v)
		if !ok || id <= 0 {
			m.skip(subject, predicate, "invalid_navigation_id")
			return nil
		}
		// Properties named with the Model suffix reference model
		// instances; everything else references entities. The naming
		// convention is load-bearing for downstream consumers.
		object := vocabulary.EntityName(id)
		if strings.HasSuffix(p.Name, "Model") {
			object = vocabulary.ModelName(id)
		}
		return m.emit(subject, predicate, object)
	}

	// Enumeration-of-primitive values serialize as their underlying
	// primitive type.
	switch p.Primitive {
	case ecschema.Binary:
		if !p.HasExtendedType(ecschema.ExtendedTypeBeGuid) {
			// Plain binary payloads are referenced, not serialized.
			return nil
		}
		s, ok := v.(string)
		if !ok {
			m.skip(subject, predicate, "invalid_guid")
			return nil
		}
		if _, err := uuid.Parse(s); err != nil {
			m.skip(subject, predicate, "invalid_guid")
			return nil
		}
		return m.emit(subject, predicate, turtle.Quote(s))

	case ecschema.Point2d, ecschema.Point3d:
		literal, err := turtle.JSONLiteral(v)
		if err != nil {
			m.skip(subject, predicate, "invalid_point")
			return nil
		}
		return m.emit(subject, predicate, literal)

	case ecschema.String:
		if p.HasExtendedType(ecschema.ExtendedTypeJSON) {
			return m.mapJSONValue(subject, predicate, v)
		}
		s, ok := v.(string)
		if !ok {
			m.skip(subject, predicate, "invalid_string")
			return nil
		}
		if s == "" {
			return nil
		}
		return m.emit(subject, predicate, turtle.Quote(s))

	case ecschema.Long:
		if p.HasExtendedType(ecschema.ExtendedTypeID) {
			id, ok := asID(v)
			if !ok || id <= 0 {
				m.skip(subject, predicate, "invalid_id")
				return nil
			}
			return m.emit(subject, predicate, vocabulary.EntityName(id))
		}
		return m.mapToken(subject, predicate, v)

	case ecschema.Integer, ecschema.Boolean, ecschema.Double,
		ecschema.DateTime, ecschema.Geometry:
		return m.mapToken(subject, predicate, v)

	default:
		// Schema mapping already failed fatally for unknown primitives;
		// an instance value reaching here is skipped defensively.
		m.skip(subject, predicate, "unknown_primitive")
		return nil
	}
}

// mapJSONValue emits an embedded-JSON string value with the two-layer
// encoding, only when the underlying structure is non-empty.
func (m *InstanceMapper) mapJSONValue(subject, predicate string, v any) error {
	switch val := v.(type) {
	case string:
		if val == "" {
			return nil
		}
	case map[string]any:
		if len(val) == 0 {
			return nil
		}
	case []any:
		if len(val) == 0 {
			return nil
		}
	}
	literal, err := turtle.JSONLiteral(v)
	if err != nil {
		m.skip(subject, predicate, "invalid_json")
		return nil
	}
	return m.emit(subject, predicate, literal)
}

// mapToken emits numeric, boolean, datetime and geometry values as raw
// unquoted tokens; strings pass through as pre-formatted tokens supplied by
// the caller.
func (m *InstanceMapper) mapToken(subject, predicate string, v any) error {
	token, ok := formatToken(v)
	if !ok || token == "" {
		m.skip(subject, predicate, "invalid_token")
		return nil
	}
	return m.emit(subject, predicate, token)
}

// formatToken renders a raw literal token for the pass-through primitive
// kinds.
func formatToken(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case bool:
		return strconv.FormatBool(val), true
	case int:
		return strconv.FormatInt(int64(val), 10), true
	case int32:
		return strconv.FormatInt(int64(val), 10), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case uint64:
		return strconv.FormatUint(val, 10), true
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), true
	default:
		return "", false
	}
}

// asID coerces a foreign-identifier value to int64.
func asID(v any) (int64, bool) {
	switch val := v.(type) {
	case int64:
		return val, true
	case int:
		return int64(val), true
	case int32:
		return int64(val), true
	case uint64:
		return int64(val), true
	case float64:
		// YAML decodes untyped numbers as float64 in nested documents;
		// accept only integral values.
		if val != float64(int64(val)) {
			return 0, false
		}
		return int64(val), true
	default:
		return 0, false
	}
}

func (m *InstanceMapper) emit(s, p, o string) error {
	if err := m.w.WriteTriple(s, p, o); err != nil {
		return err
	}
	if m.metrics != nil {
		m.metrics.TriplesWritten.WithLabelValues("instance").Inc()
	}
	return nil
}

// skip records a recoverable per-value drop. Absence of the triple is the
// representation; nothing aborts.
func (m *InstanceMapper) skip(subject, predicate, reason string) {
	m.log.Warn("skipping property value",
		"subject", subject,
		"predicate", predicate,
		"reason", reason)
	if m.metrics != nil {
		m.metrics.ValuesSkipped.WithLabelValues(reason).Inc()
	}
}
