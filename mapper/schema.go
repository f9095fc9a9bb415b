// Package mapper converts class/property metadata graphs and typed instance
// records into vocabulary and value triples, writing them through the
// append-only Turtle sink.
package mapper

import (
	"fmt"
	"log/slog"

	"github.com/ecgraph/ecrdf/ecschema"
	"github.com/ecgraph/ecrdf/metric"
	"github.com/ecgraph/ecrdf/turtle"
	"github.com/ecgraph/ecrdf/vocabulary"
)

// SchemaMapper converts one schema's class/property graph into vocabulary
// triples. Single-threaded; the traversal layer invokes MapSchema once per
// discovered schema.
type SchemaMapper struct {
	w          *turtle.Writer
	log        *slog.Logger
	metrics    *metric.Metrics
	convention RelationshipConvention

	// visited is allocated only with WithDedupe; when nil the mapper relies
	// on the traversal's one-call-per-class guarantee.
	visited map[string]bool
}

// NewSchemaMapper creates a schema mapper over the sink.
func NewSchemaMapper(w *turtle.Writer, opts ...Option) *SchemaMapper {
	o := buildOptions(opts)
	m := &SchemaMapper{
		w:          w,
		log:        o.logger,
		metrics:    o.metrics,
		convention: o.convention,
	}
	if o.dedupe {
		m.visited = make(map[string]bool)
	}
	return m
}

// MapSchema emits the schema's namespace prefix followed by every class and
// enumeration it owns.
func (m *SchemaMapper) MapSchema(s *ecschema.Schema) error {
	if err := m.w.WritePrefix(s.Alias, vocabulary.SchemaNamespace(s.Alias)); err != nil {
		return err
	}
	for _, c := range s.Classes {
		if err := m.mapClass(c); err != nil {
			return err
		}
	}
	if m.metrics != nil {
		m.metrics.SchemasMapped.Inc()
	}
	return nil
}

// mapClass emits one class's place in the upper vocabulary plus its own
// property typing. Navigation relationships surface only through navigation
// properties and are skipped entirely.
func (m *SchemaMapper) mapClass(c *ecschema.Class) error {
	if c.IsNavigationRelationship() {
		m.log.Debug("skipping navigation relationship class",
			"schema", c.Schema.Alias,
			"class", c.Name)
		return nil
	}

	name := vocabulary.ClassName(c.Schema.Alias, c.Name)
	if m.visited != nil {
		if m.visited[name] {
			return nil
		}
		m.visited[name] = true
	}

	parent, err := m.superType(c)
	if err != nil {
		return err
	}
	if err := m.emit("schema", name, vocabulary.SubClassOf, parent); err != nil {
		return err
	}

	label := c.DisplayLabel
	if label == "" {
		label = name
	}
	if err := m.emit("schema", name, vocabulary.Label, turtle.Quote(label)); err != nil {
		return err
	}
	if c.Description != "" {
		if err := m.emit("schema", name, vocabulary.Comment, turtle.Quote(c.Description)); err != nil {
			return err
		}
	}

	// Inherited properties are mapped once, on their declaring class.
	for _, p := range c.Properties {
		if err := m.mapProperty(name, p); err != nil {
			return err
		}
	}

	if m.metrics != nil {
		m.metrics.ClassesMapped.Inc()
	}
	return nil
}

// superType resolves the class's supertype: the declared base, or the
// upper-vocabulary default for its kind.
func (m *SchemaMapper) superType(c *ecschema.Class) (string, error) {
	if c.Base != nil {
		return vocabulary.ClassName(c.Base.Schema.Alias, c.Base.Name), nil
	}
	switch c.Kind {
	case ecschema.EntityClass:
		return vocabulary.EntityClassTerm, nil
	case ecschema.CustomAttributeClass:
		return vocabulary.CustomAttributeClassTerm, nil
	case ecschema.Mixin:
		return vocabulary.MixinTerm, nil
	case ecschema.Enumeration:
		return vocabulary.EnumerationTerm, nil
	case ecschema.RelationshipClass:
		if m.convention == ConventionSplit {
			if c.IsCustomAttributeContainer {
				return vocabulary.LinkTableRelationshipClassTerm, nil
			}
			return vocabulary.NavigationRelationshipClassTerm, nil
		}
		return vocabulary.RelationshipClassTerm, nil
	default:
		return "", fmt.Errorf("%w: class %s.%s has kind %d",
			ErrUnsupportedClassKind, c.Schema.Alias, c.Name, int(c.Kind))
	}
}

// mapProperty emits the vocabulary triples typing one declared property:
// its supertype term, domain, range (when one applies), label and comment.
func (m *SchemaMapper) mapProperty(classRdfName string, p *ecschema.Property) error {
	name := vocabulary.PropertyName(classRdfName, p.Name)
	if m.visited != nil {
		if m.visited[name] {
			return nil
		}
		m.visited[name] = true
	}

	term, rng, err := m.propertyTyping(p)
	if err != nil {
		return err
	}

	if err := m.emit("schema", name, vocabulary.SubClassOf, term); err != nil {
		return err
	}
	if err := m.emit("schema", name, vocabulary.Domain, classRdfName); err != nil {
		return err
	}
	if rng != "" {
		if err := m.emit("schema", name, vocabulary.Range, rng); err != nil {
			return err
		}
	}
	if err := m.emit("schema", name, vocabulary.Label, turtle.Quote(classRdfName+"."+p.Name)); err != nil {
		return err
	}
	if p.Description != "" {
		if err := m.emit("schema", name, vocabulary.Comment, turtle.Quote(p.Description)); err != nil {
			return err
		}
	}
	return nil
}

// propertyTyping dispatches on the property's shape and kind to its
// upper-vocabulary term and range. An empty range means no range triple is
// emitted (opaque structs, unresolvable navigation targets).
func (m *SchemaMapper) propertyTyping(p *ecschema.Property) (term, rng string, err error) {
	if p.IsArray {
		if p.Kind == ecschema.Struct {
			return vocabulary.StructArrayPropertyTerm, vocabulary.OrderedListTerm, nil
		}
		return vocabulary.PrimitiveArrayPropertyTerm, vocabulary.OrderedListTerm, nil
	}

	switch p.Kind {
	case ecschema.EnumerationProperty:
		if p.Enum != nil {
			return vocabulary.PrimitivePropertyTerm,
				vocabulary.ClassName(p.Enum.Schema.Alias, p.Enum.Name), nil
		}
		// No resolvable enumeration type: fall through to the underlying
		// primitive.
		rng, err = primitiveRange(p)
		return vocabulary.PrimitivePropertyTerm, rng, err

	case ecschema.Navigation:
		return vocabulary.NavigationPropertyTerm, m.navigationRange(p), nil

	case ecschema.Struct:
		return vocabulary.StructPropertyTerm, "", nil

	case ecschema.Primitive:
		rng, err = primitiveRange(p)
		return vocabulary.PrimitivePropertyTerm, rng, err

	default:
		return "", "", fmt.Errorf("%w: property %s.%s has kind %d",
			ErrUnsupportedClassKind, p.Class.Name, p.Name, int(p.Kind))
	}
}

// navigationRange resolves a navigation property's range by following its
// relationship class and constraint direction: forward resolves against the
// target constraint, backward against the source. The first listed
// constraint class is a deliberate tie-break; multi-class constraints are
// not modeled with a union type. An unresolvable relationship drops the
// range triple only.
func (m *SchemaMapper) navigationRange(p *ecschema.Property) string {
	if p.Relationship == nil {
		m.log.Warn("navigation property has no relationship class",
			"class", p.Class.Name,
			"property", p.Name)
		m.countSkip("unresolved_relationship")
		return ""
	}

	constraint := p.Relationship.Target
	if p.Direction == ecschema.Backward {
		constraint = p.Relationship.Source
	}
	if constraint == nil || len(constraint.Classes) == 0 {
		return vocabulary.EntityClassTerm
	}
	first := constraint.Classes[0]
	return vocabulary.ClassName(first.Schema.Alias, first.Name)
}

// primitiveRange maps a primitive type and its extended-type hint to the
// range term per the fixed table. Extended hints are case-insensitive and
// unrecognized hints fall back to the base primitive range.
func primitiveRange(p *ecschema.Property) (string, error) {
	switch p.Primitive {
	case ecschema.Binary:
		if p.HasExtendedType(ecschema.ExtendedTypeBeGuid) {
			return vocabulary.GuidStringTerm, nil
		}
		return vocabulary.XSDBase64Binary, nil
	case ecschema.Boolean:
		return vocabulary.XSDBoolean, nil
	case ecschema.DateTime:
		return vocabulary.XSDDateTime, nil
	case ecschema.Double:
		return vocabulary.XSDDouble, nil
	case ecschema.Geometry:
		return vocabulary.GeometryStreamTerm, nil
	case ecschema.Integer:
		return vocabulary.XSDInteger, nil
	case ecschema.Long:
		if p.HasExtendedType(ecschema.ExtendedTypeID) {
			return vocabulary.IdStringTerm, nil
		}
		return vocabulary.XSDLong, nil
	case ecschema.Point2d:
		return vocabulary.Point2dTerm, nil
	case ecschema.Point3d:
		return vocabulary.Point3dTerm, nil
	case ecschema.String:
		if p.HasExtendedType(ecschema.ExtendedTypeJSON) {
			return vocabulary.JsonStringTerm, nil
		}
		return vocabulary.XSDString, nil
	default:
		return "", fmt.Errorf("%w: property %s.%s has primitive type %d",
			ErrUnsupportedPrimitiveType, p.Class.Name, p.Name, int(p.Primitive))
	}
}

func (m *SchemaMapper) emit(component, s, p, o string) error {
	if err := m.w.WriteTriple(s, p, o); err != nil {
		return err
	}
	if m.metrics != nil {
		m.metrics.TriplesWritten.WithLabelValues(component).Inc()
	}
	return nil
}

func (m *SchemaMapper) countSkip(reason string) {
	if m.metrics != nil {
		m.metrics.ValuesSkipped.WithLabelValues(reason).Inc()
	}
}
