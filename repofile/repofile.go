// Package repofile loads a repository snapshot — schemas, classes,
// properties and instances — from a YAML document and drives the export
// handler over it in the fixed traversal order.
package repofile

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ecgraph/ecrdf/ecschema"
)

// Handler receives the ordered traversal callbacks. The exporter satisfies
// it.
type Handler interface {
	DeclareVocabulary() error
	OnSchema(*ecschema.Schema) error
	OnInstance(inst ecschema.Instance) error
}

// Snapshot is a fully resolved repository snapshot.
type Snapshot struct {
	Schemas       []*ecschema.Schema
	Entities      []*ecschema.Entity
	Models        []*ecschema.Model
	Relationships []*ecschema.Relationship
	Aspects       []*ecschema.Aspect
	CodeSpecs     []*ecschema.CodeSpec
}

// Walk drives the handler in the fixed order: vocabulary, schemas, then
// instances grouped entity, model, relationship, aspect, codespec. Each
// callback runs to completion before the next fires.
func (s *Snapshot) Walk(h Handler) error {
	if err := h.DeclareVocabulary(); err != nil {
		return err
	}
	for _, schema := range s.Schemas {
		if err := h.OnSchema(schema); err != nil {
			return err
		}
	}
	for _, e := range s.Entities {
		if err := h.OnInstance(e); err != nil {
			return err
		}
	}
	for _, m := range s.Models {
		if err := h.OnInstance(m); err != nil {
			return err
		}
	}
	for _, r := range s.Relationships {
		if err := h.OnInstance(r); err != nil {
			return err
		}
	}
	for _, a := range s.Aspects {
		if err := h.OnInstance(a); err != nil {
			return err
		}
	}
	for _, c := range s.CodeSpecs {
		if err := h.OnInstance(c); err != nil {
			return err
		}
	}
	return nil
}

// Load reads and resolves a snapshot file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}
	return Parse(data)
}

// Parse resolves a snapshot document: first pass builds the classes, second
// pass resolves base-class, relationship, enumeration and constraint
// references by name.
func Parse(data []byte) (*Snapshot, error) {
	var doc fileSnapshot
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse snapshot file: %w", err)
	}

	r := &resolver{classes: make(map[string]*ecschema.Class)}

	snap := &Snapshot{}
	for _, fs := range doc.Schemas {
		if fs.Alias == "" {
			return nil, fmt.Errorf("schema %q has no alias", fs.Key)
		}
		schema := &ecschema.Schema{Alias: fs.Alias, Key: fs.Key}
		for _, fc := range fs.Classes {
			c, err := buildClass(schema, fc)
			if err != nil {
				return nil, err
			}
			schema.Classes = append(schema.Classes, c)
			r.classes[fs.Alias+":"+c.Name] = c
		}
		snap.Schemas = append(snap.Schemas, schema)
	}

	// Second pass: resolve references now that every class exists.
	for i, fs := range doc.Schemas {
		schema := snap.Schemas[i]
		for j, fc := range fs.Classes {
			if err := r.resolveClass(schema, schema.Classes[j], fc); err != nil {
				return nil, err
			}
		}
	}

	if err := r.buildInstances(snap, doc.Instances); err != nil {
		return nil, err
	}
	return snap, nil
}

type resolver struct {
	classes map[string]*ecschema.Class
}

// lookup resolves a class reference of the form "alias:Name", or a bare
// name within the given schema.
func (r *resolver) lookup(schema *ecschema.Schema, ref string) (*ecschema.Class, error) {
	key := ref
	if !strings.Contains(ref, ":") {
		key = schema.Alias + ":" + ref
	}
	c, ok := r.classes[key]
	if !ok {
		return nil, fmt.Errorf("unknown class reference %q in schema %s", ref, schema.Alias)
	}
	return c, nil
}

func buildClass(schema *ecschema.Schema, fc fileClass) (*ecschema.Class, error) {
	if fc.Name == "" {
		return nil, fmt.Errorf("schema %s contains a class with no name", schema.Alias)
	}
	kind, err := parseClassKind(fc.Kind)
	if err != nil {
		return nil, fmt.Errorf("class %s.%s: %w", schema.Alias, fc.Name, err)
	}
	return &ecschema.Class{
		Schema:                     schema,
		Name:                       fc.Name,
		Kind:                       kind,
		DisplayLabel:               fc.Label,
		Description:                fc.Description,
		IsCustomAttributeContainer: fc.CustomAttributeContainer,
	}, nil
}

func (r *resolver) resolveClass(schema *ecschema.Schema, c *ecschema.Class, fc fileClass) error {
	if fc.Base != "" {
		base, err := r.lookup(schema, fc.Base)
		if err != nil {
			return err
		}
		c.Base = base
	}
	if fc.Source != nil {
		constraint, err := r.resolveConstraint(schema, fc.Source)
		if err != nil {
			return err
		}
		c.Source = constraint
	}
	if fc.Target != nil {
		constraint, err := r.resolveConstraint(schema, fc.Target)
		if err != nil {
			return err
		}
		c.Target = constraint
	}

	for _, fp := range fc.Properties {
		p, err := r.resolveProperty(schema, c, fp)
		if err != nil {
			return err
		}
		c.Properties = append(c.Properties, p)
	}
	return nil
}

func (r *resolver) resolveConstraint(schema *ecschema.Schema, fc *fileConstraint) (*ecschema.Constraint, error) {
	constraint := &ecschema.Constraint{}
	for _, ref := range fc.Classes {
		c, err := r.lookup(schema, ref)
		if err != nil {
			return nil, err
		}
		constraint.Classes = append(constraint.Classes, c)
	}
	return constraint, nil
}

func (r *resolver) resolveProperty(schema *ecschema.Schema, owner *ecschema.Class, fp fileProperty) (*ecschema.Property, error) {
	if fp.Name == "" {
		return nil, fmt.Errorf("class %s.%s contains a property with no name", schema.Alias, owner.Name)
	}
	kind, err := parsePropertyKind(fp.Kind)
	if err != nil {
		return nil, fmt.Errorf("property %s.%s: %w", owner.Name, fp.Name, err)
	}

	p := &ecschema.Property{
		Class:        owner,
		Name:         fp.Name,
		Kind:         kind,
		IsArray:      fp.Array,
		ExtendedType: fp.ExtendedType,
		Description:  fp.Description,
	}

	if kind == ecschema.Primitive || kind == ecschema.EnumerationProperty {
		prim, err := parsePrimitiveType(fp.Type)
		if err != nil {
			return nil, fmt.Errorf("property %s.%s: %w", owner.Name, fp.Name, err)
		}
		p.Primitive = prim
	}

	if kind == ecschema.Navigation {
		if fp.Relationship != "" {
			rel, err := r.lookup(schema, fp.Relationship)
			if err != nil {
				return nil, err
			}
			p.Relationship = rel
		}
		dir, err := parseDirection(fp.Direction)
		if err != nil {
			return nil, fmt.Errorf("property %s.%s: %w", owner.Name, fp.Name, err)
		}
		p.Direction = dir
	}

	if fp.Enum != "" {
		enum, err := r.lookup(schema, fp.Enum)
		if err != nil {
			return nil, err
		}
		p.Enum = enum
	}
	return p, nil
}

func (r *resolver) buildInstances(snap *Snapshot, fi fileInstances) error {
	classOf := func(ref string) (*ecschema.Class, error) {
		c, ok := r.classes[ref]
		if !ok {
			return nil, fmt.Errorf("instance references unknown class %q", ref)
		}
		return c, nil
	}

	for _, fe := range fi.Entities {
		c, err := classOf(fe.Class)
		if err != nil {
			return err
		}
		e := ecschema.NewEntity(c, fe.ID, fe.Values)
		e.ParentID = fe.Parent
		if fe.Code != nil {
			e.Code = ecschema.Code{Spec: fe.Code.Spec, Scope: fe.Code.Scope, Value: fe.Code.Value}
		}
		snap.Entities = append(snap.Entities, e)
	}
	for _, fm := range fi.Models {
		c, err := classOf(fm.Class)
		if err != nil {
			return err
		}
		m := ecschema.NewModel(c, fm.ID, fm.Values)
		m.ModeledElementID = fm.ModeledElement
		snap.Models = append(snap.Models, m)
	}
	for _, fr := range fi.Relationships {
		c, err := classOf(fr.Class)
		if err != nil {
			return err
		}
		snap.Relationships = append(snap.Relationships, ecschema.NewRelationship(c, fr.ID, fr.Source, fr.Target))
	}
	for _, fa := range fi.Aspects {
		c, err := classOf(fa.Class)
		if err != nil {
			return err
		}
		snap.Aspects = append(snap.Aspects, ecschema.NewAspect(c, fa.ID, fa.Owner, fa.Values))
	}
	for _, fc := range fi.CodeSpecs {
		c, err := classOf(fc.Class)
		if err != nil {
			return err
		}
		snap.CodeSpecs = append(snap.CodeSpecs, ecschema.NewCodeSpec(c, fc.ID, fc.Name))
	}
	return nil
}
