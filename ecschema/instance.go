package ecschema

// Instance is one runtime record of a class. The mapper reads each value by
// property name; a missing or nil value means the property is absent and no
// triple is emitted for it.
type Instance interface {
	// InstanceClass returns the most-derived class of the record.
	InstanceClass() *Class

	// InstanceKind names the record kind: entity, model, relationship,
	// aspect or codespec.
	InstanceKind() string

	// Value returns the raw value for a property, reporting absence.
	Value(property string) (any, bool)
}

// Code identifies an entity's human-meaningful name. An empty Value means
// "no code" and suppresses all code triples.
type Code struct {
	Spec  int64
	Scope int64
	Value string
}

// Empty reports whether the code carries no value.
func (c Code) Empty() bool { return c.Value == "" }

// record implements the shared value lookup for all instance kinds.
type record struct {
	Class  *Class
	Values map[string]any
}

// InstanceClass returns the most-derived class of the record.
func (r *record) InstanceClass() *Class { return r.Class }

// Value returns the raw value for a property, reporting absence. A nil
// stored value counts as absent.
func (r *record) Value(property string) (any, bool) {
	v, ok := r.Values[property]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Entity is an identified record with an optional parent and code.
type Entity struct {
	record
	ID       int64
	ParentID int64
	Code     Code
}

// NewEntity constructs an entity instance of class c with the given values.
func NewEntity(c *Class, id int64, values map[string]any) *Entity {
	return &Entity{record: record{Class: c, Values: values}, ID: id}
}

// InstanceKind returns "entity".
func (e *Entity) InstanceKind() string { return "entity" }

// Model owns a sub-tree of entities rooted at its modeled element.
type Model struct {
	record
	ID               int64
	ModeledElementID int64
}

// NewModel constructs a model instance of class c with the given values.
func NewModel(c *Class, id int64, values map[string]any) *Model {
	return &Model{record: record{Class: c, Values: values}, ID: id}
}

// InstanceKind returns "model".
func (m *Model) InstanceKind() string { return "model" }

// Relationship links a source entity to a target entity with its own
// link-table identity.
type Relationship struct {
	record
	ID       int64
	SourceID int64
	TargetID int64
}

// NewRelationship constructs a relationship instance of class c.
func NewRelationship(c *Class, id, source, target int64) *Relationship {
	return &Relationship{record: record{Class: c}, ID: id, SourceID: source, TargetID: target}
}

// InstanceKind returns "relationship".
func (r *Relationship) InstanceKind() string { return "relationship" }

// Aspect is owned by exactly one entity.
type Aspect struct {
	record
	ID      int64
	OwnerID int64
}

// NewAspect constructs an aspect instance of class c owned by owner.
func NewAspect(c *Class, id, owner int64, values map[string]any) *Aspect {
	return &Aspect{record: record{Class: c, Values: values}, ID: id, OwnerID: owner}
}

// InstanceKind returns "aspect".
func (a *Aspect) InstanceKind() string { return "aspect" }

// CodeSpec is a named uniqueness rule for entity codes.
type CodeSpec struct {
	record
	ID   int64
	Name string
}

// NewCodeSpec constructs a code spec instance of class c.
func NewCodeSpec(c *Class, id int64, name string) *CodeSpec {
	return &CodeSpec{record: record{Class: c}, ID: id, Name: name}
}

// InstanceKind returns "codespec".
func (s *CodeSpec) InstanceKind() string { return "codespec" }
