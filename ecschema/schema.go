// Package ecschema defines the read-only class/property metadata model that
// the mapping pipeline projects into RDF. All values are constructed and
// owned by the repository layer that feeds the exporter; nothing in this
// module mutates them.
package ecschema

// Schema is a namespace of classes and enumerations. Alias is the short,
// stable prefix used for RDF names; Key is the full versioned schema name.
type Schema struct {
	Alias   string
	Key     string
	Classes []*Class
}

// ClassKind is the closed set of class kinds the mapper recognizes.
type ClassKind int

// Class kinds.
const (
	EntityClass ClassKind = iota
	RelationshipClass
	CustomAttributeClass
	Mixin
	Enumeration
)

// String returns the metadata name of the class kind.
func (k ClassKind) String() string {
	switch k {
	case EntityClass:
		return "EntityClass"
	case RelationshipClass:
		return "RelationshipClass"
	case CustomAttributeClass:
		return "CustomAttributeClass"
	case Mixin:
		return "Mixin"
	case Enumeration:
		return "Enumeration"
	default:
		return "Unknown"
	}
}

// Direction indicates which end of a relationship a navigation property
// points toward.
type Direction int

// Navigation directions.
const (
	Forward Direction = iota
	Backward
)

// String returns the metadata name of the direction.
func (d Direction) String() string {
	if d == Backward {
		return "Backward"
	}
	return "Forward"
}

// Constraint is one end of a relationship class. Classes is ordered; the
// first entry is the tie-break default when a navigation property has to
// pick a single range type.
type Constraint struct {
	Classes []*Class
}

// Class is a named type within a schema. Base is nil for root classes;
// inheritance is single only. Source and Target are set only on
// relationship classes.
type Class struct {
	Schema       *Schema
	Name         string
	Kind         ClassKind
	Base         *Class
	DisplayLabel string
	Description  string
	Properties   []*Property

	// IsCustomAttributeContainer marks a relationship class (or one of its
	// ancestors) as link-table backed. Relationship hierarchies whose root
	// lacks the marker are navigation-only and never emitted directly.
	IsCustomAttributeContainer bool

	Source *Constraint
	Target *Constraint
}

// RootClass walks the single-inheritance chain to its topmost class.
func (c *Class) RootClass() *Class {
	root := c
	for root.Base != nil {
		root = root.Base
	}
	return root
}

// IsNavigationRelationship reports whether c is a relationship class whose
// instances exist only as foreign-key style properties on entities. The
// marker is checked on every class in the chain, so a derived relationship
// inherits link-table identity from any ancestor.
func (c *Class) IsNavigationRelationship() bool {
	if c.Kind != RelationshipClass {
		return false
	}
	for cur := c; cur != nil; cur = cur.Base {
		if cur.IsCustomAttributeContainer {
			return false
		}
	}
	return true
}

// Ancestry returns the inheritance chain most-derived first, ending at the
// root. The instance mapper walks this to evaluate inherited properties
// against each instance's own values.
func (c *Class) Ancestry() []*Class {
	var chain []*Class
	for cur := c; cur != nil; cur = cur.Base {
		chain = append(chain, cur)
	}
	return chain
}
