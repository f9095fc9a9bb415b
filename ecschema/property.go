package ecschema

import "strings"

// PropertyKind is the closed set of property kinds.
type PropertyKind int

// Property kinds.
const (
	Primitive PropertyKind = iota
	Struct
	Navigation
	EnumerationProperty
)

// String returns the metadata name of the property kind.
func (k PropertyKind) String() string {
	switch k {
	case Primitive:
		return "Primitive"
	case Struct:
		return "Struct"
	case Navigation:
		return "Navigation"
	case EnumerationProperty:
		return "Enumeration"
	default:
		return "Unknown"
	}
}

// PrimitiveType is the closed set of primitive value types.
type PrimitiveType int

// Primitive types.
const (
	Binary PrimitiveType = iota
	Boolean
	DateTime
	Double
	Geometry
	Integer
	Long
	Point2d
	Point3d
	String
)

// String returns the metadata name of the primitive type.
func (t PrimitiveType) String() string {
	switch t {
	case Binary:
		return "Binary"
	case Boolean:
		return "Boolean"
	case DateTime:
		return "DateTime"
	case Double:
		return "Double"
	case Geometry:
		return "Geometry"
	case Integer:
		return "Integer"
	case Long:
		return "Long"
	case Point2d:
		return "Point2d"
	case Point3d:
		return "Point3d"
	case String:
		return "String"
	default:
		return "Unknown"
	}
}

// Extended type hints refining a primitive property. Unrecognized hints are
// ignored by the mappers.
const (
	ExtendedTypeBeGuid = "beguid"
	ExtendedTypeJSON   = "json"
	ExtendedTypeID     = "id"
)

// Property belongs to exactly one class. Its name is unique within the
// owning class's effective property set, including inherited names.
type Property struct {
	Class        *Class
	Name         string
	Kind         PropertyKind
	IsArray      bool
	Primitive    PrimitiveType
	ExtendedType string
	Description  string

	// Relationship and Direction are set for navigation properties.
	Relationship *Class
	Direction    Direction

	// Enum is the resolved enumeration class for enumeration properties;
	// nil when the enumeration could not be resolved, in which case the
	// underlying Primitive type applies.
	Enum *Class
}

// HasExtendedType reports whether the property carries the given extended
// type hint. Hints are matched case-insensitively.
func (p *Property) HasExtendedType(name string) bool {
	return strings.EqualFold(p.ExtendedType, name)
}
