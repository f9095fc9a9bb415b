package vocabulary

import "strconv"

// ClassName formats the stable RDF name of a class: alias:ClassName.
// Collision freedom is guaranteed by the uniqueness of schema aliases and
// in-schema class names in the source metadata; it is not re-validated
// here. Empty inputs are a caller contract violation.
func ClassName(alias, class string) string {
	if alias == "" || class == "" {
		panic("vocabulary: class name requires a schema alias and a class name")
	}
	return alias + ":" + class
}

// PropertyName formats the stable RDF name of a property declared on the
// class with the given RDF name. The hyphen is the sole separator and class
// names never contain it, so the result is collision-free.
func PropertyName(classRdfName, property string) string {
	if classRdfName == "" || property == "" {
		panic("vocabulary: property name requires a class RDF name and a property name")
	}
	return classRdfName + "-" + property
}

// Instance names carry a single-letter kind tag so that identifiers drawn
// from the same underlying space never collide within a prefix namespace.

// EntityName formats the RDF name of an entity instance.
func EntityName(id int64) string {
	return PrefixElement + ":e" + strconv.FormatInt(id, 10)
}

// AspectName formats the RDF name of an aspect instance.
func AspectName(id int64) string {
	return PrefixElement + ":a" + strconv.FormatInt(id, 10)
}

// CodeSpecName formats the RDF name of a code spec instance.
func CodeSpecName(id int64) string {
	return PrefixElement + ":c" + strconv.FormatInt(id, 10)
}

// ModelName formats the RDF name of a model instance. Models share the
// resource namespace with relationships.
func ModelName(id int64) string {
	return PrefixResource + ":m" + strconv.FormatInt(id, 10)
}

// RelationshipName formats the RDF name of a relationship instance.
func RelationshipName(id int64) string {
	return PrefixResource + ":r" + strconv.FormatInt(id, 10)
}
