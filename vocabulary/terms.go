package vocabulary

// Extension vocabulary class terms. Every mapped class ultimately
// subclasses one of these.
const (
	// ClassTerm is the abstract root of all mapped class terms.
	ClassTerm = "ec:Class"

	// EntityClassTerm is the default supertype for concrete entity classes.
	EntityClassTerm = "ec:EntityClass"

	// RelationshipClassTerm is the single-convention default supertype for
	// relationship classes.
	RelationshipClassTerm = "ec:RelationshipClass"

	// LinkTableRelationshipClassTerm is the split-convention supertype for
	// relationship classes with independent instance identity.
	LinkTableRelationshipClassTerm = "ec:LinkTableRelationshipClass"

	// NavigationRelationshipClassTerm is the split-convention supertype for
	// relationship classes represented purely through navigation
	// properties.
	NavigationRelationshipClassTerm = "ec:NavigationRelationshipClass"

	// CustomAttributeClassTerm is the default supertype for custom
	// attribute classes.
	CustomAttributeClassTerm = "ec:CustomAttributeClass"

	// MixinTerm is the default supertype for mixins.
	MixinTerm = "ec:Mixin"

	// EnumerationTerm is the default supertype for enumerations.
	EnumerationTerm = "ec:Enumeration"
)

// Extension vocabulary property terms.
const (
	// PropertyTerm is the abstract root of all mapped property terms.
	PropertyTerm = "ec:Property"

	PrimitivePropertyTerm      = "ec:PrimitiveProperty"
	PrimitiveArrayPropertyTerm = "ec:PrimitiveArrayProperty"
	StructPropertyTerm         = "ec:StructProperty"
	StructArrayPropertyTerm    = "ec:StructArrayProperty"
	NavigationPropertyTerm     = "ec:NavigationProperty"
)

// Refined datatype terms for extended primitive types.
const (
	// GuidStringTerm types binary properties carrying textual GUIDs.
	GuidStringTerm = "ec:GuidString"

	// JsonStringTerm types string properties carrying embedded JSON.
	JsonStringTerm = "ec:JsonString"

	// IdStringTerm types long properties carrying foreign identifiers.
	IdStringTerm = "ec:IdString"

	// Point2dTerm and Point3dTerm type point values, emitted as quoted
	// JSON-encoded literals.
	Point2dTerm = "ec:Point2d"
	Point3dTerm = "ec:Point3d"

	// GeometryStreamTerm types opaque geometry payloads, referenced but
	// never decoded.
	GeometryStreamTerm = "ec:GeometryStream"

	// OrderedListTerm is the generic range for array-shaped properties.
	OrderedListTerm = "ec:OrderedList"
)

// Built-in instance predicates covering the structural fields every
// instance kind carries outside its class properties.
const (
	ParentPredicate         = "ec:parent"
	CodeValuePredicate      = "ec:code"
	CodeSpecPredicate       = "ec:codeSpec"
	CodeScopePredicate      = "ec:codeScope"
	SourcePredicate         = "ec:source"
	TargetPredicate         = "ec:target"
	OwnerPredicate          = "ec:owner"
	ModeledElementPredicate = "ec:modeledElement"
)

// hierarchy is the fixed internal structure of the extension vocabulary,
// emitted in this order by Declare. Immutable after construction.
var hierarchy = []struct {
	Term   string
	Parent string
}{
	{EntityClassTerm, ClassTerm},
	{RelationshipClassTerm, ClassTerm},
	{LinkTableRelationshipClassTerm, RelationshipClassTerm},
	{NavigationRelationshipClassTerm, RelationshipClassTerm},
	{CustomAttributeClassTerm, ClassTerm},
	{MixinTerm, ClassTerm},
	{EnumerationTerm, ClassTerm},

	{PrimitivePropertyTerm, PropertyTerm},
	{PrimitiveArrayPropertyTerm, PropertyTerm},
	{StructPropertyTerm, PropertyTerm},
	{StructArrayPropertyTerm, PropertyTerm},
	{NavigationPropertyTerm, PropertyTerm},

	{GuidStringTerm, XSDString},
	{JsonStringTerm, XSDString},
	{IdStringTerm, XSDString},
	{Point2dTerm, XSDString},
	{Point3dTerm, XSDString},
	{GeometryStreamTerm, XSDBase64Binary},
	{OrderedListTerm, RDFList},

	{ParentPredicate, NavigationPropertyTerm},
	{CodeValuePredicate, PrimitivePropertyTerm},
	{CodeSpecPredicate, NavigationPropertyTerm},
	{CodeScopePredicate, NavigationPropertyTerm},
	{SourcePredicate, NavigationPropertyTerm},
	{TargetPredicate, NavigationPropertyTerm},
	{OwnerPredicate, NavigationPropertyTerm},
	{ModeledElementPredicate, NavigationPropertyTerm},
}
