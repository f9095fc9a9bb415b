package repofile

import (
	"fmt"
	"strings"

	"github.com/ecgraph/ecrdf/ecschema"
)

// fileSnapshot is the YAML document shape.
type fileSnapshot struct {
	Schemas   []fileSchema  `yaml:"schemas"`
	Instances fileInstances `yaml:"instances"`
}

type fileSchema struct {
	Alias   string      `yaml:"alias"`
	Key     string      `yaml:"key"`
	Classes []fileClass `yaml:"classes"`
}

type fileClass struct {
	Name                     string          `yaml:"name"`
	Kind                     string          `yaml:"kind"`
	Base                     string          `yaml:"base"`
	Label                    string          `yaml:"label"`
	Description              string          `yaml:"description"`
	CustomAttributeContainer bool            `yaml:"customAttributeContainer"`
	Source                   *fileConstraint `yaml:"source"`
	Target                   *fileConstraint `yaml:"target"`
	Properties               []fileProperty  `yaml:"properties"`
}

type fileConstraint struct {
	Classes []string `yaml:"classes"`
}

type fileProperty struct {
	Name         string `yaml:"name"`
	Kind         string `yaml:"kind"`
	Array        bool   `yaml:"array"`
	Type         string `yaml:"type"`
	ExtendedType string `yaml:"extendedType"`
	Description  string `yaml:"description"`
	Relationship string `yaml:"relationship"`
	Direction    string `yaml:"direction"`
	Enum         string `yaml:"enum"`
}

type fileInstances struct {
	Entities      []fileEntity       `yaml:"entities"`
	Models        []fileModel        `yaml:"models"`
	Relationships []fileRelationship `yaml:"relationships"`
	Aspects       []fileAspect       `yaml:"aspects"`
	CodeSpecs     []fileCodeSpec     `yaml:"codespecs"`
}

type fileEntity struct {
	Class  string         `yaml:"class"`
	ID     int64          `yaml:"id"`
	Parent int64          `yaml:"parent"`
	Code   *fileCode      `yaml:"code"`
	Values map[string]any `yaml:"values"`
}

type fileCode struct {
	Spec  int64  `yaml:"spec"`
	Scope int64  `yaml:"scope"`
	Value string `yaml:"value"`
}

type fileModel struct {
	Class          string         `yaml:"class"`
	ID             int64          `yaml:"id"`
	ModeledElement int64          `yaml:"modeledElement"`
	Values         map[string]any `yaml:"values"`
}

type fileRelationship struct {
	Class  string `yaml:"class"`
	ID     int64  `yaml:"id"`
	Source int64  `yaml:"source"`
	Target int64  `yaml:"target"`
}

type fileAspect struct {
	Class  string         `yaml:"class"`
	ID     int64          `yaml:"id"`
	Owner  int64          `yaml:"owner"`
	Values map[string]any `yaml:"values"`
}

type fileCodeSpec struct {
	Class string `yaml:"class"`
	ID    int64  `yaml:"id"`
	Name  string `yaml:"name"`
}

func parseClassKind(s string) (ecschema.ClassKind, error) {
	switch strings.ToLower(s) {
	case "", "entityclass", "entity":
		return ecschema.EntityClass, nil
	case "relationshipclass", "relationship":
		return ecschema.RelationshipClass, nil
	case "customattributeclass", "customattribute":
		return ecschema.CustomAttributeClass, nil
	case "mixin":
		return ecschema.Mixin, nil
	case "enumeration", "enum":
		return ecschema.Enumeration, nil
	default:
		return 0, fmt.Errorf("unknown class kind %q", s)
	}
}

func parsePropertyKind(s string) (ecschema.PropertyKind, error) {
	switch strings.ToLower(s) {
	case "", "primitive":
		return ecschema.Primitive, nil
	case "struct":
		return ecschema.Struct, nil
	case "navigation":
		return ecschema.Navigation, nil
	case "enumeration", "enum":
		return ecschema.EnumerationProperty, nil
	default:
		return 0, fmt.Errorf("unknown property kind %q", s)
	}
}

func parsePrimitiveType(s string) (ecschema.PrimitiveType, error) {
	switch strings.ToLower(s) {
	case "binary":
		return ecschema.Binary, nil
	case "boolean", "bool":
		return ecschema.Boolean, nil
	case "datetime":
		return ecschema.DateTime, nil
	case "double":
		return ecschema.Double, nil
	case "geometry":
		return ecschema.Geometry, nil
	case "integer", "int":
		return ecschema.Integer, nil
	case "long":
		return ecschema.Long, nil
	case "point2d":
		return ecschema.Point2d, nil
	case "point3d":
		return ecschema.Point3d, nil
	case "", "string":
		return ecschema.String, nil
	default:
		return 0, fmt.Errorf("unknown primitive type %q", s)
	}
}

func parseDirection(s string) (ecschema.Direction, error) {
	switch strings.ToLower(s) {
	case "", "forward":
		return ecschema.Forward, nil
	case "backward":
		return ecschema.Backward, nil
	default:
		return 0, fmt.Errorf("unknown navigation direction %q", s)
	}
}
