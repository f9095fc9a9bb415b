package mapper

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecgraph/ecrdf/ecschema"
	"github.com/ecgraph/ecrdf/turtle"
)

func mapInstanceLines(t *testing.T, inst ecschema.Instance) []string {
	t.Helper()
	var buf bytes.Buffer
	m := NewInstanceMapper(turtle.NewWriter(&buf))
	require.NoError(t, m.MapInstance(inst))
	if buf.Len() == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func widgetClass() *ecschema.Class {
	s := &ecschema.Schema{Alias: "bis"}
	widget := &ecschema.Class{Schema: s, Name: "Widget", Kind: ecschema.EntityClass}
	widget.Properties = []*ecschema.Property{
		{Class: widget, Name: "Name", Kind: ecschema.Primitive, Primitive: ecschema.String},
		{Class: widget, Name: "Count", Kind: ecschema.Primitive, Primitive: ecschema.Integer},
	}
	s.Classes = []*ecschema.Class{widget}
	return widget
}

// An absent property emits nothing: exactly the type triple and the one
// present value survive.
func TestInstanceMapper_WidgetScenario(t *testing.T) {
	e := ecschema.NewEntity(widgetClass(), 7, map[string]any{"Name": "Acme"})

	lines := mapInstanceLines(t, e)
	assert.Equal(t, []string{
		"elementId:e7 rdf:type bis:Widget .",
		`elementId:e7 bis:Widget-Name "Acme" .`,
	}, lines)
}

func TestInstanceMapper_NilClassIsRecoverable(t *testing.T) {
	var buf bytes.Buffer
	m := NewInstanceMapper(turtle.NewWriter(&buf))

	err := m.MapInstance(ecschema.NewEntity(nil, 7, nil))
	assert.ErrorIs(t, err, ErrUnresolvedReference)
	assert.Zero(t, buf.Len())
}

// Inherited properties are evaluated against the instance's own values but
// keyed by the predicate of the declaring ancestor.
func TestInstanceMapper_InheritedPredicate(t *testing.T) {
	s := &ecschema.Schema{Alias: "bis"}
	element := &ecschema.Class{Schema: s, Name: "Element", Kind: ecschema.EntityClass}
	element.Properties = []*ecschema.Property{
		{Class: element, Name: "UserLabel", Kind: ecschema.Primitive, Primitive: ecschema.String},
	}
	widget := &ecschema.Class{Schema: s, Name: "Widget", Kind: ecschema.EntityClass, Base: element}

	e := ecschema.NewEntity(widget, 7, map[string]any{"UserLabel": "mine"})

	lines := mapInstanceLines(t, e)
	assert.Equal(t, []string{
		"elementId:e7 rdf:type bis:Widget .",
		`elementId:e7 bis:Element-UserLabel "mine" .`,
	}, lines)
}

func TestInstanceMapper_Builtins(t *testing.T) {
	c := widgetClass()

	t.Run("entity parent and code", func(t *testing.T) {
		e := ecschema.NewEntity(c, 7, nil)
		e.ParentID = 3
		e.Code = ecschema.Code{Spec: 2, Scope: 1, Value: "W-1"}

		lines := mapInstanceLines(t, e)
		assert.Equal(t, []string{
			"elementId:e7 rdf:type bis:Widget .",
			"elementId:e7 ec:parent elementId:e3 .",
			`elementId:e7 ec:code "W-1" .`,
			"elementId:e7 ec:codeSpec elementId:c2 .",
			"elementId:e7 ec:codeScope elementId:e1 .",
		}, lines)
	})

	t.Run("empty code suppresses all code triples", func(t *testing.T) {
		e := ecschema.NewEntity(c, 7, nil)
		e.Code = ecschema.Code{Spec: 2, Scope: 1}

		lines := mapInstanceLines(t, e)
		assert.Equal(t, []string{"elementId:e7 rdf:type bis:Widget ."}, lines)
	})

	t.Run("model", func(t *testing.T) {
		m := ecschema.NewModel(c, 9, nil)
		m.ModeledElementID = 7

		lines := mapInstanceLines(t, m)
		assert.Equal(t, []string{
			"resourceId:m9 rdf:type bis:Widget .",
			"resourceId:m9 ec:modeledElement elementId:e7 .",
		}, lines)
	})

	t.Run("relationship", func(t *testing.T) {
		r := ecschema.NewRelationship(c, 5, 7, 8)

		lines := mapInstanceLines(t, r)
		assert.Equal(t, []string{
			"resourceId:r5 rdf:type bis:Widget .",
			"resourceId:r5 ec:source elementId:e7 .",
			"resourceId:r5 ec:target elementId:e8 .",
		}, lines)
	})

	t.Run("aspect", func(t *testing.T) {
		a := ecschema.NewAspect(c, 4, 7, nil)

		lines := mapInstanceLines(t, a)
		assert.Equal(t, []string{
			"elementId:a4 rdf:type bis:Widget .",
			"elementId:a4 ec:owner elementId:e7 .",
		}, lines)
	})

	t.Run("codespec", func(t *testing.T) {
		cs := ecschema.NewCodeSpec(c, 2, "bis:SpatialCategory")

		lines := mapInstanceLines(t, cs)
		assert.Equal(t, []string{
			"elementId:c2 rdf:type bis:Widget .",
			`elementId:c2 rdfs:label "bis:SpatialCategory" .`,
		}, lines)
	})
}

func entityWithProperty(p *ecschema.Property, value any) *ecschema.Entity {
	s := &ecschema.Schema{Alias: "bis"}
	owner := &ecschema.Class{Schema: s, Name: "Owner", Kind: ecschema.EntityClass}
	p.Class = owner
	owner.Properties = []*ecschema.Property{p}
	return ecschema.NewEntity(owner, 7, map[string]any{p.Name: value})
}

func TestInstanceMapper_NavigationValues(t *testing.T) {
	rel := &ecschema.Class{
		Name: "Refers", Kind: ecschema.RelationshipClass,
		IsCustomAttributeContainer: true,
	}

	tests := []struct {
		name     string
		propName string
		value    any
		want     []string
	}{
		{
			name:     "entity target",
			propName: "Parent",
			value:    int64(12),
			want:     []string{"elementId:e7 bis:Owner-Parent elementId:e12 ."},
		},
		{
			// The Model-suffix naming convention is load-bearing downstream.
			name:     "model suffix targets the resource namespace",
			propName: "CategoryModel",
			value:    int64(12),
			want:     []string{"elementId:e7 bis:Owner-CategoryModel resourceId:m12 ."},
		},
		{
			name:     "integral float identifier",
			propName: "Parent",
			value:    float64(12),
			want:     []string{"elementId:e7 bis:Owner-Parent elementId:e12 ."},
		},
		{
			name:     "zero identifier skipped",
			propName: "Parent",
			value:    int64(0),
			want:     nil,
		},
		{
			name:     "non-numeric identifier skipped",
			propName: "Parent",
			value:    "twelve",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ecschema.Property{Name: tt.propName, Kind: ecschema.Navigation, Relationship: rel}
			lines := mapInstanceLines(t, entityWithProperty(p, tt.value))

			wantAll := append([]string{"elementId:e7 rdf:type bis:Owner ."}, tt.want...)
			assert.Equal(t, wantAll, lines)
		})
	}
}

func TestInstanceMapper_GuidValues(t *testing.T) {
	p := func() *ecschema.Property {
		return &ecschema.Property{
			Name: "FederationGuid", Kind: ecschema.Primitive,
			Primitive: ecschema.Binary, ExtendedType: ecschema.ExtendedTypeBeGuid,
		}
	}

	t.Run("valid guid is quoted", func(t *testing.T) {
		lines := mapInstanceLines(t, entityWithProperty(p(), "8b3c9f2e-1a4d-4c6b-9e0f-2d5a7b8c9d0e"))
		assert.Equal(t, []string{
			"elementId:e7 rdf:type bis:Owner .",
			`elementId:e7 bis:Owner-FederationGuid "8b3c9f2e-1a4d-4c6b-9e0f-2d5a7b8c9d0e" .`,
		}, lines)
	})

	t.Run("invalid guid skips the one triple", func(t *testing.T) {
		lines := mapInstanceLines(t, entityWithProperty(p(), "not-a-guid"))
		assert.Equal(t, []string{"elementId:e7 rdf:type bis:Owner ."}, lines)
	})

	t.Run("plain binary is never serialized", func(t *testing.T) {
		plain := &ecschema.Property{Name: "Blob", Kind: ecschema.Primitive, Primitive: ecschema.Binary}
		lines := mapInstanceLines(t, entityWithProperty(plain, "AAEC"))
		assert.Equal(t, []string{"elementId:e7 rdf:type bis:Owner ."}, lines)
	})
}

// The point literal JSON-decodes to a string that itself JSON-decodes to
// the original structure.
func TestInstanceMapper_PointDoubleEscaping(t *testing.T) {
	p := &ecschema.Property{Name: "Origin", Kind: ecschema.Primitive, Primitive: ecschema.Point3d}
	point := map[string]any{"x": 1.5, "y": -2.0, "z": 0.25}

	lines := mapInstanceLines(t, entityWithProperty(p, point))
	require.Len(t, lines, 2)

	object := strings.TrimSuffix(strings.TrimPrefix(lines[1], "elementId:e7 bis:Owner-Origin "), " .")

	var inner string
	require.NoError(t, json.Unmarshal([]byte(object), &inner))
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(inner), &got))
	assert.Equal(t, point, got)
}

func TestInstanceMapper_JSONStringValues(t *testing.T) {
	p := func() *ecschema.Property {
		return &ecschema.Property{
			Name: "JsonProperties", Kind: ecschema.Primitive,
			Primitive: ecschema.String, ExtendedType: ecschema.ExtendedTypeJSON,
		}
	}

	t.Run("non-empty document is double-encoded", func(t *testing.T) {
		lines := mapInstanceLines(t, entityWithProperty(p(), `{"a":1}`))
		require.Len(t, lines, 2)

		object := strings.TrimSuffix(strings.TrimPrefix(lines[1], "elementId:e7 bis:Owner-JsonProperties "), " .")
		var inner string
		require.NoError(t, json.Unmarshal([]byte(object), &inner))
		assert.Equal(t, `"{\"a\":1}"`, inner)

		var doc string
		require.NoError(t, json.Unmarshal([]byte(inner), &doc))
		assert.Equal(t, `{"a":1}`, doc)
	})

	t.Run("empty values emit nothing", func(t *testing.T) {
		for _, v := range []any{"", map[string]any{}, []any{}} {
			lines := mapInstanceLines(t, entityWithProperty(p(), v))
			assert.Equal(t, []string{"elementId:e7 rdf:type bis:Owner ."}, lines)
		}
	})
}

func TestInstanceMapper_TokenValues(t *testing.T) {
	tests := []struct {
		name  string
		prim  ecschema.PrimitiveType
		value any
		want  string
	}{
		{"long", ecschema.Long, int64(42), "42"},
		{"integer", ecschema.Integer, 11, "11"},
		{"boolean", ecschema.Boolean, true, "true"},
		{"double", ecschema.Double, 2.5, "2.5"},
		{"datetime token", ecschema.DateTime, "2026-08-26T00:00:00Z", "2026-08-26T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ecschema.Property{Name: "P", Kind: ecschema.Primitive, Primitive: tt.prim}
			lines := mapInstanceLines(t, entityWithProperty(p, tt.value))
			assert.Equal(t, []string{
				"elementId:e7 rdf:type bis:Owner .",
				"elementId:e7 bis:Owner-P " + tt.want + " .",
			}, lines)
		})
	}
}

func TestInstanceMapper_LongIdHint(t *testing.T) {
	p := func() *ecschema.Property {
		return &ecschema.Property{
			Name: "TargetId", Kind: ecschema.Primitive,
			Primitive: ecschema.Long, ExtendedType: ecschema.ExtendedTypeID,
		}
	}

	t.Run("valid identifier becomes an entity name", func(t *testing.T) {
		lines := mapInstanceLines(t, entityWithProperty(p(), int64(31)))
		assert.Equal(t, []string{
			"elementId:e7 rdf:type bis:Owner .",
			"elementId:e7 bis:Owner-TargetId elementId:e31 .",
		}, lines)
	})

	t.Run("invalid identifier is isolated", func(t *testing.T) {
		lines := mapInstanceLines(t, entityWithProperty(p(), "oops"))
		assert.Equal(t, []string{"elementId:e7 rdf:type bis:Owner ."}, lines)
	})
}

// A bad value never takes neighboring values down with it.
func TestInstanceMapper_IsolateAndContinue(t *testing.T) {
	s := &ecschema.Schema{Alias: "bis"}
	owner := &ecschema.Class{Schema: s, Name: "Owner", Kind: ecschema.EntityClass}
	owner.Properties = []*ecschema.Property{
		{Class: owner, Name: "Guid", Kind: ecschema.Primitive, Primitive: ecschema.Binary, ExtendedType: ecschema.ExtendedTypeBeGuid},
		{Class: owner, Name: "Name", Kind: ecschema.Primitive, Primitive: ecschema.String},
	}
	e := ecschema.NewEntity(owner, 7, map[string]any{
		"Guid": "garbage",
		"Name": "survivor",
	})

	lines := mapInstanceLines(t, e)
	assert.Equal(t, []string{
		"elementId:e7 rdf:type bis:Owner .",
		`elementId:e7 bis:Owner-Name "survivor" .`,
	}, lines)
}

// Struct and array values are typed at the schema level only.
func TestInstanceMapper_StructAndArrayValuesSkipped(t *testing.T) {
	s := &ecschema.Schema{Alias: "bis"}
	owner := &ecschema.Class{Schema: s, Name: "Owner", Kind: ecschema.EntityClass}
	owner.Properties = []*ecschema.Property{
		{Class: owner, Name: "Parts", Kind: ecschema.Struct},
		{Class: owner, Name: "Tags", Kind: ecschema.Primitive, Primitive: ecschema.String, IsArray: true},
	}
	e := ecschema.NewEntity(owner, 7, map[string]any{
		"Parts": map[string]any{"a": 1},
		"Tags":  []any{"x", "y"},
	})

	lines := mapInstanceLines(t, e)
	assert.Equal(t, []string{"elementId:e7 rdf:type bis:Owner ."}, lines)
}

func TestInstanceMapper_EmptyStringSuppressed(t *testing.T) {
	p := &ecschema.Property{Name: "Name", Kind: ecschema.Primitive, Primitive: ecschema.String}
	lines := mapInstanceLines(t, entityWithProperty(p, ""))
	assert.Equal(t, []string{"elementId:e7 rdf:type bis:Owner ."}, lines)
}
