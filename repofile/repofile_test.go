package repofile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecgraph/ecrdf/ecschema"
)

const snapshotYAML = `
schemas:
  - alias: bis
    key: BisCore.01.00.00
    classes:
      - name: Element
        kind: entity
        properties:
          - name: UserLabel
            type: string
      - name: Widget
        kind: entity
        base: Element
        label: A widget
        properties:
          - name: Count
            type: integer
          - name: Color
            kind: enum
            type: integer
            enum: ColorMode
          - name: Parent
            kind: navigation
            relationship: ElementOwnsChild
            direction: backward
      - name: ColorMode
        kind: enumeration
      - name: ElementOwnsChild
        kind: relationship
        customAttributeContainer: true
        source:
          classes: [Element]
        target:
          classes: [Widget, Element]
instances:
  entities:
    - class: bis:Widget
      id: 7
      parent: 3
      code: { spec: 2, scope: 1, value: W-1 }
      values:
        Count: 4
  models:
    - class: bis:Widget
      id: 9
      modeledElement: 7
  relationships:
    - class: bis:ElementOwnsChild
      id: 5
      source: 3
      target: 7
  aspects:
    - class: bis:Widget
      id: 4
      owner: 7
  codespecs:
    - class: bis:Widget
      id: 2
      name: bis:SpatialCategory
`

func TestParse_ResolvesReferences(t *testing.T) {
	snap, err := Parse([]byte(snapshotYAML))
	require.NoError(t, err)

	require.Len(t, snap.Schemas, 1)
	s := snap.Schemas[0]
	assert.Equal(t, "bis", s.Alias)
	assert.Equal(t, "BisCore.01.00.00", s.Key)
	require.Len(t, s.Classes, 4)

	element, widget, color, rel := s.Classes[0], s.Classes[1], s.Classes[2], s.Classes[3]

	assert.Equal(t, element, widget.Base)
	assert.Equal(t, "A widget", widget.DisplayLabel)
	assert.Equal(t, ecschema.Enumeration, color.Kind)

	require.Len(t, widget.Properties, 3)
	assert.Equal(t, ecschema.Integer, widget.Properties[0].Primitive)
	assert.Equal(t, color, widget.Properties[1].Enum)

	nav := widget.Properties[2]
	assert.Equal(t, ecschema.Navigation, nav.Kind)
	assert.Equal(t, rel, nav.Relationship)
	assert.Equal(t, ecschema.Backward, nav.Direction)

	require.NotNil(t, rel.Source)
	require.NotNil(t, rel.Target)
	assert.Equal(t, []*ecschema.Class{element}, rel.Source.Classes)
	assert.Equal(t, []*ecschema.Class{widget, element}, rel.Target.Classes)
	assert.True(t, rel.IsCustomAttributeContainer)
}

func TestParse_BuildsInstances(t *testing.T) {
	snap, err := Parse([]byte(snapshotYAML))
	require.NoError(t, err)

	require.Len(t, snap.Entities, 1)
	e := snap.Entities[0]
	assert.Equal(t, int64(7), e.ID)
	assert.Equal(t, int64(3), e.ParentID)
	assert.Equal(t, ecschema.Code{Spec: 2, Scope: 1, Value: "W-1"}, e.Code)
	v, ok := e.Value("Count")
	assert.True(t, ok)
	assert.Equal(t, 4, v)

	require.Len(t, snap.Models, 1)
	assert.Equal(t, int64(7), snap.Models[0].ModeledElementID)

	require.Len(t, snap.Relationships, 1)
	r := snap.Relationships[0]
	assert.Equal(t, int64(3), r.SourceID)
	assert.Equal(t, int64(7), r.TargetID)

	require.Len(t, snap.Aspects, 1)
	assert.Equal(t, int64(7), snap.Aspects[0].OwnerID)

	require.Len(t, snap.CodeSpecs, 1)
	assert.Equal(t, "bis:SpatialCategory", snap.CodeSpecs[0].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "missing alias",
			doc: `
schemas:
  - key: BisCore
    classes: [{ name: Element }]
`,
		},
		{
			name: "unknown base class",
			doc: `
schemas:
  - alias: bis
    classes:
      - name: Widget
        base: Nowhere
`,
		},
		{
			name: "unknown class kind",
			doc: `
schemas:
  - alias: bis
    classes:
      - name: Widget
        kind: gadget
`,
		},
		{
			name: "instance references unknown class",
			doc: `
schemas:
  - alias: bis
    classes: [{ name: Element }]
instances:
  entities:
    - class: bis:Nowhere
      id: 1
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

// recordingHandler captures the traversal order.
type recordingHandler struct {
	calls []string
}

func (h *recordingHandler) DeclareVocabulary() error {
	h.calls = append(h.calls, "vocabulary")
	return nil
}

func (h *recordingHandler) OnSchema(s *ecschema.Schema) error {
	h.calls = append(h.calls, "schema:"+s.Alias)
	return nil
}

func (h *recordingHandler) OnInstance(inst ecschema.Instance) error {
	h.calls = append(h.calls, inst.InstanceKind())
	return nil
}

func TestSnapshot_WalkOrder(t *testing.T) {
	snap, err := Parse([]byte(snapshotYAML))
	require.NoError(t, err)

	h := &recordingHandler{}
	require.NoError(t, snap.Walk(h))

	assert.Equal(t, []string{
		"vocabulary",
		"schema:bis",
		"entity",
		"model",
		"relationship",
		"aspect",
		"codespec",
	}, h.calls)
}
