package vocabulary

import "github.com/ecgraph/ecrdf/turtle"

// prefixes in declaration order: the four core namespaces, then the two
// instance namespaces.
var prefixes = []struct {
	Prefix string
	IRI    string
}{
	{PrefixRDF, NamespaceRDF},
	{PrefixRDFS, NamespaceRDFS},
	{PrefixXSD, NamespaceXSD},
	{PrefixEC, NamespaceEC},
	{PrefixElement, NamespaceElement},
	{PrefixResource, NamespaceResource},
}

// Declare emits the fixed upper vocabulary: prefix declarations followed by
// the extension hierarchy. The content is byte-identical on every call;
// calling it more than once per run duplicates (but never contradicts)
// earlier output, so the traversal layer is expected to call it exactly
// once.
func Declare(w *turtle.Writer) error {
	for _, p := range prefixes {
		if err := w.WritePrefix(p.Prefix, p.IRI); err != nil {
			return err
		}
	}

	// Abstract roots have no supertype; anchor them with labels so they
	// appear in the output before their subclasses.
	if err := w.WriteTriple(ClassTerm, Label, turtle.Quote("Class")); err != nil {
		return err
	}
	if err := w.WriteTriple(PropertyTerm, Label, turtle.Quote("Property")); err != nil {
		return err
	}

	for _, h := range hierarchy {
		if err := w.WriteTriple(h.Term, SubClassOf, h.Parent); err != nil {
			return err
		}
	}
	return nil
}
