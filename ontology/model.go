// Package ontology parses an ontology source (OWL/RDF-XML, or the
// lightweight textual "elo" fixture format) into axioms and declared
// names, using the reasoner's term Factory to construct concepts
// directly — so the parsed result is already interned and ready for
// reasoner.Normalize.
package ontology

import "github.com/nodeadmin/elreasoner/reasoner"

// Ontology is what a loader hands the reasoning core: a set of TBox
// axioms already expressed over interned ConceptIDs, plus the set of
// concept names the source declared. Sub-concepts syntactically
// appearing in the source need no separate tracking here since every
// constructor call already interns through the Factory —
// reasoner.InputConcepts recovers the sub-expression closure from the
// axioms themselves.
type Ontology struct {
	Axioms       []reasoner.Axiom
	ConceptNames []string
	Roles        []string
}
