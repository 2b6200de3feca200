package ontology

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/nodeadmin/elreasoner/reasoner"
)

// OWL/RDF namespace URIs.
const (
	nsOWL  = "http://www.w3.org/2002/07/owl#"
	nsRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	nsRDFS = "http://www.w3.org/2000/01/rdf-schema#"
)

// node is a generic, recursively-captured XML element. EL class
// expressions nest arbitrarily — intersectionOf inside Restriction
// inside subClassOf inside Class — so a fixed struct per element kind
// can't describe the grammar; the whole document is decoded once into
// this generic tree and then walked by parseExpr/parseIntersection.
type node struct {
	XMLName xml.Name
	Attr    []xml.Attr `xml:",any,attr"`
	Nodes   []node     `xml:",any"`
}

func (n node) attr(ns, local string) (string, bool) {
	for _, a := range n.Attr {
		if a.Name.Space == ns && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func (n node) is(ns, local string) bool {
	return n.XMLName.Space == ns && n.XMLName.Local == local
}

func localID(resource string) string {
	if i := strings.IndexByte(resource, '#'); i >= 0 {
		return resource[i+1:]
	}
	if i := strings.LastIndexByte(resource, '/'); i >= 0 {
		return resource[i+1:]
	}
	return resource
}

// ParseOWL reads an OWL/RDF-XML ontology restricted to the EL
// profile: owl:Class, rdfs:subClassOf, owl:equivalentClass,
// owl:intersectionOf (rdf:parseType="Collection" shorthand), and
// owl:Restriction/owl:onProperty/owl:someValuesFrom. Anything else in
// the class-expression grammar (unionOf, complementOf, allValuesFrom,
// cardinality restrictions, ...) is rejected with NotInELError, wrapped
// in a ParseError. path is carried only for error reporting via
// ParseError.
func ParseOWL(r io.Reader, path string, f reasoner.Factory) (*Ontology, error) {
	var root node
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, &reasoner.ParseError{Path: path, Err: fmt.Errorf("decode owl/rdf-xml: %w", err)}
	}

	ont := &Ontology{}
	seen := make(map[string]bool)

	classNodes := root.Nodes
	if !root.is(nsRDF, "RDF") {
		classNodes = []node{root}
	}

	for _, n := range classNodes {
		if !n.is(nsOWL, "Class") {
			continue
		}
		about, ok := n.attr(nsRDF, "about")
		if !ok {
			continue
		}
		name := localID(about)
		if !seen[name] {
			seen[name] = true
			ont.ConceptNames = append(ont.ConceptNames, name)
		}
		cid := f.Name(name)

		for _, child := range n.Nodes {
			switch {
			case child.is(nsRDFS, "subClassOf"):
				rhs, err := conceptOf(child, f)
				if err != nil {
					return nil, &reasoner.ParseError{Path: path, Err: err}
				}
				ont.Axioms = append(ont.Axioms, f.Gci(cid, rhs))
			case child.is(nsOWL, "equivalentClass"):
				rhs, err := conceptOf(child, f)
				if err != nil {
					return nil, &reasoner.ParseError{Path: path, Err: err}
				}
				ont.Axioms = append(ont.Axioms, f.Equiv(cid, rhs))
			}
		}
	}

	return ont, nil
}

// conceptOf resolves the class expression referenced by a wrapper
// element (subClassOf, equivalentClass, someValuesFrom, or a
// collection member): either a direct rdf:resource reference, or a
// single nested anonymous expression.
func conceptOf(wrapper node, f reasoner.Factory) (reasoner.ConceptID, error) {
	if resource, ok := wrapper.attr(nsRDF, "resource"); ok {
		return f.Name(localID(resource)), nil
	}
	if len(wrapper.Nodes) != 1 {
		return 0, &reasoner.NotInELError{Detail: fmt.Sprintf("<%s>: expected exactly one class expression", wrapper.XMLName.Local)}
	}
	return parseExpr(wrapper.Nodes[0], f)
}

// parseExpr parses one class-expression element directly (not behind
// a wrapper): a named class reference, an anonymous owl:Class wrapping
// an intersectionOf, an owl:Restriction (∃r.C), or an intersectionOf
// collection member.
func parseExpr(n node, f reasoner.Factory) (reasoner.ConceptID, error) {
	switch {
	case n.is(nsOWL, "Class"):
		if about, ok := n.attr(nsRDF, "about"); ok {
			return f.Name(localID(about)), nil
		}
		for _, child := range n.Nodes {
			if child.is(nsOWL, "intersectionOf") {
				return parseIntersection(child, f)
			}
		}
		return 0, &reasoner.NotInELError{Detail: "anonymous owl:Class without intersectionOf"}

	case n.is(nsOWL, "Restriction"):
		return parseRestriction(n, f)

	case n.is(nsOWL, "intersectionOf"):
		return parseIntersection(n, f)

	case n.is(nsOWL, "unionOf"), n.is(nsOWL, "complementOf"):
		return 0, &reasoner.NotInELError{Detail: fmt.Sprintf("<%s> is outside EL (no disjunction/negation)", n.XMLName.Local)}

	default:
		return 0, &reasoner.NotInELError{Detail: fmt.Sprintf("unsupported class expression <%s>", n.XMLName.Local)}
	}
}

func parseRestriction(n node, f reasoner.Factory) (reasoner.ConceptID, error) {
	var role string
	var someValuesFrom *node

	for i, child := range n.Nodes {
		switch {
		case child.is(nsOWL, "onProperty"):
			if resource, ok := child.attr(nsRDF, "resource"); ok {
				role = localID(resource)
			}
		case child.is(nsOWL, "someValuesFrom"):
			someValuesFrom = &n.Nodes[i]
		case child.is(nsOWL, "allValuesFrom"):
			return 0, &reasoner.NotInELError{Detail: "owl:allValuesFrom is outside EL (no universal restriction)"}
		case child.is(nsOWL, "cardinality"), child.is(nsOWL, "minCardinality"), child.is(nsOWL, "maxCardinality"), child.is(nsOWL, "qualifiedCardinality"):
			return 0, &reasoner.NotInELError{Detail: "cardinality restrictions are outside EL"}
		}
	}
	if role == "" {
		return 0, &reasoner.NotInELError{Detail: "owl:Restriction missing owl:onProperty"}
	}
	if someValuesFrom == nil {
		return 0, &reasoner.NotInELError{Detail: "owl:Restriction missing owl:someValuesFrom (only ∃r.C is in EL)"}
	}

	filler, err := conceptOf(*someValuesFrom, f)
	if err != nil {
		return 0, err
	}
	return f.Exist(f.Role(role), filler), nil
}

// parseIntersection folds an owl:intersectionOf collection into a
// right-leaning binary conjunction tree over its members.
func parseIntersection(n node, f reasoner.Factory) (reasoner.ConceptID, error) {
	if len(n.Nodes) == 0 {
		return 0, &reasoner.NotInELError{Detail: "owl:intersectionOf with no members"}
	}

	ids := make([]reasoner.ConceptID, 0, len(n.Nodes))
	for _, member := range n.Nodes {
		id, err := parseExpr(member, f)
		if err != nil {
			return 0, err
		}
		ids = append(ids, id)
	}

	acc := ids[len(ids)-1]
	for i := len(ids) - 2; i >= 0; i-- {
		acc = f.Conj(ids[i], acc)
	}
	return acc, nil
}
