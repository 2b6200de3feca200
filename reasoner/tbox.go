package reasoner

// AxiomKind tags whether an Axiom is a GCI or an equivalence.
type AxiomKind uint8

const (
	AxiomGci AxiomKind = iota
	AxiomEquiv
)

// Axiom is the tagged variant: Gci(lhs, rhs) or Equiv(a, b).
type Axiom struct {
	Kind AxiomKind
	LHS  ConceptID
	RHS  ConceptID
}

// TBox is a set of axioms. The invariant after Normalize is that only
// AxiomGci members remain.
type TBox struct {
	axioms []Axiom
}

// NewTBox wraps a raw axiom slice, which may still contain equivalences.
func NewTBox(axioms []Axiom) *TBox {
	return &TBox{axioms: axioms}
}

// Axioms returns the TBox's current axiom set.
func (t *TBox) Axioms() []Axiom { return t.axioms }

// Gcis returns only the AxiomGci members, a convenience for callers
// that already know the TBox is normalized.
func (t *TBox) Gcis() []Axiom {
	out := make([]Axiom, 0, len(t.axioms))
	for _, a := range t.axioms {
		if a.Kind == AxiomGci {
			out = append(out, a)
		}
	}
	return out
}

// Normalize rewrites every Equiv(A, B) into the pair {Gci(A,B),
// Gci(B,A)} and returns a new TBox containing only GCIs.
//
// The rewrite runs to a fixed point: a single pass already removes
// every Equiv, since GCIs are kept verbatim and never produce new
// equivalences. The outer loop exists only to tolerate a future grammar
// extension in which an axiom's operands could themselves carry
// equivalences — it is a no-op loop for the current grammar.
func Normalize(t *TBox) *TBox {
	current := t.axioms
	for {
		next := make([]Axiom, 0, len(current))
		sawEquiv := false
		for _, a := range current {
			switch a.Kind {
			case AxiomEquiv:
				sawEquiv = true
				next = append(next, Axiom{Kind: AxiomGci, LHS: a.LHS, RHS: a.RHS})
				next = append(next, Axiom{Kind: AxiomGci, LHS: a.RHS, RHS: a.LHS})
			default:
				next = append(next, a)
			}
		}
		current = next
		if !sawEquiv {
			break
		}
	}
	return &TBox{axioms: current}
}
