package reasoner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeResolvesEquivalenceIntoGCIPair(t *testing.T) {
	store := NewStore()
	a := store.Name("A")
	b := store.Name("B")

	raw := NewTBox([]Axiom{store.Equiv(a, b)})
	norm := Normalize(raw)

	gcis := norm.Gcis()
	assert.Len(t, gcis, 2)

	var sawAB, sawBA bool
	for _, g := range gcis {
		assert.Equal(t, AxiomGci, g.Kind)
		if g.LHS == a && g.RHS == b {
			sawAB = true
		}
		if g.LHS == b && g.RHS == a {
			sawBA = true
		}
	}
	assert.True(t, sawAB)
	assert.True(t, sawBA)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	store := NewStore()
	a := store.Name("A")
	b := store.Name("B")
	c := store.Name("C")

	raw := NewTBox([]Axiom{store.Gci(a, b), store.Gci(b, c)})
	once := Normalize(raw)
	twice := Normalize(once)

	assert.ElementsMatch(t, once.Axioms(), twice.Axioms())
}
