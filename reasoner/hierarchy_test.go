package reasoner

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchyReflexivityAndTransitivity(t *testing.T) {
	store := NewStore()
	a := store.Name("A")
	b := store.Name("B")
	c := store.Name("C")
	tbox := Normalize(NewTBox([]Axiom{store.Gci(a, b), store.Gci(b, c)}))
	universe := NewUniverse(store, tbox, []string{"A", "B", "C"})

	h := NewHierarchy(store, tbox, universe, zerolog.Nop())
	m, err := h.Classify()
	require.NoError(t, err)

	for _, n := range []ConceptID{a, b, c} {
		assert.True(t, m[n][n], "reflexivity: %v must be in its own subsumer set", n)
		assert.True(t, m[n][Top])
	}

	// Transitivity: every subsumer of a subsumer of A is a subsumer of A.
	for mm := range m[a] {
		for k := range m[mm] {
			assert.True(t, m[a][k], "K in H[M] and M in H[A] must imply K in H[A]")
		}
	}
}
